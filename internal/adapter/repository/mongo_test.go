package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

func TestScoped_AlwaysAddsTenantAndActive(t *testing.T) {
	filter := scoped("org-1", bson.M{"organization_id": "org-2", "is_active": false, "name": "x"})

	assert.Equal(t, "org-1", filter["organization_id"])
	assert.Equal(t, true, filter["is_active"])
	assert.Equal(t, "x", filter["name"])

	assert.Len(t, scoped("org-1", nil), 2)
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, "pedido", "1"))
	assert.True(t, apperror.IsNotFound(translate(mongo.ErrNoDocuments, "pedido", "1")))

	err := translate(errors.New("timeout"), "pedido", "1")
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
}

func TestContainsText_EscapesRegex(t *testing.T) {
	q := containsText(" a+b ")
	assert.Equal(t, `a\+b`, q["$regex"])
	assert.Equal(t, "i", q["$options"])
}

func TestBuildOrderFilter_Defaults(t *testing.T) {
	filter := buildOrderFilter("org-1", order.Filters{})

	assert.Equal(t, "org-1", filter["organization_id"])
	assert.Equal(t, false, filter["is_fast_order"])
	assert.Equal(t, bson.A{bson.M{"status": order.StatusDone, "payment_status": order.PaymentPaid}}, filter["$nor"])
}

func TestBuildOrderFilter_AllFilters(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rng := domain.DateRange{Start: start, End: start.AddDate(0, 1, 0)}
	minAmount, maxAmount := 10.0, 50.0

	filter := buildOrderFilter("org-1", order.Filters{
		CustomerID:           "c-1",
		Status:               order.StatusDone,
		PaymentStatus:        []order.PaymentStatus{order.PaymentPaid},
		DeliveryType:         order.DeliveryTypeWithdrawal,
		Tags:                 []string{"t1"},
		DateRange:            &rng,
		MinAmount:            &minAmount,
		MaxAmount:            &maxAmount,
		IgnoreDefaultFilters: true,
	})

	assert.Equal(t, "c-1", filter["customer_id"])
	assert.Equal(t, order.StatusDone, filter["status"])
	assert.Equal(t, bson.M{"$in": []order.PaymentStatus{order.PaymentPaid}}, filter["payment_status"])
	assert.Equal(t, order.DeliveryTypeWithdrawal, filter["delivery.delivery_type"])
	assert.Equal(t, bson.M{"$in": []string{"t1"}}, filter["tags"])
	assert.Equal(t, bson.M{"$gte": rng.Start, "$lt": rng.End}, filter["preparation_date"])
	assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 50.0}, filter["total_amount"])
	assert.NotContains(t, filter, "$nor")
}

func TestParseOrderBy(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "preparation_date", Value: 1}, {Key: "_id", Value: 1}}, parseOrderBy(""))
	assert.Equal(t, bson.D{{Key: "total_amount", Value: -1}, {Key: "_id", Value: 1}}, parseOrderBy("-total_amount"))
	assert.Equal(t, bson.D{{Key: "order_date", Value: 1}, {Key: "_id", Value: 1}}, parseOrderBy("order_date"))
	assert.Equal(t, bson.D{{Key: "preparation_date", Value: 1}, {Key: "_id", Value: 1}}, parseOrderBy("$where"))
}

func TestPaymentsLookup_IsTenantScoped(t *testing.T) {
	stage := paymentsLookup("org-1")
	require.Len(t, stage, 1)
	assert.Equal(t, "$lookup", stage[0].Key)

	lookup := stage[0].Value.(bson.M)
	assert.Equal(t, colPayments, lookup["from"])
	assert.Equal(t, "payments", lookup["as"])

	match := lookup["pipeline"].(bson.A)[0].(bson.M)["$match"].(bson.M)["$expr"].(bson.M)["$and"].(bson.A)
	assert.Contains(t, match, bson.M{"$eq": bson.A{"$organization_id", "org-1"}})
	assert.Contains(t, match, bson.M{"$eq": bson.A{"$is_active", true}})
}

func TestBuildExpenseFilter(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rng := domain.DateRange{Start: start, End: start.AddDate(0, 0, 1)}

	filter := buildExpenseFilter("org-1", expense.Filters{Query: "gás", DateRange: &rng, Tags: []string{"fixo"}})

	assert.Equal(t, "org-1", filter["organization_id"])
	assert.Contains(t, filter, "name")
	assert.Contains(t, filter, "expense_date")
	assert.Equal(t, bson.M{"$in": []string{"fixo"}}, filter["tags"])
}

func TestPendingFilter_GuardsTransition(t *testing.T) {
	filter := pendingFilter("org-1", "po-1")

	assert.Equal(t, "po-1", filter["_id"])
	assert.Equal(t, preorder.StatusPending, filter["status"])
	assert.Equal(t, "org-1", filter["organization_id"])
}
