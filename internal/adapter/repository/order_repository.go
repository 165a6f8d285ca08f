package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

var orderSortFields = map[string]bool{
	"order_date":       true,
	"preparation_date": true,
	"total_amount":     true,
	"created_at":       true,
}

// OrderRepository implementa order.Repository sobre o MongoDB
type OrderRepository struct {
	coll           *mongo.Collection
	organizationID string
	logger         logger.Logger
}

var _ order.Repository = (*OrderRepository)(nil)

// NewOrderRepository cria o repositório de pedidos da organização
func NewOrderRepository(db *mongo.Database, organizationID string, log logger.Logger) *OrderRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &OrderRepository{
		coll:           db.Collection(colOrders),
		organizationID: organizationID,
		logger:         log,
	}
}

// Create implementa order.Repository.Create
func (r *OrderRepository) Create(ctx context.Context, draft *order.Order, totalAmount float64) (*order.Order, error) {
	now := time.Now().UTC()

	o := *draft
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	o.OrganizationID = r.organizationID
	o.TotalAmount = totalAmount
	o.PaymentStatus = order.PaymentPending
	o.Payments = nil
	o.IsActive = true
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Tags == nil {
		o.Tags = []string{}
	}
	if o.IsFastOrder {
		o.FastOrderDay = o.OrderDate.UTC().Format(order.FastOrderDayLayout)
	}

	if _, err := r.coll.InsertOne(ctx, o); err != nil {
		if o.IsFastOrder && mongo.IsDuplicateKeyError(err) {
			return nil, apperror.BadRequest(order.FastOrderSameDayMessage)
		}
		return nil, translate(err, "pedido", o.ID)
	}

	return &o, nil
}

// Update implementa order.Repository.Update
func (r *OrderRepository) Update(ctx context.Context, id string, patch order.Patch) (*order.Order, error) {
	o, err := r.selectOne(ctx, bson.M{"_id": id}, "pedido", id)
	if err != nil {
		return nil, err
	}

	if overpaid := patch.Apply(o); overpaid {
		r.logger.Warn("pagamentos acima do valor do pedido, tratado como pago",
			"order_id", id, "total_amount", o.TotalAmount, "paid", o.AmountPaid())
	}
	if err := o.Validate(); err != nil {
		return nil, apperror.Unprocessable(err.Error())
	}

	res, err := r.coll.UpdateOne(ctx, scoped(r.organizationID, bson.M{"_id": id}), bson.M{"$set": orderUpdateFields(o)})
	if err != nil {
		return nil, translate(err, "pedido", id)
	}
	if res.MatchedCount == 0 {
		return nil, apperror.NotFound("pedido", id)
	}
	return o, nil
}

// UpdatePaymentStatus implementa order.Repository.UpdatePaymentStatus
func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id string, status order.PaymentStatus) error {
	res, err := r.coll.UpdateOne(ctx,
		scoped(r.organizationID, bson.M{"_id": id}),
		bson.M{"$set": bson.M{"payment_status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return translate(err, "pedido", id)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("pedido", id)
	}
	return nil
}

// SelectByID implementa order.Repository.SelectByID
func (r *OrderRepository) SelectByID(ctx context.Context, id string, fastOrder bool) (*order.Order, error) {
	entity := "pedido"
	if fastOrder {
		entity = "pedido rápido"
	}
	return r.selectOne(ctx, bson.M{"_id": id, "is_fast_order": fastOrder}, entity, id)
}

// SelectAll implementa order.Repository.SelectAll
func (r *OrderRepository) SelectAll(ctx context.Context, filters order.Filters, page domain.Pagination) ([]*order.Order, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: buildOrderFilter(r.organizationID, filters)}},
		{{Key: "$sort", Value: parseOrderBy(filters.OrderBy)}},
	}
	if page.PageSize > 0 {
		pipeline = append(pipeline,
			bson.D{{Key: "$skip", Value: int64(page.Offset())}},
			bson.D{{Key: "$limit", Value: int64(page.PageSize)}},
		)
	}
	pipeline = append(pipeline, paymentsLookup(r.organizationID))

	return r.aggregate(ctx, pipeline)
}

// SelectAllWithoutFilters implementa order.Repository.SelectAllWithoutFilters
func (r *OrderRepository) SelectAllWithoutFilters(ctx context.Context, rng domain.DateRange) ([]*order.Order, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: scoped(r.organizationID, bson.M{"order_date": dateRange(rng)})}},
		{{Key: "$sort", Value: bson.D{{Key: "order_date", Value: 1}}}},
		paymentsLookup(r.organizationID),
	}
	return r.aggregate(ctx, pipeline)
}

// SelectCount implementa order.Repository.SelectCount
func (r *OrderRepository) SelectCount(ctx context.Context, filters order.Filters) (int, error) {
	n, err := r.coll.CountDocuments(ctx, buildOrderFilter(r.organizationID, filters))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	return int(n), nil
}

// ExistsFastOrderOn implementa order.Repository.ExistsFastOrderOn
func (r *OrderRepository) ExistsFastOrderOn(ctx context.Context, day time.Time) (bool, error) {
	filter := scoped(r.organizationID, bson.M{
		"is_fast_order":  true,
		"fast_order_day": day.UTC().Format(order.FastOrderDayLayout),
	})
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("erro ao verificar pedido rápido do dia: %w", err)
	}
	return n > 0, nil
}

// Delete implementa order.Repository.Delete
func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx,
		scoped(r.organizationID, bson.M{"_id": id}),
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return translate(err, "pedido", id)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("pedido", id)
	}
	return nil
}

func (r *OrderRepository) selectOne(ctx context.Context, extra bson.M, entity, id string) (*order.Order, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: scoped(r.organizationID, extra)}},
		{{Key: "$limit", Value: 1}},
		paymentsLookup(r.organizationID),
	}
	orders, err := r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperror.NotFound(entity, id)
	}
	return orders[0], nil
}

func (r *OrderRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*order.Order, error) {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar pedidos: %w", err)
	}
	defer cursor.Close(ctx)

	orders := make([]*order.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("erro ao ler pedidos: %w", err)
	}
	return orders, nil
}

// paymentsLookup anexa payments[] ao pedido em um único estágio de agregação
func paymentsLookup(organizationID string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.M{
		"from": colPayments,
		"let":  bson.M{"order_id": "$_id"},
		"pipeline": bson.A{
			bson.M{"$match": bson.M{"$expr": bson.M{"$and": bson.A{
				bson.M{"$eq": bson.A{"$order_id", "$$order_id"}},
				bson.M{"$eq": bson.A{"$organization_id", organizationID}},
				bson.M{"$eq": bson.A{"$is_active", true}},
			}}}},
			bson.M{"$sort": bson.M{"payment_date": 1}},
		},
		"as": "payments",
	}}}
}

// buildOrderFilter traduz os filtros de listagem; só traz pedidos comuns
func buildOrderFilter(organizationID string, f order.Filters) bson.M {
	extra := bson.M{"is_fast_order": false}

	if f.CustomerID != "" {
		extra["customer_id"] = f.CustomerID
	}
	if f.Status != "" {
		extra["status"] = f.Status
	}
	if len(f.PaymentStatus) > 0 {
		extra["payment_status"] = bson.M{"$in": f.PaymentStatus}
	}
	if f.DeliveryType != "" {
		extra["delivery.delivery_type"] = f.DeliveryType
	}
	if len(f.Tags) > 0 {
		extra["tags"] = bson.M{"$in": f.Tags}
	}
	if f.DateRange != nil {
		extra["preparation_date"] = dateRange(*f.DateRange)
	}
	if f.MinAmount != nil || f.MaxAmount != nil {
		amount := bson.M{}
		if f.MinAmount != nil {
			amount["$gte"] = *f.MinAmount
		}
		if f.MaxAmount != nil {
			amount["$lte"] = *f.MaxAmount
		}
		extra["total_amount"] = amount
	}
	if !f.IgnoreDefaultFilters {
		extra["$nor"] = bson.A{bson.M{"status": order.StatusDone, "payment_status": order.PaymentPaid}}
	}

	return scoped(organizationID, extra)
}

// parseOrderBy aceita "campo" ou "-campo"; campos desconhecidos usam a data de preparo
func parseOrderBy(orderBy string) bson.D {
	field := strings.TrimSpace(orderBy)
	direction := 1
	if strings.HasPrefix(field, "-") {
		direction = -1
		field = strings.TrimPrefix(field, "-")
	}
	if !orderSortFields[field] {
		return bson.D{{Key: "preparation_date", Value: 1}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: field, Value: direction}, {Key: "_id", Value: 1}}
}

func orderUpdateFields(o *order.Order) bson.M {
	return bson.M{
		"customer_id":      o.CustomerID,
		"status":           o.Status,
		"payment_status":   o.PaymentStatus,
		"products":         o.Products,
		"tags":             o.Tags,
		"delivery":         o.Delivery,
		"preparation_date": o.PreparationDate,
		"total_amount":     o.TotalAmount,
		"additional":       o.Additional,
		"discount":         o.Discount,
		"description":      o.Description,
		"updated_at":       o.UpdatedAt,
	}
}
