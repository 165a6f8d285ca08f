package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
)

// PaymentRepository implementa payment.Repository
type PaymentRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ payment.Repository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *mongo.Database, organizationID string) *PaymentRepository {
	return &PaymentRepository{coll: db.Collection(colPayments), organizationID: organizationID}
}

// Create implementa payment.Repository.Create
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	p.OrganizationID = r.organizationID
	p.IsActive = true
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return translate(err, "pagamento", p.ID)
	}
	return nil
}

// SelectByOrder implementa payment.Repository.SelectByOrder
func (r *PaymentRepository) SelectByOrder(ctx context.Context, orderID string) ([]payment.Payment, error) {
	cursor, err := r.coll.Find(ctx,
		scoped(r.organizationID, bson.M{"order_id": orderID}),
		options.Find().SetSort(bson.D{{Key: "payment_date", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pagamentos: %w", err)
	}
	defer cursor.Close(ctx)

	payments := make([]payment.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("erro ao ler pagamentos: %w", err)
	}
	return payments, nil
}
