package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoConfig contém as configurações do banco de documentos
type MongoConfig struct {
	URI            string
	Database       string
	MaxPoolSize    uint64
	ConnectTimeout time.Duration
}

// NewMongoClient conecta ao MongoDB e valida a conexão com um ping
func NewMongoClient(ctx context.Context, cfg MongoConfig) (*mongo.Client, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("erro ao verificar conexão com o MongoDB: %w", err)
	}

	return client, nil
}

// Indexes descreve os índices exigidos por coleção. Os únicos garantem
// cliente sem telefone/email repetido e um pedido rápido por dia.
func Indexes() map[string][]mongo.IndexModel {
	active := bson.M{"is_active": true}

	return map[string][]mongo.IndexModel{
		"customers": {
			{
				Keys: bson.D{
					{Key: "organization_id", Value: 1},
					{Key: "phone.international_code", Value: 1},
					{Key: "phone.local_code", Value: 1},
					{Key: "phone.number", Value: 1},
				},
				Options: options.Index().SetName("uniq_customer_phone").SetUnique(true).
					SetPartialFilterExpression(bson.M{"is_active": true, "phone.number": bson.M{"$exists": true}}),
			},
			{
				Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "email", Value: 1}},
				Options: options.Index().SetName("uniq_customer_email").SetUnique(true).
					SetPartialFilterExpression(bson.M{"is_active": true, "email": bson.M{"$type": "string"}}),
			},
		},
		"orders": {
			{
				Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "fast_order_day", Value: 1}},
				Options: options.Index().SetName("uniq_fast_order_day").SetUnique(true).
					SetPartialFilterExpression(bson.M{"is_active": true, "is_fast_order": true}),
			},
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "order_date", Value: 1}},
				Options: options.Index().SetName("idx_orders_order_date"),
			},
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "preparation_date", Value: 1}},
				Options: options.Index().SetName("idx_orders_preparation_date").SetPartialFilterExpression(active),
			},
		},
		"payments": {
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "order_id", Value: 1}},
				Options: options.Index().SetName("idx_payments_order_id"),
			},
		},
		"expenses": {
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "expense_date", Value: 1}},
				Options: options.Index().SetName("idx_expenses_expense_date"),
			},
		},
		"pre_orders": {
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "code", Value: 1}},
				Options: options.Index().SetName("idx_pre_orders_code"),
			},
			{
				Keys:    bson.D{{Key: "organization_id", Value: 1}, {Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_pre_orders_status"),
			},
		},
	}
}

// EnsureIndexes cria os índices de todas as coleções; índices existentes são mantidos
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range Indexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("erro ao criar índices de %s: %w", collection, err)
		}
	}
	return nil
}
