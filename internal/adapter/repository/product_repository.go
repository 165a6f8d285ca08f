package repository

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// ProductRepository implementa product.Repository
type ProductRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ product.Repository = (*ProductRepository)(nil)

func NewProductRepository(db *mongo.Database, organizationID string) *ProductRepository {
	return &ProductRepository{coll: db.Collection(colProducts), organizationID: organizationID}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	p.OrganizationID = r.organizationID
	p.IsActive = true
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return translate(err, "produto", p.ID)
	}
	return nil
}

func (r *ProductRepository) SelectByID(ctx context.Context, id string) (*product.Product, error) {
	var p product.Product
	if err := r.coll.FindOne(ctx, scoped(r.organizationID, bson.M{"_id": id})).Decode(&p); err != nil {
		return nil, translate(err, "produto", id)
	}
	return &p, nil
}

// SelectByIDs traz apenas os produtos encontrados; a ausência é tratada por quem chama
func (r *ProductRepository) SelectByIDs(ctx context.Context, ids []string) ([]*product.Product, error) {
	if len(ids) == 0 {
		return []*product.Product{}, nil
	}
	return r.find(ctx, scoped(r.organizationID, bson.M{"_id": bson.M{"$in": ids}}), domain.Pagination{})
}

func (r *ProductRepository) SelectAll(ctx context.Context, query string, page domain.Pagination) ([]*product.Product, error) {
	extra := bson.M{}
	if strings.TrimSpace(query) != "" {
		extra["name"] = containsText(query)
	}
	return r.find(ctx, scoped(r.organizationID, extra), page)
}

func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, scoped(r.organizationID, nil))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return int(n), nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, page domain.Pagination) ([]*product.Product, error) {
	cursor, err := r.coll.Find(ctx, filter, pageOptions(page, bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*product.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("erro ao ler produtos: %w", err)
	}
	return products, nil
}
