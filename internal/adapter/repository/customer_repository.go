package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// CustomerRepository implementa customer.Repository
type CustomerRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ customer.Repository = (*CustomerRepository)(nil)

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *mongo.Database, organizationID string) *CustomerRepository {
	return &CustomerRepository{coll: db.Collection(colCustomers), organizationID: organizationID}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	c.OrganizationID = r.organizationID
	c.IsActive = true
	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("já existe um cliente com este telefone ou email")
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// SelectByID implementa customer.Repository.SelectByID
func (r *CustomerRepository) SelectByID(ctx context.Context, id string) (*customer.Customer, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

// SelectByPhone implementa customer.Repository.SelectByPhone
func (r *CustomerRepository) SelectByPhone(ctx context.Context, phone customer.Phone) (*customer.Customer, error) {
	return r.findOne(ctx, phoneFilter(phone), phone.String())
}

// SelectByEmail implementa customer.Repository.SelectByEmail
func (r *CustomerRepository) SelectByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.findOne(ctx, bson.M{"email": email}, email)
}

// SelectAll implementa customer.Repository.SelectAll
func (r *CustomerRepository) SelectAll(ctx context.Context, query string, page domain.Pagination) ([]*customer.Customer, error) {
	extra := bson.M{}
	if strings.TrimSpace(query) != "" {
		extra["name"] = containsText(query)
	}

	cursor, err := r.coll.Find(ctx, scoped(r.organizationID, extra), pageOptions(page, bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer cursor.Close(ctx)

	customers := make([]*customer.Customer, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("erro ao ler clientes: %w", err)
	}
	return customers, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	c.UpdatedAt = time.Now().UTC()
	set := bson.M{
		"name":       c.Name,
		"email":      c.Email,
		"document":   c.Document,
		"addresses":  c.Addresses,
		"tags":       c.Tags,
		"updated_at": c.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if c.Phone != nil {
		set["phone"] = c.Phone
	} else {
		update["$unset"] = bson.M{"phone": ""}
	}

	res, err := r.coll.UpdateOne(ctx, scoped(r.organizationID, bson.M{"_id": c.ID}), update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.Conflict("já existe um cliente com este telefone ou email")
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("cliente", c.ID)
	}
	return nil
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, scoped(r.organizationID, nil))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return int(n), nil
}

func (r *CustomerRepository) findOne(ctx context.Context, extra bson.M, id string) (*customer.Customer, error) {
	var c customer.Customer
	if err := r.coll.FindOne(ctx, scoped(r.organizationID, extra)).Decode(&c); err != nil {
		return nil, translate(err, "cliente", id)
	}
	return &c, nil
}

func phoneFilter(phone customer.Phone) bson.M {
	return bson.M{
		"phone.international_code": phone.InternationalCode,
		"phone.local_code":         phone.LocalCode,
		"phone.number":             phone.Number,
	}
}
