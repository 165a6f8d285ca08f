package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// ExpenseRepository implementa expense.Repository
type ExpenseRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ expense.Repository = (*ExpenseRepository)(nil)

// NewExpenseRepository cria uma nova instância de ExpenseRepository
func NewExpenseRepository(db *mongo.Database, organizationID string) *ExpenseRepository {
	return &ExpenseRepository{coll: db.Collection(colExpenses), organizationID: organizationID}
}

// Create implementa expense.Repository.Create
func (r *ExpenseRepository) Create(ctx context.Context, e *expense.Expense) error {
	e.OrganizationID = r.organizationID
	e.IsActive = true
	for i := range e.PaymentDetails {
		e.PaymentDetails[i].OrganizationID = r.organizationID
		e.PaymentDetails[i].IsActive = true
	}
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return translate(err, "despesa", e.ID)
	}
	return nil
}

// Update implementa expense.Repository.Update
func (r *ExpenseRepository) Update(ctx context.Context, id string, patch expense.Patch) (*expense.Expense, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, apperror.Unprocessable(expense.ErrEmptyName.Error())
		}
		set["name"] = name
	}
	if patch.ExpenseDate != nil {
		set["expense_date"] = patch.ExpenseDate.UTC()
	}
	if patch.Tags != nil {
		set["tags"] = patch.Tags
	}

	var e expense.Expense
	err := r.coll.FindOneAndUpdate(ctx,
		scoped(r.organizationID, bson.M{"_id": id}),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&e)
	if err != nil {
		return nil, translate(err, "despesa", id)
	}
	return &e, nil
}

// SelectByID implementa expense.Repository.SelectByID
func (r *ExpenseRepository) SelectByID(ctx context.Context, id string) (*expense.Expense, error) {
	var e expense.Expense
	if err := r.coll.FindOne(ctx, scoped(r.organizationID, bson.M{"_id": id})).Decode(&e); err != nil {
		return nil, translate(err, "despesa", id)
	}
	return &e, nil
}

// SelectAll implementa expense.Repository.SelectAll
func (r *ExpenseRepository) SelectAll(ctx context.Context, filters expense.Filters, page domain.Pagination) ([]*expense.Expense, error) {
	cursor, err := r.coll.Find(ctx,
		buildExpenseFilter(r.organizationID, filters),
		pageOptions(page, bson.D{{Key: "expense_date", Value: -1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar despesas: %w", err)
	}
	defer cursor.Close(ctx)

	expenses := make([]*expense.Expense, 0)
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("erro ao ler despesas: %w", err)
	}
	return expenses, nil
}

// SelectCountByDate implementa expense.Repository.SelectCountByDate
func (r *ExpenseRepository) SelectCountByDate(ctx context.Context, rng domain.DateRange) (int, error) {
	n, err := r.coll.CountDocuments(ctx, scoped(r.organizationID, bson.M{"expense_date": dateRange(rng)}))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar despesas: %w", err)
	}
	return int(n), nil
}

// DeleteByID implementa expense.Repository.DeleteByID
func (r *ExpenseRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.UpdateOne(ctx,
		scoped(r.organizationID, bson.M{"_id": id}),
		bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return translate(err, "despesa", id)
	}
	if res.MatchedCount == 0 {
		return apperror.NotFound("despesa", id)
	}
	return nil
}

func buildExpenseFilter(organizationID string, f expense.Filters) bson.M {
	extra := bson.M{}
	if strings.TrimSpace(f.Query) != "" {
		extra["name"] = containsText(f.Query)
	}
	if f.DateRange != nil {
		extra["expense_date"] = dateRange(*f.DateRange)
	}
	if len(f.Tags) > 0 {
		extra["tags"] = bson.M{"$in": f.Tags}
	}
	return scoped(organizationID, extra)
}
