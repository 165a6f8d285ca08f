package expense

import (
	"context"
	"time"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// Filters restringe a listagem de despesas
type Filters struct {
	Query     string
	DateRange *domain.DateRange
	Tags      []string
}

// Patch contém os campos alteráveis de uma despesa
type Patch struct {
	Name        *string
	ExpenseDate *time.Time
	Tags        []string
}

// Repository define o acesso às despesas da organização
type Repository interface {
	Create(ctx context.Context, e *Expense) error
	Update(ctx context.Context, id string, patch Patch) (*Expense, error)
	SelectByID(ctx context.Context, id string) (*Expense, error)
	SelectAll(ctx context.Context, filters Filters, page domain.Pagination) ([]*Expense, error)
	SelectCountByDate(ctx context.Context, r domain.DateRange) (int, error)
	DeleteByID(ctx context.Context, id string) error
}
