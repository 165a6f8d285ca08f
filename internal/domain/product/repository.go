package product

import (
	"context"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// Repository define o acesso aos produtos da organização
type Repository interface {
	Create(ctx context.Context, p *Product) error
	SelectByID(ctx context.Context, id string) (*Product, error)
	SelectByIDs(ctx context.Context, ids []string) ([]*Product, error)
	SelectAll(ctx context.Context, query string, page domain.Pagination) ([]*Product, error)
	Count(ctx context.Context) (int, error)
}
