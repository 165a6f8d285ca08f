package preorder

import (
	"context"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// Repository define o acesso às pré-vendas da organização
type Repository interface {
	SelectByID(ctx context.Context, id string) (*PreOrder, error)

	// SelectAll lista as pré-vendas; status vazio traz todas
	SelectAll(ctx context.Context, status Status, page domain.Pagination) ([]*PreOrder, error)

	// CountByStatus conta as pré-vendas no status informado
	CountByStatus(ctx context.Context, status Status) (int, error)

	// UpdateStatus grava o novo status somente se a pré-venda ainda estiver PENDING.
	// Retorna Conflict quando outro processo já decidiu a pré-venda.
	UpdateStatus(ctx context.Context, id string, status Status, orderID string) (*PreOrder, error)
}
