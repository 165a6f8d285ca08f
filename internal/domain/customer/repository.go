package customer

import (
	"context"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// Repository define a interface para operações de repositório de clientes.
// Toda implementação é restrita a uma organização.
type Repository interface {
	// Create cria um novo cliente; telefone ou email duplicado retorna Conflict
	Create(ctx context.Context, c *Customer) error

	// SelectByID busca um cliente pelo ID
	SelectByID(ctx context.Context, id string) (*Customer, error)

	// SelectByPhone busca um cliente pelo telefone completo
	SelectByPhone(ctx context.Context, phone Phone) (*Customer, error)

	// SelectByEmail busca um cliente pelo email
	SelectByEmail(ctx context.Context, email string) (*Customer, error)

	// SelectAll lista os clientes com filtro opcional por nome
	SelectAll(ctx context.Context, query string, page domain.Pagination) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Count conta os clientes ativos da organização
	Count(ctx context.Context) (int, error)
}
