package order

import (
	"context"
	"time"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// RequestedAdditional é um adicional escolhido pelo cliente
type RequestedAdditional struct {
	ItemID   string
	Quantity int
}

// RequestedProduct é um produto pedido; preços vêm do cadastro, nunca do cliente
type RequestedProduct struct {
	ProductID   string
	Quantity    int
	Additionals []RequestedAdditional
}

// RequestOrder é a entrada para criação de pedidos
type RequestOrder struct {
	CustomerID      string
	Status          Status
	Products        []RequestedProduct
	Tags            []string
	Delivery        Delivery
	PreparationDate time.Time
	OrderDate       time.Time
	Additional      float64
	Discount        float64
	Description     string
}

// Filters restringe a listagem de pedidos
type Filters struct {
	CustomerID           string
	Status               Status
	PaymentStatus        []PaymentStatus
	DeliveryType         DeliveryType
	Tags                 []string
	DateRange            *domain.DateRange
	MinAmount            *float64
	MaxAmount            *float64
	OrderBy              string
	IgnoreDefaultFilters bool
}

// Patch contém os campos alteráveis de um pedido; nil mantém o valor atual
type Patch struct {
	CustomerID      *string
	Status          *Status
	Products        []StoredProduct
	Tags            []string
	Delivery        *Delivery
	PreparationDate *time.Time
	Additional      *float64
	Discount        *float64
	Description     *string
}

// Apply aplica o patch e recalcula os totais. Retorna true se houve pagamento a maior.
func (p Patch) Apply(o *Order) bool {
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Products != nil {
		o.Products = p.Products
	}
	if p.Tags != nil {
		o.Tags = p.Tags
	}
	if p.Delivery != nil {
		o.Delivery = *p.Delivery
	}
	if p.PreparationDate != nil {
		o.PreparationDate = p.PreparationDate.UTC()
	}
	if p.Additional != nil {
		o.Additional = *p.Additional
	}
	if p.Discount != nil {
		o.Discount = *p.Discount
	}
	if p.Description != nil {
		o.Description = *p.Description
	}
	o.UpdatedAt = time.Now().UTC()
	return o.RefreshTotals()
}

// Repository define o acesso a pedidos e pedidos rápidos de uma organização
type Repository interface {
	// Create grava o pedido com payment_status PENDING e o total informado
	Create(ctx context.Context, draft *Order, totalAmount float64) (*Order, error)

	// Update aplica um patch parcial recalculando o total antes de gravar
	Update(ctx context.Context, id string, patch Patch) (*Order, error)

	// UpdatePaymentStatus grava o status de pagamento derivado
	UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) error

	// SelectByID busca um pedido com os pagamentos anexados
	SelectByID(ctx context.Context, id string, fastOrder bool) (*Order, error)

	// SelectAll lista pedidos comuns aplicando filtros e paginação
	SelectAll(ctx context.Context, filters Filters, page domain.Pagination) ([]*Order, error)

	// SelectAllWithoutFilters retorna pedidos comuns e rápidos do intervalo
	SelectAllWithoutFilters(ctx context.Context, r domain.DateRange) ([]*Order, error)

	// SelectCount conta pedidos com os mesmos filtros da listagem
	SelectCount(ctx context.Context, filters Filters) (int, error)

	// ExistsFastOrderOn verifica se já existe pedido rápido no dia
	ExistsFastOrderOn(ctx context.Context, day time.Time) (bool, error)

	// Delete remove logicamente o pedido
	Delete(ctx context.Context, id string) error
}
