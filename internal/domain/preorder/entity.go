package preorder

import (
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
)

// Status representa a etapa da pré-venda
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// IsTerminal indica que a pré-venda já foi decidida
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// ItemKind diferencia produtos avulsos de ofertas
type ItemKind string

const (
	ItemKindProduct ItemKind = "PRODUCT"
	ItemKindOffer   ItemKind = "OFFER"
)

// Additional é um adicional escolhido na página pública
type Additional struct {
	ItemID    string  `json:"item_id" bson:"item_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	UnitCost  float64 `json:"unit_cost" bson:"unit_cost"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// OfferItem é um produto dentro de uma oferta
type OfferItem struct {
	ItemID      string       `json:"item_id" bson:"item_id"`
	Name        string       `json:"name" bson:"name"`
	Quantity    int          `json:"quantity" bson:"quantity"`
	Additionals []Additional `json:"additionals" bson:"additionals"`
}

// Item é uma linha da pré-venda: um produto ou uma oferta
type Item struct {
	Kind        ItemKind     `json:"kind" bson:"kind"`
	ItemID      string       `json:"item_id" bson:"item_id"`
	Name        string       `json:"name" bson:"name"`
	UnitPrice   float64      `json:"unit_price" bson:"unit_price"`
	UnitCost    float64      `json:"unit_cost" bson:"unit_cost"`
	Quantity    int          `json:"quantity" bson:"quantity"`
	Additionals []Additional `json:"additionals" bson:"additionals"`
	Items       []OfferItem  `json:"items,omitempty" bson:"items,omitempty"`
}

// Customer são os dados informados pelo cliente na pré-venda
type Customer struct {
	Name  string         `json:"name" bson:"name"`
	Phone customer.Phone `json:"phone" bson:"phone"`
}

// PreOrder é a intenção de compra capturada fora do back-office
type PreOrder struct {
	ID             string         `json:"id" bson:"_id"`
	OrganizationID string         `json:"organization_id" bson:"organization_id"`
	Code           string         `json:"code" bson:"code"`
	MenuID         string         `json:"menu_id" bson:"menu_id"`
	PaymentMethod  payment.Method `json:"payment_method" bson:"payment_method"`
	Customer       Customer       `json:"customer" bson:"customer"`
	Delivery       order.Delivery `json:"delivery" bson:"delivery"`
	Items          []Item         `json:"items" bson:"items"`
	Observation    string         `json:"observation,omitempty" bson:"observation,omitempty"`
	Status         Status         `json:"status" bson:"status"`
	TotalAmount    float64        `json:"total_amount" bson:"total_amount"`
	TotalCost      float64        `json:"total_cost" bson:"total_cost"`
	Tax            float64        `json:"tax" bson:"tax"`
	OrderID        string         `json:"order_id,omitempty" bson:"order_id,omitempty"`
	IsActive       bool           `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}
