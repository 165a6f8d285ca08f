package order

import (
	"errors"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

var (
	ErrNoProducts         = errors.New("pedido precisa de ao menos um produto")
	ErrInvalidQuantity    = errors.New("quantidade deve ser maior ou igual a 1")
	ErrNegativeAdditional = errors.New("acréscimo não pode ser negativo")
	ErrNegativeDiscount   = errors.New("desconto não pode ser negativo")
	ErrInvalidStatus      = errors.New("status do pedido inválido")
	ErrMissingAddress     = errors.New("pedido para entrega precisa de endereço")
)

// FastOrderSameDayMessage é a mensagem devolvida ao repetir o pedido rápido do dia
const FastOrderSameDayMessage = "You cannot create two fast orders for the same day"

// FastOrderDayLayout é o formato do dia usado no índice único de pedidos rápidos
const FastOrderDayLayout = "2006-01-02"

// Status representa a etapa de preparo do pedido
type Status string

const (
	StatusPending       Status = "PENDING"
	StatusScheduled     Status = "SCHEDULED"
	StatusInPreparation Status = "IN_PREPARATION"
	StatusDone          Status = "DONE"
	StatusCanceled      Status = "CANCELED"
)

// IsValid verifica se o status é conhecido
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusInPreparation, StatusDone, StatusCanceled:
		return true
	}
	return false
}

// PaymentStatus é derivado da soma dos pagamentos
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "PENDING"
	PaymentPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentPaid          PaymentStatus = "PAID"
)

// DeliveryType indica se o pedido é entregue ou retirado
type DeliveryType string

const (
	DeliveryTypeDelivery   DeliveryType = "DELIVERY"
	DeliveryTypeWithdrawal DeliveryType = "WITHDRAWAL"
)

// Delivery descreve como o pedido chega ao cliente
type Delivery struct {
	Type         DeliveryType      `json:"delivery_type" bson:"delivery_type"`
	Address      *customer.Address `json:"address,omitempty" bson:"address,omitempty"`
	DeliveryDate *time.Time        `json:"delivery_date,omitempty" bson:"delivery_date,omitempty"`
}

// StoredAdditionalItem é o retrato de um adicional no momento do pedido
type StoredAdditionalItem struct {
	ItemID    string  `json:"item_id" bson:"item_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	UnitCost  float64 `json:"unit_cost" bson:"unit_cost"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// StoredProduct é o retrato imutável de um produto no momento do pedido
type StoredProduct struct {
	ProductID   string                 `json:"product_id" bson:"product_id"`
	Name        string                 `json:"name" bson:"name"`
	UnitPrice   float64                `json:"unit_price" bson:"unit_price"`
	UnitCost    float64                `json:"unit_cost" bson:"unit_cost"`
	Quantity    int                    `json:"quantity" bson:"quantity"`
	Additionals []StoredAdditionalItem `json:"additionals" bson:"additionals"`
}

// Order representa um pedido comum ou um pedido rápido (is_fast_order)
type Order struct {
	ID              string            `json:"id" bson:"_id"`
	OrganizationID  string            `json:"organization_id" bson:"organization_id"`
	CustomerID      string            `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	Status          Status            `json:"status" bson:"status"`
	PaymentStatus   PaymentStatus     `json:"payment_status" bson:"payment_status"`
	Products        []StoredProduct   `json:"products" bson:"products"`
	Tags            []string          `json:"tags" bson:"tags"`
	Delivery        Delivery          `json:"delivery" bson:"delivery"`
	PreparationDate time.Time         `json:"preparation_date" bson:"preparation_date"`
	OrderDate       time.Time         `json:"order_date" bson:"order_date"`
	TotalAmount     float64           `json:"total_amount" bson:"total_amount"`
	Additional      float64           `json:"additional" bson:"additional"`
	Discount        float64           `json:"discount" bson:"discount"`
	Description     string            `json:"description,omitempty" bson:"description,omitempty"`
	IsFastOrder     bool              `json:"is_fast_order" bson:"is_fast_order"`
	FastOrderDay    string            `json:"-" bson:"fast_order_day,omitempty"`
	Payments        []payment.Payment `json:"payments" bson:"payments,omitempty"`
	IsActive        bool              `json:"is_active" bson:"is_active"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at" bson:"updated_at"`
}

// ComputeTotal calcula o valor do pedido a partir dos itens:
// Σ(preço × qtd) + Σ(adicional × qtd adicional × qtd produto) + acréscimo − desconto.
func ComputeTotal(products []StoredProduct, additional, discount float64) float64 {
	var total float64
	for _, p := range products {
		qty := float64(p.Quantity)
		total += p.UnitPrice * qty
		for _, a := range p.Additionals {
			total += a.UnitPrice * float64(a.Quantity) * qty
		}
	}
	return domain.Round2(total + additional - discount)
}

// ComputeCost calcula o custo dos itens do pedido
func ComputeCost(products []StoredProduct) float64 {
	var cost float64
	for _, p := range products {
		qty := float64(p.Quantity)
		cost += p.UnitCost * qty
		for _, a := range p.Additionals {
			cost += a.UnitCost * float64(a.Quantity) * qty
		}
	}
	return domain.Round2(cost)
}

// DerivePaymentStatus compara o total pago com o valor do pedido.
// Pagamento acima do total é tratado como PAID; overpaid sinaliza o excesso.
func DerivePaymentStatus(totalAmount, paid float64) (status PaymentStatus, overpaid bool) {
	t, p := domain.Round2(totalAmount), domain.Round2(paid)
	switch {
	case p <= 0:
		return PaymentPending, false
	case p == t:
		return PaymentPaid, false
	case p > t:
		return PaymentPaid, true
	default:
		return PaymentPartiallyPaid, false
	}
}

// RefreshTotals recalcula o valor e o status de pagamento a partir dos pagamentos anexados
func (o *Order) RefreshTotals() (overpaid bool) {
	o.TotalAmount = ComputeTotal(o.Products, o.Additional, o.Discount)
	o.PaymentStatus, overpaid = DerivePaymentStatus(o.TotalAmount, payment.Sum(o.Payments))
	return overpaid
}

// AmountPaid soma os pagamentos anexados ao pedido
func (o *Order) AmountPaid() float64 {
	return payment.Sum(o.Payments)
}

// IsTerminal indica que o pedido não muda mais: entregue e pago, ou cancelado
func (o *Order) IsTerminal() bool {
	return o.Status == StatusCanceled || (o.Status == StatusDone && o.PaymentStatus == PaymentPaid)
}

// Validate confere as regras de escrita do pedido
func (o *Order) Validate() error {
	if len(o.Products) == 0 {
		return ErrNoProducts
	}
	for _, p := range o.Products {
		if p.Quantity < 1 {
			return ErrInvalidQuantity
		}
		for _, a := range p.Additionals {
			if a.Quantity < 1 {
				return ErrInvalidQuantity
			}
		}
	}
	if o.Additional < 0 {
		return ErrNegativeAdditional
	}
	if o.Discount < 0 {
		return ErrNegativeDiscount
	}
	if !o.IsFastOrder && !o.Status.IsValid() {
		return ErrInvalidStatus
	}
	if o.Delivery.Type == DeliveryTypeDelivery && o.Delivery.Address == nil {
		return ErrMissingAddress
	}
	return nil
}
