package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod = errors.New("forma de pagamento inválida")
	ErrInvalidAmount = errors.New("valor do pagamento deve ser maior que zero")
)

// Method representa a forma de pagamento
type Method string

const (
	MethodCash       Method = "CASH"
	MethodPix        Method = "PIX"
	MethodCreditCard Method = "CREDIT_CARD"
	MethodDebitCard  Method = "DEBIT_CARD"
	MethodZelle      Method = "ZELLE"
)

// IsValid verifica se a forma de pagamento é conhecida
func (m Method) IsValid() bool {
	switch m {
	case MethodCash, MethodPix, MethodCreditCard, MethodDebitCard, MethodZelle:
		return true
	}
	return false
}

// Payment representa um pagamento de pedido ou despesa
type Payment struct {
	ID             string    `json:"id" bson:"_id"`
	OrganizationID string    `json:"organization_id" bson:"organization_id"`
	OrderID        string    `json:"order_id,omitempty" bson:"order_id,omitempty"`
	Method         Method    `json:"method" bson:"method"`
	PaymentDate    time.Time `json:"payment_date" bson:"payment_date"`
	Amount         float64   `json:"amount" bson:"amount"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// NewPayment cria um pagamento vinculado a um pedido
func NewPayment(organizationID, orderID string, method Method, amount float64, paymentDate time.Time) (*Payment, error) {
	if !method.IsValid() {
		return nil, ErrInvalidMethod
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if paymentDate.IsZero() {
		paymentDate = time.Now()
	}

	now := time.Now().UTC()
	return &Payment{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		OrderID:        orderID,
		Method:         method,
		PaymentDate:    paymentDate.UTC(),
		Amount:         amount,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Sum soma os valores pagos
func Sum(payments []Payment) float64 {
	var total float64
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// Repository define o acesso aos pagamentos de pedidos
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	SelectByOrder(ctx context.Context, orderID string) ([]Payment, error)
}
