package expense

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
)

var (
	ErrEmptyName        = errors.New("nome da despesa não pode ser vazio")
	ErrInvalidTotalPaid = errors.New("valor pago deve ser maior que zero")
	ErrInvalidPayment   = errors.New("pagamento da despesa inválido")
)

// Expense representa uma despesa da organização
type Expense struct {
	ID             string            `json:"id" bson:"_id"`
	OrganizationID string            `json:"organization_id" bson:"organization_id"`
	Name           string            `json:"name" bson:"name"`
	ExpenseDate    time.Time         `json:"expense_date" bson:"expense_date"`
	TotalPaid      float64           `json:"total_paid" bson:"total_paid"`
	PaymentDetails []payment.Payment `json:"payment_details" bson:"payment_details"`
	Tags           []string          `json:"tags" bson:"tags"`
	IsActive       bool              `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" bson:"updated_at"`
}

// NewExpense cria uma despesa; o total pago é a soma dos pagamentos
func NewExpense(organizationID, name string, expenseDate time.Time, payments []payment.Payment, tags []string) (*Expense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	for _, p := range payments {
		if !p.Method.IsValid() || p.Amount <= 0 {
			return nil, ErrInvalidPayment
		}
	}

	total := payment.Sum(payments)
	if total <= 0 {
		return nil, ErrInvalidTotalPaid
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	return &Expense{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           name,
		ExpenseDate:    expenseDate.UTC(),
		TotalPaid:      total,
		PaymentDetails: payments,
		Tags:           tags,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}
