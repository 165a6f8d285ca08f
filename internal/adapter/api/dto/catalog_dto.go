package dto

import (
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/expense"
	"github.com/hugohenrick/food-backoffice/internal/domain/offer"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/product"
	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
	"github.com/hugohenrick/food-backoffice/internal/service/catalog"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// SearchQuery representa a busca textual paginada
type SearchQuery struct {
	PageQuery
	Query string `form:"q"`
}

// AdditionalItemRequest representa uma opção dentro de um grupo de adicionais
type AdditionalItemRequest struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name" binding:"required"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
	UnitCost  float64 `json:"unit_cost" binding:"min=0"`
}

// AdditionalGroupRequest representa um grupo de adicionais do produto
type AdditionalGroupRequest struct {
	Name        string                  `json:"name" binding:"required"`
	MinQuantity int                     `json:"min_quantity" binding:"min=0"`
	MaxQuantity int                     `json:"max_quantity" binding:"min=0"`
	Items       []AdditionalItemRequest `json:"items" binding:"dive"`
}

// ProductRequest representa a requisição de criação de produto
type ProductRequest struct {
	Name        string                   `json:"name" binding:"required,max=120"`
	Description string                   `json:"description" binding:"max=500"`
	UnitPrice   float64                  `json:"unit_price" binding:"min=0"`
	UnitCost    float64                  `json:"unit_cost" binding:"min=0"`
	Additionals []AdditionalGroupRequest `json:"additionals" binding:"dive"`
	Tags        []string                 `json:"tags"`
}

// ToInput converte a requisição para a entrada do serviço de cadastro
func (r ProductRequest) ToInput() catalog.ProductInput {
	groups := make([]product.Additional, 0, len(r.Additionals))
	for _, g := range r.Additionals {
		items := make([]product.AdditionalItem, 0, len(g.Items))
		for _, i := range g.Items {
			items = append(items, product.AdditionalItem(i))
		}
		groups = append(groups, product.Additional{
			Name:        g.Name,
			MinQuantity: g.MinQuantity,
			MaxQuantity: g.MaxQuantity,
			Items:       items,
		})
	}
	return catalog.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		UnitCost:    r.UnitCost,
		Additionals: groups,
		Tags:        r.Tags,
	}
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	UnitPrice   float64              `json:"unit_price"`
	UnitCost    float64              `json:"unit_cost"`
	Additionals []product.Additional `json:"additionals"`
	Tags        []string             `json:"tags"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToProductResponse converte um produto para a resposta
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		UnitCost:    p.UnitCost,
		Additionals: p.Additionals,
		Tags:        p.Tags,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos
func ToProductListResponse(list []*product.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToProductResponse(p))
	}
	return out
}

// TagRequest representa a requisição de criação de tag
type TagRequest struct {
	Name  string `json:"name" binding:"required,max=60"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// TagResponse representa a resposta de tag
type TagResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToTagResponse converte uma tag para a resposta
func ToTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{ID: t.ID, Name: t.Name, Color: t.Color, CreatedAt: t.CreatedAt}
}

// PhoneRequest representa um telefone em três partes
type PhoneRequest struct {
	InternationalCode string `json:"international_code" binding:"required,numeric"`
	LocalCode         string `json:"local_code" binding:"required,numeric"`
	Number            string `json:"number" binding:"required,numeric"`
}

// PhoneResponse representa um telefone na resposta
type PhoneResponse struct {
	InternationalCode string `json:"international_code"`
	LocalCode         string `json:"local_code"`
	Number            string `json:"number"`
}

func toPhoneResponse(p customer.Phone) PhoneResponse {
	return PhoneResponse(p)
}

// CustomerRequest representa a requisição de criação de cliente
type CustomerRequest struct {
	Name      string           `json:"name" binding:"required,max=120"`
	Phone     *PhoneRequest    `json:"phone"`
	Email     string           `json:"email" binding:"omitempty,email"`
	Document  string           `json:"document"`
	Addresses []AddressRequest `json:"addresses" binding:"dive"`
	Tags      []string         `json:"tags"`
}

// ToInput converte a requisição para a entrada do serviço de cadastro
func (r CustomerRequest) ToInput() catalog.CustomerInput {
	in := catalog.CustomerInput{
		Name:     r.Name,
		Email:    r.Email,
		Document: r.Document,
		Tags:     r.Tags,
	}
	if r.Phone != nil {
		phone := customer.Phone(*r.Phone)
		in.Phone = &phone
	}
	for _, a := range r.Addresses {
		in.Addresses = append(in.Addresses, a.value())
	}
	return in
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Phone     *PhoneResponse    `json:"phone,omitempty"`
	Email     string            `json:"email,omitempty"`
	Document  string            `json:"document,omitempty"`
	Addresses []AddressResponse `json:"addresses"`
	Tags      []string          `json:"tags"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// ToCustomerResponse converte um cliente para a resposta
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Document:  c.Document,
		Addresses: make([]AddressResponse, 0, len(c.Addresses)),
		Tags:      c.Tags,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.Phone != nil {
		phone := toPhoneResponse(*c.Phone)
		resp.Phone = &phone
	}
	for i := range c.Addresses {
		resp.Addresses = append(resp.Addresses, *toAddressResponse(&c.Addresses[i]))
	}
	return resp
}

// ToCustomerListResponse converte uma lista de clientes
func ToCustomerListResponse(list []*customer.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out
}

// ExpensePaymentRequest representa um pagamento da despesa
type ExpensePaymentRequest struct {
	Method      payment.Method `json:"method" binding:"required,oneof=CASH PIX CREDIT_CARD DEBIT_CARD ZELLE"`
	Amount      float64        `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time      `json:"payment_date"`
}

// ExpenseRequest representa a requisição de criação de despesa
type ExpenseRequest struct {
	Name           string                  `json:"name" binding:"required,max=120"`
	ExpenseDate    time.Time               `json:"expense_date"`
	PaymentDetails []ExpensePaymentRequest `json:"payment_details" binding:"required,min=1,dive"`
	Tags           []string                `json:"tags"`
}

// ToInput converte a requisição para a entrada do serviço de cadastro
func (r ExpenseRequest) ToInput() catalog.ExpenseInput {
	payments := make([]payment.Payment, 0, len(r.PaymentDetails))
	for _, p := range r.PaymentDetails {
		payments = append(payments, payment.Payment{Method: p.Method, Amount: p.Amount, PaymentDate: p.PaymentDate.UTC()})
	}
	return catalog.ExpenseInput{
		Name:        r.Name,
		ExpenseDate: r.ExpenseDate,
		Payments:    payments,
		Tags:        r.Tags,
	}
}

// ExpenseQuery representa os filtros de listagem de despesas
type ExpenseQuery struct {
	PageQuery
	Query     string   `form:"q"`
	MonthYear string   `form:"monthYear" binding:"omitempty,monthyear"`
	Tags      []string `form:"tags"`
}

// ToFilters converte a consulta; monthYear restringe ao mês informado
func (q ExpenseQuery) ToFilters() expense.Filters {
	f := expense.Filters{Query: q.Query, Tags: q.Tags}
	if month, year, err := domain.ParseMonthYear(q.MonthYear); err == nil {
		rng := domain.MonthRange(month, year)
		f.DateRange = &rng
	}
	return f
}

// ExpenseResponse representa a resposta de despesa
type ExpenseResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	ExpenseDate    time.Time         `json:"expense_date"`
	TotalPaid      float64           `json:"total_paid"`
	PaymentDetails []PaymentResponse `json:"payment_details"`
	Tags           []string          `json:"tags"`
	CreatedAt      time.Time         `json:"created_at"`
}

// ToExpenseResponse converte uma despesa para a resposta
func ToExpenseResponse(e *expense.Expense) ExpenseResponse {
	payments := make([]PaymentResponse, 0, len(e.PaymentDetails))
	for _, p := range e.PaymentDetails {
		payments = append(payments, PaymentResponse{ID: p.ID, Method: p.Method, Amount: p.Amount, PaymentDate: p.PaymentDate})
	}
	return ExpenseResponse{
		ID:             e.ID,
		Name:           e.Name,
		ExpenseDate:    e.ExpenseDate,
		TotalPaid:      e.TotalPaid,
		PaymentDetails: payments,
		Tags:           e.Tags,
		CreatedAt:      e.CreatedAt,
	}
}

// ToExpenseListResponse converte uma lista de despesas
func ToExpenseListResponse(list []*expense.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(list))
	for _, e := range list {
		out = append(out, ToExpenseResponse(e))
	}
	return out
}

// OfferResponse representa uma oferta do cardápio
type OfferResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Products    []offer.OfferProduct `json:"products"`
	UnitPrice   float64              `json:"unit_price"`
	StartsAt    *time.Time           `json:"starts_at,omitempty"`
	EndsAt      *time.Time           `json:"ends_at,omitempty"`
}

// ToOfferListResponse converte uma lista de ofertas
func ToOfferListResponse(list []*offer.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(list))
	for _, o := range list {
		out = append(out, OfferResponse{
			ID:          o.ID,
			Name:        o.Name,
			Description: o.Description,
			Products:    o.Products,
			UnitPrice:   o.UnitPrice,
			StartsAt:    o.StartsAt,
			EndsAt:      o.EndsAt,
		})
	}
	return out
}
