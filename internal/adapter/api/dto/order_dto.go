package dto

import (
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/customer"
	"github.com/hugohenrick/food-backoffice/internal/domain/order"
	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/service/orders"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// AdditionalRequest representa um adicional escolhido
type AdditionalRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"min=1"`
}

// OrderProductRequest representa um produto do pedido; preços vêm do cadastro
type OrderProductRequest struct {
	ProductID   string              `json:"product_id" binding:"required"`
	Quantity    int                 `json:"quantity" binding:"min=1"`
	Additionals []AdditionalRequest `json:"additionals" binding:"dive"`
}

// DeliveryRequest representa a forma de entrega
type DeliveryRequest struct {
	DeliveryType order.DeliveryType `json:"delivery_type" binding:"omitempty,oneof=DELIVERY WITHDRAWAL"`
	Address      *AddressRequest    `json:"address"`
	DeliveryDate *time.Time         `json:"delivery_date"`
}

// OrderRequest representa a requisição de criação ou substituição de pedido
type OrderRequest struct {
	CustomerID      string                `json:"customer_id"`
	Status          order.Status          `json:"status" binding:"omitempty,oneof=PENDING SCHEDULED IN_PREPARATION DONE CANCELED"`
	Products        []OrderProductRequest `json:"products" binding:"required,min=1,dive"`
	Tags            []string              `json:"tags"`
	Delivery        DeliveryRequest       `json:"delivery"`
	PreparationDate time.Time             `json:"preparation_date"`
	OrderDate       time.Time             `json:"order_date"`
	Additional      float64               `json:"additional" binding:"min=0"`
	Discount        float64               `json:"discount" binding:"min=0"`
	Description     string                `json:"description"`
}

// ToRequestOrder converte a requisição para a entrada do serviço de pedidos
func (r OrderRequest) ToRequestOrder() order.RequestOrder {
	products := make([]order.RequestedProduct, 0, len(r.Products))
	for _, p := range r.Products {
		additionals := make([]order.RequestedAdditional, 0, len(p.Additionals))
		for _, a := range p.Additionals {
			additionals = append(additionals, order.RequestedAdditional{ItemID: a.ItemID, Quantity: a.Quantity})
		}
		products = append(products, order.RequestedProduct{
			ProductID:   p.ProductID,
			Quantity:    p.Quantity,
			Additionals: additionals,
		})
	}

	return order.RequestOrder{
		CustomerID: r.CustomerID,
		Status:     r.Status,
		Products:   products,
		Tags:       r.Tags,
		Delivery: order.Delivery{
			Type:         r.Delivery.DeliveryType,
			Address:      r.Delivery.Address.toAddress(),
			DeliveryDate: r.Delivery.DeliveryDate,
		},
		PreparationDate: r.PreparationDate,
		OrderDate:       r.OrderDate,
		Additional:      r.Additional,
		Discount:        r.Discount,
		Description:     r.Description,
	}
}

// OrderStatusRequest representa a troca de status do pedido
type OrderStatusRequest struct {
	Status order.Status `json:"status" binding:"required"`
}

// PaymentRequest representa um pagamento lançado no pedido
type PaymentRequest struct {
	Method      payment.Method `json:"method" binding:"required,oneof=CASH PIX CREDIT_CARD DEBIT_CARD ZELLE"`
	Amount      float64        `json:"amount" binding:"required,gt=0"`
	PaymentDate time.Time      `json:"payment_date"`
}

// ToPaymentInput converte a requisição para a entrada do serviço
func (r PaymentRequest) ToPaymentInput() orders.PaymentInput {
	return orders.PaymentInput{Method: r.Method, Amount: r.Amount, PaymentDate: r.PaymentDate}
}

// OrderQuery representa os filtros de listagem de pedidos
type OrderQuery struct {
	PageQuery
	CustomerID    string   `form:"customerId"`
	Status        string   `form:"status"`
	PaymentStatus []string `form:"paymentStatus"`
	DeliveryType  string   `form:"deliveryType"`
	Tags          []string `form:"tags"`
	From          string   `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To            string   `form:"to" binding:"omitempty,datetime=2006-01-02"`
	MinAmount     *float64 `form:"minAmount"`
	MaxAmount     *float64 `form:"maxAmount"`
	OrderBy       string   `form:"orderBy"`
	All           bool     `form:"all"`
}

// ToFilters converte a consulta; o intervalo to é inclusivo
func (q OrderQuery) ToFilters() order.Filters {
	f := order.Filters{
		CustomerID:           q.CustomerID,
		Status:               order.Status(q.Status),
		DeliveryType:         order.DeliveryType(q.DeliveryType),
		Tags:                 q.Tags,
		MinAmount:            q.MinAmount,
		MaxAmount:            q.MaxAmount,
		OrderBy:              q.OrderBy,
		IgnoreDefaultFilters: q.All,
	}
	for _, s := range q.PaymentStatus {
		f.PaymentStatus = append(f.PaymentStatus, order.PaymentStatus(s))
	}
	if q.From != "" || q.To != "" {
		rng := domain.DateRange{}
		if from, err := time.Parse("2006-01-02", q.From); err == nil {
			rng.Start = from
		}
		if to, err := time.Parse("2006-01-02", q.To); err == nil {
			rng.End = to.AddDate(0, 0, 1)
		} else {
			rng.End = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}
		f.DateRange = &rng
	}
	return f
}

// StoredProductResponse representa um produto gravado no pedido
type StoredProductResponse struct {
	ProductID   string                         `json:"product_id"`
	Name        string                         `json:"name"`
	UnitPrice   float64                        `json:"unit_price"`
	Quantity    int                            `json:"quantity"`
	Additionals []StoredAdditionalItemResponse `json:"additionals"`
}

// StoredAdditionalItemResponse representa um adicional gravado no pedido
type StoredAdditionalItemResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// PaymentResponse representa um pagamento do pedido
type PaymentResponse struct {
	ID          string         `json:"id"`
	Method      payment.Method `json:"method"`
	Amount      float64        `json:"amount"`
	PaymentDate time.Time      `json:"payment_date"`
}

// OrderResponse representa a resposta de pedido
type OrderResponse struct {
	ID              string                  `json:"id"`
	CustomerID      string                  `json:"customer_id,omitempty"`
	Status          order.Status            `json:"status"`
	PaymentStatus   order.PaymentStatus     `json:"payment_status"`
	Products        []StoredProductResponse `json:"products"`
	Tags            []string                `json:"tags"`
	Delivery        DeliveryResponse        `json:"delivery"`
	PreparationDate time.Time               `json:"preparation_date"`
	OrderDate       time.Time               `json:"order_date"`
	TotalAmount     float64                 `json:"total_amount"`
	AmountPaid      float64                 `json:"amount_paid"`
	Additional      float64                 `json:"additional"`
	Discount        float64                 `json:"discount"`
	Description     string                  `json:"description,omitempty"`
	IsFastOrder     bool                    `json:"is_fast_order"`
	Payments        []PaymentResponse       `json:"payments"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

// DeliveryResponse representa a entrega do pedido ou da pré-venda
type DeliveryResponse struct {
	DeliveryType order.DeliveryType `json:"delivery_type"`
	Address      *AddressResponse   `json:"address,omitempty"`
	DeliveryDate *time.Time         `json:"delivery_date,omitempty"`
}

// ToOrderResponse converte um pedido para a resposta
func ToOrderResponse(o *order.Order) OrderResponse {
	products := make([]StoredProductResponse, 0, len(o.Products))
	for _, p := range o.Products {
		additionals := make([]StoredAdditionalItemResponse, 0, len(p.Additionals))
		for _, a := range p.Additionals {
			additionals = append(additionals, StoredAdditionalItemResponse{
				ItemID:    a.ItemID,
				Name:      a.Name,
				UnitPrice: a.UnitPrice,
				Quantity:  a.Quantity,
			})
		}
		products = append(products, StoredProductResponse{
			ProductID:   p.ProductID,
			Name:        p.Name,
			UnitPrice:   p.UnitPrice,
			Quantity:    p.Quantity,
			Additionals: additionals,
		})
	}

	payments := make([]PaymentResponse, 0, len(o.Payments))
	for _, p := range o.Payments {
		payments = append(payments, PaymentResponse{ID: p.ID, Method: p.Method, Amount: p.Amount, PaymentDate: p.PaymentDate})
	}

	tags := o.Tags
	if tags == nil {
		tags = []string{}
	}

	return OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Status:          o.Status,
		PaymentStatus:   o.PaymentStatus,
		Products:        products,
		Tags:            tags,
		Delivery:        toDeliveryResponse(o.Delivery),
		PreparationDate: o.PreparationDate,
		OrderDate:       o.OrderDate,
		TotalAmount:     o.TotalAmount,
		AmountPaid:      domain.Round2(o.AmountPaid()),
		Additional:      o.Additional,
		Discount:        o.Discount,
		Description:     o.Description,
		IsFastOrder:     o.IsFastOrder,
		Payments:        payments,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToOrderListResponse converte uma lista de pedidos
func ToOrderListResponse(list []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToOrderResponse(o))
	}
	return out
}

func toDeliveryResponse(d order.Delivery) DeliveryResponse {
	return DeliveryResponse{
		DeliveryType: d.Type,
		Address:      toAddressResponse(d.Address),
		DeliveryDate: d.DeliveryDate,
	}
}

// AddressRequest representa um endereço informado na requisição
type AddressRequest struct {
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code" binding:"required"`
	Reference  string `json:"reference"`
}

func (a *AddressRequest) toAddress() *customer.Address {
	if a == nil {
		return nil
	}
	addr := a.value()
	return &addr
}

func (a AddressRequest) value() customer.Address {
	return customer.Address{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Reference:  a.Reference,
	}
}

// AddressResponse representa um endereço na resposta
type AddressResponse struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zip_code"`
	Reference  string `json:"reference,omitempty"`
}

func toAddressResponse(a *customer.Address) *AddressResponse {
	if a == nil {
		return nil
	}
	return &AddressResponse{
		Street:     a.Street,
		Number:     a.Number,
		Complement: a.Complement,
		District:   a.District,
		City:       a.City,
		State:      a.State,
		ZipCode:    a.ZipCode,
		Reference:  a.Reference,
	}
}
