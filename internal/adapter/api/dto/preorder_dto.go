package dto

import (
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/payment"
	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
)

// PreOrderStatusRequest representa a troca manual de status da pré-venda
type PreOrderStatusRequest struct {
	Status  preorder.Status `json:"status" binding:"required,oneof=PENDING ACCEPTED REJECTED"`
	OrderID string          `json:"order_id"`
}

// PreOrderQuery representa os filtros de listagem de pré-vendas
type PreOrderQuery struct {
	PageQuery
	Status string `form:"status"`
}

// PreOrderAdditionalResponse representa um adicional da pré-venda
type PreOrderAdditionalResponse struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// PreOrderOfferItemResponse representa um produto dentro de uma oferta
type PreOrderOfferItemResponse struct {
	ItemID      string                       `json:"item_id"`
	Name        string                       `json:"name"`
	Quantity    int                          `json:"quantity"`
	Additionals []PreOrderAdditionalResponse `json:"additionals"`
}

// PreOrderItemResponse representa uma linha da pré-venda
type PreOrderItemResponse struct {
	Kind        preorder.ItemKind            `json:"kind"`
	ItemID      string                       `json:"item_id"`
	Name        string                       `json:"name"`
	UnitPrice   float64                      `json:"unit_price"`
	Quantity    int                          `json:"quantity"`
	Additionals []PreOrderAdditionalResponse `json:"additionals"`
	Items       []PreOrderOfferItemResponse  `json:"items,omitempty"`
}

// PreOrderCustomerResponse representa o cliente informado na pré-venda
type PreOrderCustomerResponse struct {
	Name  string        `json:"name"`
	Phone PhoneResponse `json:"phone"`
}

// PreOrderResponse representa a resposta de pré-venda
type PreOrderResponse struct {
	ID            string                   `json:"id"`
	Code          string                   `json:"code"`
	MenuID        string                   `json:"menu_id"`
	PaymentMethod payment.Method           `json:"payment_method"`
	Customer      PreOrderCustomerResponse `json:"customer"`
	Delivery      DeliveryResponse         `json:"delivery"`
	Items         []PreOrderItemResponse   `json:"items"`
	Observation   string                   `json:"observation,omitempty"`
	Status        preorder.Status          `json:"status"`
	TotalAmount   float64                  `json:"total_amount"`
	Tax           float64                  `json:"tax"`
	OrderID       string                   `json:"order_id,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

// ToPreOrderResponse converte uma pré-venda para a resposta; custos ficam de fora
func ToPreOrderResponse(p *preorder.PreOrder) PreOrderResponse {
	items := make([]PreOrderItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		var inner []PreOrderOfferItemResponse
		for _, i := range item.Items {
			inner = append(inner, PreOrderOfferItemResponse{
				ItemID:      i.ItemID,
				Name:        i.Name,
				Quantity:    i.Quantity,
				Additionals: toPreOrderAdditionals(i.Additionals),
			})
		}
		items = append(items, PreOrderItemResponse{
			Kind:        item.Kind,
			ItemID:      item.ItemID,
			Name:        item.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Additionals: toPreOrderAdditionals(item.Additionals),
			Items:       inner,
		})
	}

	return PreOrderResponse{
		ID:            p.ID,
		Code:          p.Code,
		MenuID:        p.MenuID,
		PaymentMethod: p.PaymentMethod,
		Customer: PreOrderCustomerResponse{
			Name:  p.Customer.Name,
			Phone: toPhoneResponse(p.Customer.Phone),
		},
		Delivery:    toDeliveryResponse(p.Delivery),
		Items:       items,
		Observation: p.Observation,
		Status:      p.Status,
		TotalAmount: p.TotalAmount,
		Tax:         p.Tax,
		OrderID:     p.OrderID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPreOrderListResponse converte uma lista de pré-vendas
func ToPreOrderListResponse(list []*preorder.PreOrder) []PreOrderResponse {
	out := make([]PreOrderResponse, 0, len(list))
	for _, p := range list {
		out = append(out, ToPreOrderResponse(p))
	}
	return out
}

func toPreOrderAdditionals(in []preorder.Additional) []PreOrderAdditionalResponse {
	out := make([]PreOrderAdditionalResponse, 0, len(in))
	for _, a := range in {
		out = append(out, PreOrderAdditionalResponse{ItemID: a.ItemID, Name: a.Name, UnitPrice: a.UnitPrice, Quantity: a.Quantity})
	}
	return out
}
