package offer

import (
	"context"
	"time"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// OfferProduct é um produto que compõe a oferta
type OfferProduct struct {
	ProductID string  `json:"product_id" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	UnitCost  float64 `json:"unit_cost" bson:"unit_cost"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Offer é um combo de produtos vendido por preço fixo
type Offer struct {
	ID             string         `json:"id" bson:"_id"`
	OrganizationID string         `json:"organization_id" bson:"organization_id"`
	Name           string         `json:"name" bson:"name"`
	Description    string         `json:"description,omitempty" bson:"description,omitempty"`
	Products       []OfferProduct `json:"products" bson:"products"`
	Additionals    []string       `json:"additionals" bson:"additionals"`
	UnitPrice      float64        `json:"unit_price" bson:"unit_price"`
	UnitCost       float64        `json:"unit_cost" bson:"unit_cost"`
	StartsAt       *time.Time     `json:"starts_at,omitempty" bson:"starts_at,omitempty"`
	EndsAt         *time.Time     `json:"ends_at,omitempty" bson:"ends_at,omitempty"`
	IsVisible      bool           `json:"is_visible" bson:"is_visible"`
	IsActive       bool           `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// IsValidAt indica se a oferta está vigente no instante informado.
// Limites ausentes são abertos.
func (o *Offer) IsValidAt(now time.Time) bool {
	if o.StartsAt != nil && now.Before(*o.StartsAt) {
		return false
	}
	if o.EndsAt != nil && now.After(*o.EndsAt) {
		return false
	}
	return true
}

// Repository define o acesso às ofertas da organização
type Repository interface {
	SelectByID(ctx context.Context, id string) (*Offer, error)
	SelectAll(ctx context.Context, onlyVisible bool, page domain.Pagination) ([]*Offer, error)
}
