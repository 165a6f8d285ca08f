package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("nome do produto não pode ser vazio")
	ErrInvalidPrice  = errors.New("preço unitário não pode ser negativo")
	ErrInvalidCost   = errors.New("custo unitário não pode ser negativo")
	ErrInvalidBounds = errors.New("quantidade mínima maior que a máxima no adicional")
)

// AdditionalItem é uma opção precificada dentro de um grupo de adicionais
type AdditionalItem struct {
	ItemID    string  `json:"item_id" bson:"item_id"`
	Name      string  `json:"name" bson:"name"`
	UnitPrice float64 `json:"unit_price" bson:"unit_price"`
	UnitCost  float64 `json:"unit_cost" bson:"unit_cost"`
}

// Additional agrupa itens opcionais com limites de quantidade (ex.: coberturas)
type Additional struct {
	Name        string           `json:"name" bson:"name"`
	MinQuantity int              `json:"min_quantity" bson:"min_quantity"`
	MaxQuantity int              `json:"max_quantity" bson:"max_quantity"`
	Items       []AdditionalItem `json:"items" bson:"items"`
}

// Product representa um produto do cardápio
type Product struct {
	ID             string       `json:"id" bson:"_id"`
	OrganizationID string       `json:"organization_id" bson:"organization_id"`
	Name           string       `json:"name" bson:"name"`
	Description    string       `json:"description,omitempty" bson:"description,omitempty"`
	UnitPrice      float64      `json:"unit_price" bson:"unit_price"`
	UnitCost       float64      `json:"unit_cost" bson:"unit_cost"`
	Additionals    []Additional `json:"additionals" bson:"additionals"`
	Tags           []string     `json:"tags" bson:"tags"`
	IsActive       bool         `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" bson:"updated_at"`
}

// NewProduct cria um novo produto
func NewProduct(organizationID, name, description string, unitPrice, unitCost float64, additionals []Additional, tags []string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if unitPrice < 0 {
		return nil, ErrInvalidPrice
	}
	if unitCost < 0 {
		return nil, ErrInvalidCost
	}
	for i := range additionals {
		if additionals[i].MaxQuantity > 0 && additionals[i].MinQuantity > additionals[i].MaxQuantity {
			return nil, ErrInvalidBounds
		}
		for j := range additionals[i].Items {
			if additionals[i].Items[j].ItemID == "" {
				additionals[i].Items[j].ItemID = uuid.New().String()
			}
		}
	}
	if additionals == nil {
		additionals = []Additional{}
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	return &Product{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           name,
		Description:    description,
		UnitPrice:      unitPrice,
		UnitCost:       unitCost,
		Additionals:    additionals,
		Tags:           tags,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// FindAdditionalItem localiza um item de adicional e o grupo a que pertence
func (p *Product) FindAdditionalItem(itemID string) (*Additional, *AdditionalItem, bool) {
	for i := range p.Additionals {
		for j := range p.Additionals[i].Items {
			if p.Additionals[i].Items[j].ItemID == itemID {
				return &p.Additionals[i], &p.Additionals[i].Items[j], true
			}
		}
	}
	return nil, nil, false
}
