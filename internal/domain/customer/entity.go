package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome não pode ser vazio")
	ErrInvalidPhone = errors.New("telefone inválido")
	ErrInvalidEmail = errors.New("email inválido")
)

// Phone representa o telefone no formato internacional + DDD + número
type Phone struct {
	InternationalCode string `json:"international_code" bson:"international_code"`
	LocalCode         string `json:"local_code" bson:"local_code"`
	Number            string `json:"number" bson:"number"`
}

// IsZero indica que nenhum telefone foi informado
func (p Phone) IsZero() bool {
	return p.InternationalCode == "" && p.LocalCode == "" && p.Number == ""
}

// Valid exige as três partes preenchidas
func (p Phone) Valid() bool {
	return p.InternationalCode != "" && p.LocalCode != "" && p.Number != ""
}

// String retorna o número completo sem separadores, como esperado pelo mensageiro
func (p Phone) String() string {
	return p.InternationalCode + p.LocalCode + p.Number
}

// Address representa um endereço de entrega
type Address struct {
	Street     string `json:"street" bson:"street"`
	Number     string `json:"number" bson:"number"`
	Complement string `json:"complement,omitempty" bson:"complement,omitempty"`
	District   string `json:"district" bson:"district"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	ZipCode    string `json:"zip_code" bson:"zip_code"`
	Reference  string `json:"reference,omitempty" bson:"reference,omitempty"`
}

// Customer representa um cliente da organização
type Customer struct {
	ID             string    `json:"id" bson:"_id"`
	OrganizationID string    `json:"organization_id" bson:"organization_id"`
	Name           string    `json:"name" bson:"name"`
	Phone          *Phone    `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string    `json:"email,omitempty" bson:"email,omitempty"`
	Document       string    `json:"document,omitempty" bson:"document,omitempty"`
	Addresses      []Address `json:"addresses" bson:"addresses"`
	Tags           []string  `json:"tags" bson:"tags"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// NewCustomer cria um novo cliente
func NewCustomer(organizationID, name string, phone *Phone, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if phone != nil && !phone.IsZero() && !phone.Valid() {
		return nil, ErrInvalidPhone
	}
	if phone != nil && phone.IsZero() {
		phone = nil
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email != "" && !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	now := time.Now().UTC()
	return &Customer{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           strings.TrimSpace(name),
		Phone:          phone,
		Email:          email,
		Addresses:      []Address{},
		Tags:           []string{},
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// HasAddress verifica pelo CEP se o endereço já está cadastrado
func (c *Customer) HasAddress(zipCode string) bool {
	zip := normalizeZip(zipCode)
	for _, addr := range c.Addresses {
		if normalizeZip(addr.ZipCode) == zip {
			return true
		}
	}
	return false
}

// MergeAddress adiciona o endereço quando o CEP ainda não existe.
// Retorna true se o cliente foi alterado.
func (c *Customer) MergeAddress(addr Address) bool {
	if c.HasAddress(addr.ZipCode) {
		return false
	}
	c.Addresses = append(c.Addresses, addr)
	c.UpdatedAt = time.Now().UTC()
	return true
}

func normalizeZip(zip string) string {
	return strings.NewReplacer("-", "", ".", "", " ", "").Replace(zip)
}
