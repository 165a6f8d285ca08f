package tag

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome da tag não pode ser vazio")

// Tag classifica pedidos, despesas e clientes
type Tag struct {
	ID             string    `json:"id" bson:"_id"`
	OrganizationID string    `json:"organization_id" bson:"organization_id"`
	Name           string    `json:"name" bson:"name"`
	Color          string    `json:"color,omitempty" bson:"color,omitempty"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// NewTag cria uma nova tag
func NewTag(organizationID, name, color string) (*Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now().UTC()
	return &Tag{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Name:           name,
		Color:          color,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Repository define o acesso às tags da organização
type Repository interface {
	Create(ctx context.Context, t *Tag) error
	SelectByIDs(ctx context.Context, ids []string) ([]*Tag, error)
	Count(ctx context.Context) (int, error)
}
