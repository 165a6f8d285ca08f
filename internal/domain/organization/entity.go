package organization

import (
	"context"
	"time"
)

// Organization é o tenant: dono de todos os dados
type Organization struct {
	ID                       string    `json:"id" bson:"_id"`
	Name                     string    `json:"name" bson:"name"`
	Email                    string    `json:"email,omitempty" bson:"email,omitempty"`
	EnableOrderNotifications bool      `json:"enable_order_notifications" bson:"enable_order_notifications"`
	IsActive                 bool      `json:"is_active" bson:"is_active"`
	CreatedAt                time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt                time.Time `json:"updated_at" bson:"updated_at"`
}

// Repository lê a organização do tenant corrente; o cadastro fica fora deste serviço
type Repository interface {
	Select(ctx context.Context) (*Organization, error)
}
