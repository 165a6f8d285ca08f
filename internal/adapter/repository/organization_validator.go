package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	pkgtenant "github.com/hugohenrick/food-backoffice/pkg/tenant"
)

// OrganizationValidator confere se a organização do cabeçalho existe e está ativa
type OrganizationValidator struct {
	db *mongo.Database
}

var _ pkgtenant.Validator = (*OrganizationValidator)(nil)

// NewOrganizationValidator cria uma nova instância de OrganizationValidator
func NewOrganizationValidator(db *mongo.Database) *OrganizationValidator {
	return &OrganizationValidator{db: db}
}

// ValidateOrganization implementa tenant.Validator
func (v *OrganizationValidator) ValidateOrganization(ctx context.Context, organizationID string) (bool, error) {
	_, err := NewOrganizationRepository(v.db, organizationID).Select(ctx)
	if err != nil {
		if apperror.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
