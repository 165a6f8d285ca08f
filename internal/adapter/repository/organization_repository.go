package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/internal/domain/organization"
)

// OrganizationRepository lê o documento do próprio tenant
type OrganizationRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ organization.Repository = (*OrganizationRepository)(nil)

func NewOrganizationRepository(db *mongo.Database, organizationID string) *OrganizationRepository {
	return &OrganizationRepository{coll: db.Collection(colOrganizations), organizationID: organizationID}
}

// Select implementa organization.Repository.Select
func (r *OrganizationRepository) Select(ctx context.Context) (*organization.Organization, error) {
	var org organization.Organization
	filter := bson.M{"_id": r.organizationID, "is_active": true}
	if err := r.coll.FindOne(ctx, filter).Decode(&org); err != nil {
		return nil, translate(err, "organização", r.organizationID)
	}
	return &org, nil
}
