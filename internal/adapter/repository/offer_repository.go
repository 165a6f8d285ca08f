package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/hugohenrick/food-backoffice/internal/domain/offer"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// OfferRepository implementa offer.Repository
type OfferRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ offer.Repository = (*OfferRepository)(nil)

func NewOfferRepository(db *mongo.Database, organizationID string) *OfferRepository {
	return &OfferRepository{coll: db.Collection(colOffers), organizationID: organizationID}
}

func (r *OfferRepository) SelectByID(ctx context.Context, id string) (*offer.Offer, error) {
	var o offer.Offer
	if err := r.coll.FindOne(ctx, scoped(r.organizationID, bson.M{"_id": id})).Decode(&o); err != nil {
		return nil, translate(err, "oferta", id)
	}
	return &o, nil
}

func (r *OfferRepository) SelectAll(ctx context.Context, onlyVisible bool, page domain.Pagination) ([]*offer.Offer, error) {
	extra := bson.M{}
	if onlyVisible {
		extra["is_visible"] = true
	}

	cursor, err := r.coll.Find(ctx, scoped(r.organizationID, extra), pageOptions(page, bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ofertas: %w", err)
	}
	defer cursor.Close(ctx)

	offers := make([]*offer.Offer, 0)
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, fmt.Errorf("erro ao ler ofertas: %w", err)
	}
	return offers, nil
}
