package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hugohenrick/food-backoffice/internal/domain/tag"
)

// TagRepository implementa tag.Repository
type TagRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ tag.Repository = (*TagRepository)(nil)

func NewTagRepository(db *mongo.Database, organizationID string) *TagRepository {
	return &TagRepository{coll: db.Collection(colTags), organizationID: organizationID}
}

func (r *TagRepository) Create(ctx context.Context, t *tag.Tag) error {
	t.OrganizationID = r.organizationID
	t.IsActive = true
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return translate(err, "tag", t.ID)
	}
	return nil
}

func (r *TagRepository) SelectByIDs(ctx context.Context, ids []string) ([]*tag.Tag, error) {
	tags := make([]*tag.Tag, 0)
	if len(ids) == 0 {
		return tags, nil
	}

	cursor, err := r.coll.Find(ctx,
		scoped(r.organizationID, bson.M{"_id": bson.M{"$in": ids}}),
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar tags: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &tags); err != nil {
		return nil, fmt.Errorf("erro ao ler tags: %w", err)
	}
	return tags, nil
}

func (r *TagRepository) Count(ctx context.Context) (int, error) {
	n, err := r.coll.CountDocuments(ctx, scoped(r.organizationID, nil))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar tags: %w", err)
	}
	return int(n), nil
}
