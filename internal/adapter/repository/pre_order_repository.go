package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hugohenrick/food-backoffice/internal/domain/preorder"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// PreOrderRepository implementa preorder.Repository
type PreOrderRepository struct {
	coll           *mongo.Collection
	organizationID string
}

var _ preorder.Repository = (*PreOrderRepository)(nil)

// NewPreOrderRepository cria uma nova instância de PreOrderRepository
func NewPreOrderRepository(db *mongo.Database, organizationID string) *PreOrderRepository {
	return &PreOrderRepository{coll: db.Collection(colPreOrders), organizationID: organizationID}
}

// SelectByID implementa preorder.Repository.SelectByID
func (r *PreOrderRepository) SelectByID(ctx context.Context, id string) (*preorder.PreOrder, error) {
	var p preorder.PreOrder
	if err := r.coll.FindOne(ctx, scoped(r.organizationID, bson.M{"_id": id})).Decode(&p); err != nil {
		return nil, translate(err, "pré-venda", id)
	}
	return &p, nil
}

// SelectAll implementa preorder.Repository.SelectAll
func (r *PreOrderRepository) SelectAll(ctx context.Context, status preorder.Status, page domain.Pagination) ([]*preorder.PreOrder, error) {
	cursor, err := r.coll.Find(ctx,
		scoped(r.organizationID, statusFilter(status)),
		pageOptions(page, bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pré-vendas: %w", err)
	}
	defer cursor.Close(ctx)

	preOrders := make([]*preorder.PreOrder, 0)
	if err := cursor.All(ctx, &preOrders); err != nil {
		return nil, fmt.Errorf("erro ao ler pré-vendas: %w", err)
	}
	return preOrders, nil
}

// CountByStatus implementa preorder.Repository.CountByStatus
func (r *PreOrderRepository) CountByStatus(ctx context.Context, status preorder.Status) (int, error) {
	n, err := r.coll.CountDocuments(ctx, scoped(r.organizationID, statusFilter(status)))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar pré-vendas: %w", err)
	}
	return int(n), nil
}

// UpdateStatus faz a transição atômica a partir de PENDING. Se nenhum documento
// casar, relê a pré-venda para distinguir inexistente de já decidida.
func (r *PreOrderRepository) UpdateStatus(ctx context.Context, id string, status preorder.Status, orderID string) (*preorder.PreOrder, error) {
	set := bson.M{"status": status, "updated_at": time.Now().UTC()}
	if orderID != "" {
		set["order_id"] = orderID
	}

	var p preorder.PreOrder
	err := r.coll.FindOneAndUpdate(ctx,
		pendingFilter(r.organizationID, id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err == nil {
		return &p, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("erro ao atualizar pré-venda: %w", err)
	}

	current, err := r.SelectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return nil, apperror.Conflict(fmt.Sprintf("pré-venda %s já está %s", id, current.Status))
}

func pendingFilter(organizationID, id string) bson.M {
	return scoped(organizationID, bson.M{"_id": id, "status": preorder.StatusPending})
}

func statusFilter(status preorder.Status) bson.M {
	if status == "" {
		return nil
	}
	return bson.M{"status": status}
}
