package repository

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// Nomes das coleções
const (
	colOrders        = "orders"
	colPayments      = "payments"
	colExpenses      = "expenses"
	colCustomers     = "customers"
	colProducts      = "products"
	colOffers        = "offers"
	colPreOrders     = "pre_orders"
	colTags          = "tags"
	colOrganizations = "organizations"
)

// scoped monta o filtro base de toda consulta: organização e registro ativo.
// Nenhuma leitura ou escrita deve montar filtro fora daqui.
func scoped(organizationID string, extra bson.M) bson.M {
	filter := bson.M{
		"organization_id": organizationID,
		"is_active":       true,
	}
	for k, v := range extra {
		if k == "organization_id" || k == "is_active" {
			continue
		}
		filter[k] = v
	}
	return filter
}

// dateRange monta a condição de intervalo semiaberto
func dateRange(r domain.DateRange) bson.M {
	return bson.M{"$gte": r.Start, "$lt": r.End}
}

// containsText monta uma busca parcial sem diferenciar maiúsculas
func containsText(query string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(strings.TrimSpace(query)), "$options": "i"}
}

func pageOptions(page domain.Pagination, sort bson.D) *options.FindOptionsBuilder {
	opts := options.Find().SetSort(sort)
	if page.PageSize > 0 {
		opts.SetSkip(int64(page.Offset())).SetLimit(int64(page.PageSize))
	}
	return opts
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// translate converte erros do driver para a taxonomia da aplicação
func translate(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case isNoDocuments(err):
		return apperror.NotFound(entity, id)
	case mongo.IsDuplicateKeyError(err):
		return apperror.Conflict(fmt.Sprintf("%s duplicado(a)", entity))
	default:
		return fmt.Errorf("erro de banco de dados em %s: %w", entity, err)
	}
}
