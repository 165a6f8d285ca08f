package planfeature

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/plan"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/pkg/apperror"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// Decision é o resultado de uma verificação de cota
type Decision struct {
	Feature   *plan.Feature
	Limit     int
	Unlimited bool
	// Overage indica que a cota foi excedida e o plano cobra por unidade adicional
	Overage bool
}

// Gate autoriza operações de acordo com o plano vigente da organização
type Gate struct {
	organizationID string
	plans          plan.Repository
	cache          cache.Cache
	logger         logger.Logger
	now            func() time.Time
}

// NewGate cria o verificador de plano de uma organização
func NewGate(organizationID string, plans plan.Repository, c cache.Cache, log logger.Logger) *Gate {
	if log == nil {
		log = logger.Nop()
	}
	return &Gate{
		organizationID: organizationID,
		plans:          plans,
		cache:          c,
		logger:         log,
		now:            time.Now,
	}
}

// GetPlanFeature retorna a funcionalidade do plano ativo, usando o cache quando possível
func (g *Gate) GetPlanFeature(ctx context.Context, name plan.FeatureName) (*plan.Feature, error) {
	key := cache.PlanFeatureKey(g.organizationID, string(name))

	if raw, ok := g.cache.Get(ctx, key); ok {
		var cached plan.Feature
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return &cached, nil
		}
		g.logger.Warn("funcionalidade em cache ilegível, consultando catálogo", "key", key)
	}

	plans, err := g.plans.SelectWithInvoices(ctx, g.organizationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar planos da organização: %w", err)
	}

	active := plan.SelectActive(plans, g.now().UTC())
	if active == nil {
		return nil, apperror.PaymentRequired("a organização não possui um plano ativo e pago")
	}

	feature, err := g.plans.SelectFeature(ctx, active.PlanID, name)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return nil, fmt.Errorf("erro ao buscar funcionalidade %s: %w", name, err)
		}
		feature = plan.Disabled(active.PlanID, name)
	}

	if raw, err := json.Marshal(feature); err == nil {
		g.cache.Set(ctx, key, string(raw), cache.PlanFeatureTTL)
	}
	return feature, nil
}

// CheckQuota verifica se mais uma unidade cabe na cota. current é o uso atual.
func (g *Gate) CheckQuota(ctx context.Context, name plan.FeatureName, current int) (*Decision, error) {
	feature, err := g.GetPlanFeature(ctx, name)
	if err != nil {
		return nil, err
	}

	decision := &Decision{Feature: feature}
	if feature.IsUnlimited() {
		decision.Unlimited = true
		return decision, nil
	}

	limit, ok := feature.Limit()
	if !ok {
		// valor booleano em funcionalidade de cota: ligado equivale a ilimitado
		if feature.Enabled() {
			decision.Unlimited = true
			return decision, nil
		}
		limit = 0
	}
	decision.Limit = limit

	if current+1 > limit {
		if feature.AllowsOverage() {
			decision.Overage = true
			g.logger.Info("cota excedida com cobrança adicional",
				"organization_id", g.organizationID, "feature", name, "limit", limit,
				"additional_price", feature.AdditionalPrice)
			return decision, nil
		}
		return nil, apperror.Forbidden(fmt.Sprintf("limite do plano atingido para %s: máximo de %d", name, limit))
	}
	return decision, nil
}

// CheckFlag recusa a operação quando a funcionalidade está desligada
func (g *Gate) CheckFlag(ctx context.Context, name plan.FeatureName) error {
	feature, err := g.GetPlanFeature(ctx, name)
	if err != nil {
		return err
	}
	if !feature.Enabled() {
		return apperror.Unauthorized(fmt.Sprintf("a funcionalidade %s não está disponível no plano atual", name))
	}
	return nil
}

// Warm carrega as funcionalidades no cache
func (g *Gate) Warm(ctx context.Context, names ...plan.FeatureName) error {
	for _, name := range names {
		if _, err := g.GetPlanFeature(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

// WarmAsync aquece o cache em segundo plano; falhas são apenas registradas
func (g *Gate) WarmAsync(names ...plan.FeatureName) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := g.Warm(ctx, names...); err != nil {
			g.logger.Warn("falha ao aquecer cache do plano", "organization_id", g.organizationID, "error", err)
		}
	}()
}

// QuotaFeatures são as funcionalidades de cota aquecidas em segundo plano
var QuotaFeatures = []plan.FeatureName{
	plan.FeatureMaxProducts,
	plan.FeatureMaxTags,
	plan.FeatureMaxCustomers,
	plan.FeatureMaxExpanses,
	plan.FeatureDisplayDashboard,
}
