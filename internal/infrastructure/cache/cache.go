package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs usados pelo núcleo
const (
	PlanFeatureTTL      = 3600 * time.Second
	BillingDashboardTTL = 900 * time.Second
	HomeMetricsTTL      = 900 * time.Second
)

// Cache é um armazenamento chave/valor com TTL.
// Todas as operações falham em silêncio: Get retorna ok=false e Set/Delete retornam false,
// e quem chama segue como se não houvesse cache. SetIfAbsent é a exceção e retorna true
// sem cache, pois só serve para deduplicar.
type Cache interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) bool
	Get(ctx context.Context, key string) (string, bool)
	Delete(ctx context.Context, key string) bool
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, bool)
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) bool
}

func PlanFeatureKey(organizationID, feature string) string {
	return fmt.Sprintf("organization:%s:plan_feature:%s", organizationID, feature)
}

func BillingDashboardKey(organizationID string, month, year int) string {
	return fmt.Sprintf("billing:%s:dashboard:%d/%d", organizationID, month, year)
}

func HomeMetricsKey(organizationID string) string {
	return "metrics:organizations:" + organizationID
}

func RateLimitKey(ip string) string {
	return "rate_limit:" + ip
}

// MessageDedupKey identifica uma mensagem já entregue ao mensageiro
func MessageDedupKey(phone string, at time.Time) string {
	return fmt.Sprintf("message:%s:%d", phone, at.Unix())
}
