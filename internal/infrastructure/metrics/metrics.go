// Package metrics registra os coletores Prometheus da API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal conta requisições por rota, método e status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_http_requests_total",
			Help: "Total de requisições HTTP",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backoffice_http_request_duration_seconds",
			Help:    "Duração das requisições HTTP",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// CacheRequests conta leituras do cache por resultado (hit/miss)
	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_cache_requests_total",
			Help: "Leituras do cache chave/valor",
		},
		[]string{"result"},
	)

	PreOrderTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_pre_order_transitions_total",
			Help: "Transições de status de pré-vendas",
		},
		[]string{"status"},
	)

	// Notifications conta mensagens por resultado (published, dropped, failed, skipped)
	Notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_notifications_total",
			Help: "Mensagens de notificação ao cliente",
		},
		[]string{"result"},
	)

	// MessagesDelivered conta o processamento da fila de mensagens (sent, duplicate, unreachable, failed)
	MessagesDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_messages_delivered_total",
			Help: "Mensagens processadas pelo despachante",
		},
		[]string{"result"},
	)

	// CircuitBreakerState vale 0 fechado, 1 meio-aberto e 2 aberto
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "backoffice_circuit_breaker_state",
			Help: "Estado do circuit breaker por dependência",
		},
		[]string{"name"},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "backoffice_rate_limited_total",
			Help: "Requisições recusadas pelo limitador",
		},
	)
)

// Middleware registra contagem e duração de cada requisição
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler expõe as métricas no formato Prometheus
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
