package notification

import (
	"context"
	"sync"
	"time"

	"github.com/hugohenrick/food-backoffice/internal/domain/organization"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

const handleTimeout = 10 * time.Second

// OrganizationFactory devolve o repositório da organização informada
type OrganizationFactory func(organizationID string) organization.Repository

// Hook é o ouvinte do canal de eventos. Falhas são registradas e nunca voltam para quem emitiu.
type Hook struct {
	events        chan Event
	publisher     Publisher
	organizations OrganizationFactory
	logger        logger.Logger

	// mu protege closed; Emit segura a leitura durante o envio para não enfileirar após Close
	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

var _ Emitter = (*Hook)(nil)

// NewHook cria o ouvinte com um canal de capacidade buffer
func NewHook(buffer int, publisher Publisher, organizations OrganizationFactory, log logger.Logger) *Hook {
	if buffer <= 0 {
		buffer = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Hook{
		events:        make(chan Event, buffer),
		publisher:     publisher,
		organizations: organizations,
		logger:        log,
		done:          make(chan struct{}),
	}
}

// Emit enfileira o evento; com o canal cheio o evento é descartado
func (h *Hook) Emit(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		metrics.Notifications.WithLabelValues("dropped").Inc()
		h.logger.Warn("ouvinte encerrado, evento descartado",
			"organization_id", e.OrganizationID, "kind", e.Kind, "code", e.Code)
		return
	}

	select {
	case h.events <- e:
	default:
		metrics.Notifications.WithLabelValues("dropped").Inc()
		h.logger.Warn("fila de notificações cheia, evento descartado",
			"organization_id", e.OrganizationID, "kind", e.Kind, "code", e.Code)
	}
}

// Run consome o canal até o contexto ser cancelado ou Close ser chamado
func (h *Hook) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-h.done:
			h.drain(ctx)
			return
		case e := <-h.events:
			h.handle(ctx, e)
		}
	}
}

// Close interrompe o ouvinte; eventos já enfileirados ainda são entregues
func (h *Hook) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.closed {
		h.closed = true
		close(h.done)
	}
}

func (h *Hook) drain(ctx context.Context) {
	for {
		select {
		case e := <-h.events:
			h.handle(ctx, e)
		default:
			return
		}
	}
}

func (h *Hook) handle(parent context.Context, e Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), handleTimeout)
	defer cancel()

	if e.Phone == "" {
		metrics.Notifications.WithLabelValues("skipped").Inc()
		h.logger.Debug("evento sem telefone, aviso ignorado", "kind", e.Kind, "order_id", e.OrderID)
		return
	}

	if e.Kind.IsOrderEvent() && !h.orderNotificationsEnabled(ctx, e.OrganizationID) {
		metrics.Notifications.WithLabelValues("skipped").Inc()
		return
	}

	body, err := Render(e)
	if err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		h.logger.Error("erro ao montar aviso", "error", err, "kind", e.Kind)
		return
	}

	msg := Message{
		OrganizationID: e.OrganizationID,
		Kind:           e.Kind,
		Phone:          e.Phone,
		Body:           body,
		At:             e.At,
	}
	if err := h.publisher.Publish(ctx, msg); err != nil {
		metrics.Notifications.WithLabelValues("failed").Inc()
		h.logger.Error("erro ao publicar aviso", "error", err, "organization_id", e.OrganizationID, "kind", e.Kind)
		return
	}

	metrics.Notifications.WithLabelValues("published").Inc()
	h.logger.Info("aviso publicado", "organization_id", e.OrganizationID, "kind", e.Kind)
}

func (h *Hook) orderNotificationsEnabled(ctx context.Context, organizationID string) bool {
	if h.organizations == nil {
		return false
	}
	org, err := h.organizations(organizationID).Select(ctx)
	if err != nil {
		h.logger.Warn("erro ao consultar organização para aviso de pedido", "error", err, "organization_id", organizationID)
		return false
	}
	return org.EnableOrderNotifications
}
