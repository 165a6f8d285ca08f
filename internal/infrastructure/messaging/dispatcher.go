package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// DedupTTL é por quanto tempo uma mensagem entregue é lembrada
const DedupTTL = 24 * time.Hour

// MessageReader é a parte do kafka.Reader usada pelo despachante
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaReader cria o consumidor do tópico de mensagens
func NewKafkaReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 1 << 20,
	})
}

// Dispatcher consome a fila e entrega cada mensagem ao mensageiro uma única vez
type Dispatcher struct {
	reader    MessageReader
	messenger Messenger
	cache     cache.Cache
	logger    logger.Logger
}

func NewDispatcher(reader MessageReader, messenger Messenger, c cache.Cache, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{reader: reader, messenger: messenger, cache: c, logger: log}
}

// Run consome até o contexto ser cancelado. Falhas de entrega são registradas e a
// mensagem é confirmada mesmo assim: o aviso é best-effort e não deve travar a fila.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("Despachante de mensagens iniciado")
	for {
		msg, err := d.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				d.logger.Info("Despachante de mensagens encerrado")
				return nil
			}
			d.logger.Error("erro ao ler mensagem da fila", "error", err)
			continue
		}

		if err := d.Handle(ctx, msg.Value); err != nil {
			d.logger.Warn("mensagem não entregue", "error", err, "offset", msg.Offset)
		}
		if err := d.reader.CommitMessages(ctx, msg); err != nil {
			d.logger.Error("erro ao confirmar mensagem", "error", err, "offset", msg.Offset)
		}
	}
}

// Handle processa um registro da fila
func (d *Dispatcher) Handle(ctx context.Context, payload []byte) error {
	var m notification.Message
	if err := json.Unmarshal(payload, &m); err != nil {
		metrics.MessagesDelivered.WithLabelValues("failed").Inc()
		return fmt.Errorf("mensagem ilegível: %w", err)
	}
	if m.Phone == "" || m.Body == "" {
		metrics.MessagesDelivered.WithLabelValues("failed").Inc()
		return fmt.Errorf("mensagem sem telefone ou texto")
	}

	key := cache.MessageDedupKey(m.Phone, m.At)
	if !d.cache.SetIfAbsent(ctx, key, string(m.Kind), DedupTTL) {
		metrics.MessagesDelivered.WithLabelValues("duplicate").Inc()
		d.logger.Debug("mensagem repetida ignorada", "phone", m.Phone, "kind", m.Kind)
		return nil
	}

	reachable, err := d.messenger.CheckReachable(ctx, m.Phone)
	if err != nil {
		d.release(ctx, key)
		metrics.MessagesDelivered.WithLabelValues("failed").Inc()
		return fmt.Errorf("erro ao verificar número: %w", err)
	}
	if !reachable {
		metrics.MessagesDelivered.WithLabelValues("unreachable").Inc()
		d.logger.Info("número sem conta no mensageiro", "phone", m.Phone)
		return nil
	}

	id, err := d.messenger.Send(ctx, m.Phone, m.Body)
	if err != nil {
		d.release(ctx, key)
		metrics.MessagesDelivered.WithLabelValues("failed").Inc()
		return fmt.Errorf("erro ao enviar mensagem: %w", err)
	}

	metrics.MessagesDelivered.WithLabelValues("sent").Inc()
	d.logger.Info("mensagem enviada", "phone", m.Phone, "kind", m.Kind, "organization_id", m.OrganizationID, "message_id", id)
	return nil
}

// release libera a chave de deduplicação para que uma reentrega possa tentar de novo
func (d *Dispatcher) release(ctx context.Context, key string) {
	d.cache.Delete(ctx, key)
}
