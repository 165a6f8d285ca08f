// Package messaging leva os avisos ao cliente até o gateway de mensagens:
// a API publica no Kafka e o despachante (cmd/messenger) consome e envia.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hugohenrick/food-backoffice/internal/service/notification"
)

// MessageWriter é a parte do kafka.Writer usada pelo publicador
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaWriter cria o produtor do tópico de mensagens
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}
}

// KafkaPublisher implementa notification.Publisher sobre o Kafka.
// A chave é o telefone, mantendo a ordem das mensagens de um mesmo cliente.
type KafkaPublisher struct {
	writer MessageWriter
}

var _ notification.Publisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish implementa notification.Publisher
func (p *KafkaPublisher) Publish(ctx context.Context, m notification.Message) error {
	if p.writer == nil {
		return fmt.Errorf("produtor kafka não configurado")
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("erro ao serializar mensagem: %w", err)
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(m.Phone), Value: payload}); err != nil {
		return fmt.Errorf("erro ao publicar mensagem: %w", err)
	}
	return nil
}
