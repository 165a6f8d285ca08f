package notification

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Kind identifica o tipo de aviso ao cliente
type Kind string

const (
	KindPreOrderAccepted Kind = "PRE_ORDER_ACCEPTED"
	KindPreOrderRejected Kind = "PRE_ORDER_REJECTED"
	KindOrderDone        Kind = "ORDER_DONE"
)

// IsOrderEvent indica eventos de pedido, sujeitos à flag da organização
func (k Kind) IsOrderEvent() bool {
	return k == KindOrderDone
}

// Event é publicado no canal interno sempre que uma transição deve avisar o cliente
type Event struct {
	OrganizationID string
	Kind           Kind
	Phone          string
	CustomerName   string
	Code           string
	OrderID        string
	At             time.Time
}

// Message é o registro entregue ao serviço de mensagens
type Message struct {
	OrganizationID string    `json:"organization_id"`
	Kind           Kind      `json:"kind"`
	Phone          string    `json:"phone"`
	Body           string    `json:"body"`
	At             time.Time `json:"at"`
}

// Emitter recebe eventos sem bloquear quem os produz
type Emitter interface {
	Emit(e Event)
}

// Publisher entrega mensagens ao serviço de mensagens
type Publisher interface {
	Publish(ctx context.Context, m Message) error
}

// Render monta o texto em pt-BR do aviso
func Render(e Event) (string, error) {
	greeting := "Olá"
	if name := strings.TrimSpace(e.CustomerName); name != "" {
		greeting = "Olá, " + firstName(name)
	}

	switch e.Kind {
	case KindPreOrderAccepted:
		return fmt.Sprintf("%s! Seu pedido foi aceito%s. Avisaremos quando estiver pronto.", greeting, codeSuffix(e.Code)), nil
	case KindPreOrderRejected:
		return fmt.Sprintf("%s! Seu pedido foi recusado%s. Entre em contato para mais informações.", greeting, codeSuffix(e.Code)), nil
	case KindOrderDone:
		return fmt.Sprintf("%s! Seu pedido está pronto.", greeting), nil
	default:
		return "", fmt.Errorf("tipo de aviso desconhecido: %s", e.Kind)
	}
}

func codeSuffix(code string) string {
	if code == "" {
		return ""
	}
	return " (nº " + code + ")"
}

func firstName(name string) string {
	if i := strings.IndexByte(name, ' '); i > 0 {
		return name[:i]
	}
	return name
}
