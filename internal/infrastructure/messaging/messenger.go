package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// Messenger é o gateway que entrega mensagens ao cliente
type Messenger interface {
	// CheckReachable informa se o número tem conta no mensageiro
	CheckReachable(ctx context.Context, number string) (bool, error)

	// Send envia o texto e devolve o id da mensagem no gateway
	Send(ctx context.Context, number, body string) (string, error)
}

// StatusError é uma resposta de erro do gateway
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway de mensagens respondeu %d: %s", e.StatusCode, e.Body)
}

// rejected indica erro do próprio pedido (4xx), que não conta como falha do gateway
func rejected(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500
}

// HTTPMessenger fala JSON com o gateway de mensagens, protegido por circuit breaker
type HTTPMessenger struct {
	baseURL string
	token   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
}

var _ Messenger = (*HTTPMessenger)(nil)

// NewHTTPMessenger cria o cliente do gateway.
// O circuito abre após 5 falhas seguidas e tenta de novo depois de 30 segundos.
func NewHTTPMessenger(baseURL, token string, timeout time.Duration, log logger.Logger) *HTTPMessenger {
	if log == nil {
		log = logger.Nop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	const name = "messenger"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || rejected(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker mudou de estado", "name", name, "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &HTTPMessenger{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

type reachableResponse struct {
	Exists bool `json:"exists"`
}

type sendRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// CheckReachable implementa Messenger
func (m *HTTPMessenger) CheckReachable(ctx context.Context, number string) (bool, error) {
	raw, err := m.do(ctx, http.MethodGet, "/numbers/"+url.PathEscape(number), nil)
	if err != nil {
		return false, err
	}
	var resp reachableResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return false, fmt.Errorf("resposta inválida do gateway: %w", err)
	}
	return resp.Exists, nil
}

// Send implementa Messenger
func (m *HTTPMessenger) Send(ctx context.Context, number, body string) (string, error) {
	raw, err := m.do(ctx, http.MethodPost, "/messages", sendRequest{Number: number, Text: body})
	if err != nil {
		return "", err
	}
	var resp sendResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("resposta inválida do gateway: %w", err)
	}
	return resp.ID, nil
}

func (m *HTTPMessenger) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	return m.breaker.Execute(func() ([]byte, error) {
		var body io.Reader
		if payload != nil {
			data, err := json.Marshal(payload)
			if err != nil {
				return nil, err
			}
			body = bytes.NewReader(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, m.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if m.token != "" {
			req.Header.Set("Authorization", "Bearer "+m.token)
		}

		res, err := m.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("erro ao chamar gateway de mensagens: %w", err)
		}
		defer res.Body.Close()

		data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
		if err != nil {
			return nil, fmt.Errorf("erro ao ler resposta do gateway: %w", err)
		}
		if res.StatusCode >= 300 {
			return nil, &StatusError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(data))}
		}
		return data, nil
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
