package notification_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/domain/organization"
	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/internal/mocks"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
)

func orgFactory(repo organization.Repository) notification.OrganizationFactory {
	return func(string) organization.Repository { return repo }
}

// runUntilDrained fecha o hook e executa o ouvinte até esvaziar a fila
func runUntilDrained(h *notification.Hook) {
	h.Close()
	h.Run(context.Background())
}

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		e    notification.Event
		want string
	}{
		{"aceito", notification.Event{Kind: notification.KindPreOrderAccepted, CustomerName: "Ted Mosby", Code: "001"}, "Seu pedido foi aceito"},
		{"recusado", notification.Event{Kind: notification.KindPreOrderRejected}, "Seu pedido foi recusado"},
		{"pronto", notification.Event{Kind: notification.KindOrderDone}, "Seu pedido está pronto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := notification.Render(tt.e)
			require.NoError(t, err)
			assert.Contains(t, body, tt.want)
		})
	}

	body, _ := notification.Render(tests[0].e)
	assert.Contains(t, body, "Olá, Ted!")
	assert.Contains(t, body, "nº 001")

	_, err := notification.Render(notification.Event{Kind: "OUTRO"})
	assert.Error(t, err)
}

func TestHook_PublishesPreOrderEvents(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	h := notification.NewHook(4, publisher, nil, nil)

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
		return m.Phone == "5547998899889" && m.Kind == notification.KindPreOrderAccepted && m.At.Equal(at)
	})).Return(nil).Once()

	h.Emit(notification.Event{
		OrganizationID: "org-1",
		Kind:           notification.KindPreOrderAccepted,
		Phone:          "5547998899889",
		At:             at,
	})
	runUntilDrained(h)
}

func TestHook_OrderEventsRespectOrganizationFlag(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
	}{
		{"flag ligada", true},
		{"flag desligada", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := mocks.NewPublisher(t)
			orgs := mocks.NewOrganizationRepository(t)
			orgs.On("Select", mock.Anything).
				Return(&organization.Organization{ID: "org-1", EnableOrderNotifications: tt.enabled}, nil).Once()
			if tt.enabled {
				publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
			}

			h := notification.NewHook(4, publisher, orgFactory(orgs), nil)
			h.Emit(notification.Event{OrganizationID: "org-1", Kind: notification.KindOrderDone, Phone: "5511"})
			runUntilDrained(h)
		})
	}
}

func TestHook_PublishFailureIsAbsorbed(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker indisponível")).Once()

	h := notification.NewHook(1, publisher, nil, nil)
	h.Emit(notification.Event{Kind: notification.KindPreOrderRejected, Phone: "5511"})

	assert.NotPanics(t, func() { runUntilDrained(h) })
}

func TestHook_EmitNeverBlocks(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	h := notification.NewHook(1, publisher, nil, nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			h.Emit(notification.Event{Kind: notification.KindPreOrderAccepted, Phone: "5511"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Emit bloqueou com a fila cheia")
	}

	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()
	runUntilDrained(h)
}

func TestHook_EmitAfterCloseIsDropped(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	h := notification.NewHook(4, publisher, nil, nil)
	dropped := metrics.Notifications.WithLabelValues("dropped")
	before := testutil.ToFloat64(dropped)

	h.Close()
	h.Emit(notification.Event{Kind: notification.KindPreOrderAccepted, Phone: "5511"})
	h.Run(context.Background())

	assert.Equal(t, before+1, testutil.ToFloat64(dropped))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestHook_EmitDuringCloseIsPublishedOrDropped(t *testing.T) {
	const total = 50
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	h := notification.NewHook(total, publisher, nil, nil)
	dropped := metrics.Notifications.WithLabelValues("dropped")
	before := testutil.ToFloat64(dropped)

	stopped := make(chan struct{})
	go func() {
		h.Run(context.Background())
		close(stopped)
	}()

	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Emit(notification.Event{Kind: notification.KindPreOrderRejected, Phone: "5511"})
		}()
	}
	h.Close()
	wg.Wait()
	<-stopped

	published := len(publisher.Calls)
	assert.Equal(t, float64(total), float64(published)+testutil.ToFloat64(dropped)-before)
}

func TestHook_SkipsEventsWithoutPhone(t *testing.T) {
	publisher := mocks.NewPublisher(t)
	h := notification.NewHook(1, publisher, nil, nil)

	h.Emit(notification.Event{Kind: notification.KindPreOrderAccepted})
	runUntilDrained(h)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
