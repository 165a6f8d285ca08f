package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hugohenrick/food-backoffice/internal/infrastructure/cache"
	"github.com/hugohenrick/food-backoffice/internal/mocks"
	"github.com/hugohenrick/food-backoffice/internal/service/notification"
)

func newDispatcher(t *testing.T, reader MessageReader) (*Dispatcher, *mocks.Messenger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	messenger := mocks.NewMessenger(t)
	return NewDispatcher(reader, messenger, cache.NewRedisCache(client, nil), nil), messenger, mr
}

func payload(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal(notification.Message{
		OrganizationID: "org-1",
		Kind:           notification.KindPreOrderAccepted,
		Phone:          "55047998899889",
		Body:           "Seu pedido foi aceito",
		At:             time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return raw
}

func TestDispatcher_Handle_SendsOnce(t *testing.T) {
	d, messenger, _ := newDispatcher(t, nil)
	messenger.On("CheckReachable", mock.Anything, "55047998899889").Return(true, nil).Once()
	messenger.On("Send", mock.Anything, "55047998899889", "Seu pedido foi aceito").Return("msg-1", nil).Once()

	require.NoError(t, d.Handle(context.Background(), payload(t)))
	require.NoError(t, d.Handle(context.Background(), payload(t)))

	messenger.AssertNumberOfCalls(t, "Send", 1)
}

func TestDispatcher_Handle_Unreachable(t *testing.T) {
	d, messenger, _ := newDispatcher(t, nil)
	messenger.On("CheckReachable", mock.Anything, "55047998899889").Return(false, nil).Once()

	require.NoError(t, d.Handle(context.Background(), payload(t)))

	messenger.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcher_Handle_FailureAllowsRetry(t *testing.T) {
	d, messenger, _ := newDispatcher(t, nil)
	messenger.On("CheckReachable", mock.Anything, mock.Anything).Return(true, nil).Twice()
	messenger.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("timeout")).Once()
	messenger.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("msg-2", nil).Once()

	assert.Error(t, d.Handle(context.Background(), payload(t)))
	assert.NoError(t, d.Handle(context.Background(), payload(t)))
}

func TestDispatcher_Handle_InvalidPayload(t *testing.T) {
	d, _, _ := newDispatcher(t, nil)

	assert.Error(t, d.Handle(context.Background(), []byte("{")))
	assert.Error(t, d.Handle(context.Background(), []byte(`{"phone":""}`)))
}

type readerStub struct {
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *readerStub) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *readerStub) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func TestDispatcher_Run_CommitsEvenOnFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &readerStub{
		msgs:   []kafka.Message{{Offset: 1, Value: []byte("lixo")}, {Offset: 2, Value: payload(t)}},
		cancel: cancel,
	}
	d, messenger, _ := newDispatcher(t, reader)
	messenger.On("CheckReachable", mock.Anything, mock.Anything).Return(true, nil).Once()
	messenger.On("Send", mock.Anything, mock.Anything, mock.Anything).Return("msg-1", nil).Once()

	require.NoError(t, d.Run(ctx))

	assert.Equal(t, []int64{1, 2}, reader.committed)
}
