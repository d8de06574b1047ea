package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

type responderFunc func(ctx context.Context, req Request) (string, error)

func (f responderFunc) Respond(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}

var fixedNow = time.Date(2024, time.June, 1, 9, 30, 0, 0, time.UTC)

func newTestService(r Responder, timeout time.Duration) *Service {
	svc := NewService(r, timeout, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestSendRelaysReply(t *testing.T) {
	var got Request
	svc := newTestService(responderFunc(func(_ context.Context, req Request) (string, error) {
		got = req
		return "Two trucks are due today.", nil
	}), time.Second)

	msg, err := svc.Send(context.Background(), "u-1", "  any deliveries?  ")
	require.NoError(t, err)

	assert.Equal(t, Request{UserID: "u-1", Message: "any deliveries?", SentAt: fixedNow}, got)
	assert.Equal(t, "Two trucks are due today.", msg.Message)
	assert.Equal(t, models.SenderBot, msg.Sender)
	assert.Equal(t, fixedNow, msg.Timestamp)
	_, err = uuid.Parse(msg.ID)
	assert.NoError(t, err)
}

func TestSendRejectsBlank(t *testing.T) {
	called := false
	svc := newTestService(responderFunc(func(context.Context, Request) (string, error) {
		called = true
		return "", nil
	}), time.Second)

	_, err := svc.Send(context.Background(), "u-1", " \n\t")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.False(t, called)
}

func TestSendFallbacks(t *testing.T) {
	tests := []struct {
		name      string
		responder Responder
		want      string
	}{
		{
			name:      "responder error",
			responder: responderFunc(func(context.Context, Request) (string, error) { return "", errors.New("boom") }),
			want:      ApologyReply,
		},
		{
			name:      "empty reply",
			responder: responderFunc(func(context.Context, Request) (string, error) { return "", nil }),
			want:      ProcessingReply,
		},
		{
			name:      "whitespace reply kept",
			responder: responderFunc(func(context.Context, Request) (string, error) { return "  ", nil }),
			want:      "  ",
		},
		{
			name:      "static responder",
			responder: StaticResponder{},
			want:      ProcessingReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := newTestService(tt.responder, time.Second).Send(context.Background(), "", "hello")
			require.NoError(t, err)
			assert.Equal(t, tt.want, msg.Message)
		})
	}
}

func TestSendTimesOut(t *testing.T) {
	svc := newTestService(responderFunc(func(ctx context.Context, _ Request) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}), 20*time.Millisecond)

	start := time.Now()
	msg, err := svc.Send(context.Background(), "u-1", "hello?")
	require.NoError(t, err)

	assert.Equal(t, ApologyReply, msg.Message)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestGreeting(t *testing.T) {
	msg := newTestService(nil, time.Second).Greeting()
	assert.Equal(t, GreetingReply, msg.Message)
	assert.Equal(t, models.SenderBot, msg.Sender)
	assert.NotEmpty(t, msg.ID)
}
