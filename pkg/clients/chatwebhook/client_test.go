package chatwebhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

func TestPost(t *testing.T) {
	var got models.ChatWebhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"Stock levels are fine."}`))
	}))
	defer srv.Close()

	payload := models.ChatWebhookPayload{
		Message:   "how is stock?",
		UserID:    "u-1",
		Timestamp: "2024-06-01T00:00:00Z",
		Sender:    models.SenderUser,
	}
	resp, err := NewClient(srv.URL).Post(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, "Stock levels are fine.", resp.Reply)
	assert.Equal(t, payload, got)
}

func TestPostMissingReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	resp, err := NewClient(srv.URL).Post(context.Background(), models.ChatWebhookPayload{Message: "hi"})
	require.NoError(t, err)
	assert.Empty(t, resp.Reply)
}

func TestPostNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Post(context.Background(), models.ChatWebhookPayload{Message: "hi"})
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestPostHonoursDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewClient(srv.URL).Post(ctx, models.ChatWebhookPayload{Message: "hi"})
	assert.Error(t, err)
}

func TestPostNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>gateway page</html>`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Post(context.Background(), models.ChatWebhookPayload{Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestPostEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Post(context.Background(), models.ChatWebhookPayload{Message: "hi"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
