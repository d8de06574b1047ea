package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/warehouse/internal/config"
	"github.com/mamadbah2/warehouse/internal/domain/models"
	client "github.com/mamadbah2/warehouse/pkg/clients/whatsapp"
)

type fakeClient struct {
	sent []client.SendTextMessageRequest
	err  error
}

func (f *fakeClient) SendTextMessage(ctx context.Context, req client.SendTextMessageRequest) (*client.SendTextMessageResponse, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("missing deadline")
	}
	f.sent = append(f.sent, req)
	if f.err != nil {
		return nil, f.err
	}
	return &client.SendTextMessageResponse{}, nil
}

type dispatcherFunc func(ctx context.Context, cmd models.Command, sender string) (string, error)

func (f dispatcherFunc) HandleCommand(ctx context.Context, cmd models.Command, sender string) (string, error) {
	return f(ctx, cmd, sender)
}

func echoDispatcher() dispatcherFunc {
	return func(_ context.Context, cmd models.Command, _ string) (string, error) {
		return "reply:" + string(cmd.Type), nil
	}
}

func newTestService(c client.Client, d dispatcherFunc) *MetaWhatsAppService {
	return NewMetaWhatsAppService(config.WhatsAppConfig{VerifyToken: "secret"}, c, d, nil)
}

func payload(messages ...models.InboundMessage) models.WebhookPayload {
	return models.WebhookPayload{
		Object: "whatsapp_business_account",
		Entry: []models.WebhookEntry{{
			Changes: []models.WebhookChange{{Field: "messages", Value: models.WebhookValue{Messages: messages}}},
		}},
	}
}

func TestVerifyWebhookToken(t *testing.T) {
	svc := newTestService(&fakeClient{}, echoDispatcher())

	challenge, err := svc.VerifyWebhookToken("subscribe", "secret", "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", challenge)

	for _, tc := range [][2]string{{"", "secret"}, {"subscribe", ""}, {"unsubscribe", "secret"}, {"subscribe", "wrong"}} {
		_, err := svc.VerifyWebhookToken(tc[0], tc[1], "12345")
		assert.ErrorIs(t, err, ErrVerificationFailed, tc)
	}
}

func TestHandleWebhookRepliesToEachMessage(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc, echoDispatcher())

	err := svc.HandleWebhook(context.Background(), payload(
		models.InboundMessage{From: "111", ID: "m1", Type: "text", Text: &models.TextContent{Body: "/health"}},
		models.InboundMessage{From: "222", ID: "m2", Type: "interactive", Interactive: &models.InteractiveContent{
			ButtonReply: &models.ReplyOption{ID: "/credit", Title: "Credit"},
		}},
		models.InboundMessage{From: "333", ID: "m3", Type: "image"},
	))
	require.NoError(t, err)

	require.Len(t, fc.sent, 2)
	assert.Equal(t, client.SendTextMessageRequest{To: "111", Body: "reply:health"}, fc.sent[0])
	assert.Equal(t, client.SendTextMessageRequest{To: "222", Body: "reply:credit"}, fc.sent[1])
}

func TestHandleWebhookDispatchFailureSendsApology(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc, func(context.Context, models.Command, string) (string, error) {
		return "", errors.New("sheet unavailable")
	})

	err := svc.HandleWebhook(context.Background(), payload(
		models.InboundMessage{From: "111", ID: "m1", Type: "text", Text: &models.TextContent{Body: "/overview"}},
	))
	require.NoError(t, err)
	require.Len(t, fc.sent, 1)
	assert.Equal(t, FailureReply, fc.sent[0].Body)
}

func TestHandleWebhookSendFailure(t *testing.T) {
	boom := errors.New("meta down")
	svc := newTestService(&fakeClient{err: boom}, echoDispatcher())

	err := svc.HandleWebhook(context.Background(), payload(
		models.InboundMessage{From: "111", ID: "m1", Type: "text", Text: &models.TextContent{Body: "hi"}},
	))
	assert.ErrorIs(t, err, boom)
}

func TestHandleWebhookStatusOnly(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc, echoDispatcher())

	require.NoError(t, svc.HandleWebhook(context.Background(), models.WebhookPayload{}))
	assert.Empty(t, fc.sent)
}

func TestSendOutbound(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc, echoDispatcher())
	ctx := context.Background()

	require.NoError(t, svc.SendOutbound(ctx, models.OutboundMessageRequest{To: "111", Message: "alert", PreviewURL: true}))
	assert.Equal(t, []client.SendTextMessageRequest{{To: "111", Body: "alert", PreviewURL: true}}, fc.sent)

	assert.ErrorIs(t, svc.SendOutbound(ctx, models.OutboundMessageRequest{To: "", Message: "x"}), ErrInvalidOutbound)
	assert.ErrorIs(t, svc.SendOutbound(ctx, models.OutboundMessageRequest{To: "1", Message: " "}), ErrInvalidOutbound)
}
