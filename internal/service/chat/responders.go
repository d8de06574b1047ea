package chat

import (
	"context"
	"fmt"

	"github.com/mamadbah2/warehouse/internal/domain/models"
	"github.com/mamadbah2/warehouse/internal/session"
	"github.com/mamadbah2/warehouse/pkg/clients/anthropic"
	"github.com/mamadbah2/warehouse/pkg/clients/chatwebhook"
)

// timestampLayout matches the millisecond ISO-8601 form browsers emit.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// maxHistory bounds the turns kept per user for the assistant.
const maxHistory = 20

// StaticResponder acknowledges every message without contacting anything.
type StaticResponder struct{}

// Respond implements Responder.
func (StaticResponder) Respond(context.Context, Request) (string, error) {
	return ProcessingReply, nil
}

// WebhookResponder forwards messages to the configured chat webhook.
type WebhookResponder struct {
	client chatwebhook.Client
}

// NewWebhookResponder wraps a webhook client.
func NewWebhookResponder(client chatwebhook.Client) *WebhookResponder {
	return &WebhookResponder{client: client}
}

// Respond implements Responder.
func (r *WebhookResponder) Respond(ctx context.Context, req Request) (string, error) {
	resp, err := r.client.Post(ctx, models.ChatWebhookPayload{
		Message:   req.Message,
		UserID:    req.UserID,
		Timestamp: req.SentAt.UTC().Format(timestampLayout),
		Sender:    models.SenderUser,
	})
	if err != nil {
		return "", err
	}
	return resp.Reply, nil
}

// Briefer summarises the current dashboard state as plain text.
type Briefer interface {
	Brief(ctx context.Context) string
}

// AssistantResponder answers with the Anthropic API, grounding the model in
// the current dashboard figures and each user's recent turns.
type AssistantResponder struct {
	client  anthropic.Client
	briefer Briefer
	history *session.Store[[]anthropic.Message]
}

// NewAssistantResponder builds an assistant; briefer may be nil.
func NewAssistantResponder(client anthropic.Client, briefer Briefer) *AssistantResponder {
	return &AssistantResponder{
		client:  client,
		briefer: briefer,
		history: session.NewStore[[]anthropic.Message](nil),
	}
}

// Respond implements Responder. History only grows on success.
func (r *AssistantResponder) Respond(ctx context.Context, req Request) (string, error) {
	system := "You are the assistant of a warehouse management dashboard. Answer briefly and only about warehouse operations."
	if r.briefer != nil {
		if brief := r.briefer.Brief(ctx); brief != "" {
			system = fmt.Sprintf("%s\n\nCurrent dashboard figures:\n%s", system, brief)
		}
	}

	reply, err := r.client.Complete(ctx, system, r.history.Get(req.UserID), req.Message)
	if err != nil {
		return "", fmt.Errorf("assistant completion: %w", err)
	}

	_, _ = r.history.Modify(req.UserID, func(turns []anthropic.Message) ([]anthropic.Message, error) {
		next := append(turns[:len(turns):len(turns)],
			anthropic.Message{Role: anthropic.RoleUser, Content: req.Message},
			anthropic.Message{Role: anthropic.RoleAssistant, Content: reply},
		)
		if len(next) > maxHistory {
			next = next[len(next)-maxHistory:]
		}
		return next, nil
	})

	return reply, nil
}
