// Package chat relays chat widget messages to a responder and always answers
// with a bot message, falling back to canned text when the responder fails.
package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// Canned bot messages.
const (
	GreetingReply   = "Hello! How can I help you with your warehouse management today?"
	ProcessingReply = "Thank you for your message. I'm processing your request..."
	ApologyReply    = "I apologize, but I'm having trouble connecting to the server right now. Please try again later."
)

// ErrEmptyMessage is returned for blank input; nothing is sent.
var ErrEmptyMessage = errors.New("chat message is empty")

// Request is one user message handed to a responder.
type Request struct {
	UserID  string
	Message string
	SentAt  time.Time
}

// Responder produces the bot reply for a user message.
type Responder interface {
	Respond(ctx context.Context, req Request) (string, error)
}

// Service wraps a responder with a deadline and the fallback replies.
type Service struct {
	responder Responder
	timeout   time.Duration
	logger    *zap.Logger
	now       func() time.Time
}

// NewService builds a chat service. A non-positive timeout leaves the caller's deadline untouched.
func NewService(responder Responder, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if responder == nil {
		responder = StaticResponder{}
	}
	return &Service{
		responder: responder,
		timeout:   timeout,
		logger:    logger,
		now:       time.Now,
	}
}

// Greeting returns the widget's opening bot message.
func (s *Service) Greeting() models.ChatMessage {
	return s.botMessage(GreetingReply)
}

// Send relays message and returns the bot's answer. Responder failures are
// logged and replaced by ApologyReply; only blank input is an error.
func (s *Service) Send(ctx context.Context, userID, message string) (models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reply, err := s.responder.Respond(ctx, Request{UserID: userID, Message: message, SentAt: s.now()})
	if err != nil {
		s.logger.Warn("chat responder failed", zap.String("user_id", userID), zap.Error(err))
		return s.botMessage(ApologyReply), nil
	}

	if reply == "" {
		reply = ProcessingReply
	}
	return s.botMessage(reply), nil
}

func (s *Service) botMessage(text string) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Message:   text,
		Sender:    models.SenderBot,
		Timestamp: s.now().UTC(),
	}
}
