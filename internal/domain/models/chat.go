package models

import "time"

// Chat message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatRequest is what the widget posts to the relay.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	UserID  string `json:"userId"`
}

// ChatWebhookPayload is the body posted to the chat webhook.
type ChatWebhookPayload struct {
	Message   string `json:"message"`
	UserID    string `json:"userId,omitempty"`
	Timestamp string `json:"timestamp"`
	Sender    string `json:"sender"`
}

// ChatWebhookResponse is the webhook's answer; Reply may be missing.
type ChatWebhookResponse struct {
	Reply string `json:"reply"`
}

// ChatMessage is one bubble in the chat widget.
type ChatMessage struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
