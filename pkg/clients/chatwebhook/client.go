// Package chatwebhook posts chat widget messages to an external webhook.
package chatwebhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/warehouse/internal/domain/models"
)

// ErrUnexpectedStatus is returned for any non-2xx webhook response.
var ErrUnexpectedStatus = errors.New("chat webhook returned non-2xx status")

// ErrInvalidResponse is returned when a 2xx body is not a JSON object.
var ErrInvalidResponse = errors.New("chat webhook returned a non-JSON body")

// Client posts a payload and returns the decoded reply.
type Client interface {
	Post(ctx context.Context, payload models.ChatWebhookPayload) (models.ChatWebhookResponse, error)
}

// HTTPClient is a resty-backed Client. Deadlines come from ctx.
type HTTPClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the given endpoint.
func NewClient(url string) *HTTPClient {
	return &HTTPClient{
		httpClient: resty.New().
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "application/json"),
		url: url,
	}
}

// Post sends the payload. A 2xx response must carry a JSON body; a missing
// reply field decodes to an empty reply, anything else is ErrInvalidResponse.
func (c *HTTPClient) Post(ctx context.Context, payload models.ChatWebhookPayload) (models.ChatWebhookResponse, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return models.ChatWebhookResponse{}, fmt.Errorf("post chat webhook: %w", err)
	}
	if !resp.IsSuccess() {
		return models.ChatWebhookResponse{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var out models.ChatWebhookResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return models.ChatWebhookResponse{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}
