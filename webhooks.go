package client

import (
	"context"
	"fmt"
)

// CreateWebhook registers a callback URL for changes to the given model
// (a board, list or card id). The registration travels as a JSON body.
func (c *Client) CreateWebhook(ctx context.Context, modelID, callbackURL, description string) (*Webhook, error) {
	body := struct {
		IDModel     string `json:"idModel"`
		CallbackURL string `json:"callbackURL"`
		Description string `json:"description,omitempty"`
	}{IDModel: modelID, CallbackURL: callbackURL, Description: description}

	var webhook Webhook
	if err := c.postJSON(ctx, "/webhooks", body, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// GetWebhook fetches a single webhook registration.
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	var webhook Webhook
	if err := c.get(ctx, fmt.Sprintf("/webhooks/%s", webhookID), nil, &webhook); err != nil {
		return nil, err
	}
	return &webhook, nil
}

// ListWebhooks returns all webhooks registered for the client's token.
func (c *Client) ListWebhooks(ctx context.Context) ([]Webhook, error) {
	var webhooks []Webhook
	if err := c.get(ctx, "/tokens/webhooks", nil, &webhooks); err != nil {
		return nil, err
	}
	return webhooks, nil
}

// DeleteWebhook removes a webhook registration.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.del(ctx, fmt.Sprintf("/webhooks/%s", webhookID), nil)
}
