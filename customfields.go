package client

import (
	"context"
	"fmt"
)

// GetCustomFieldsOnBoard returns the custom field definitions of a board.
func (c *Client) GetCustomFieldsOnBoard(ctx context.Context, boardID string) ([]CustomField, error) {
	var fields []CustomField
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/customFields", boardID), nil, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// SetCustomFieldOnCard writes a value to a card's custom field. The
// value travels as a JSON body, not as query parameters.
func (c *Client) SetCustomFieldOnCard(ctx context.Context, cardID, fieldID string, value CustomFieldValue) error {
	body := struct {
		Value CustomFieldValue `json:"value"`
	}{Value: value}
	return c.putJSON(ctx, fmt.Sprintf("/cards/%s/customField/%s/item", cardID, fieldID), body, nil)
}

// ClearCustomFieldOnCard removes the value of a card's custom field.
func (c *Client) ClearCustomFieldOnCard(ctx context.Context, cardID, fieldID string) error {
	body := struct {
		Value struct{} `json:"value"`
	}{}
	return c.putJSON(ctx, fmt.Sprintf("/cards/%s/customField/%s/item", cardID, fieldID), body, nil)
}
