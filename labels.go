package client

import (
	"context"
	"fmt"
)

// GetLabel fetches a single label.
func (c *Client) GetLabel(ctx context.Context, labelID string) (*Label, error) {
	var label Label
	if err := c.get(ctx, fmt.Sprintf("/labels/%s", labelID), nil, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// CreateLabel creates a label on the given board.
func (c *Client) CreateLabel(ctx context.Context, boardID, name, color string) (*Label, error) {
	var label Label
	args := Args{"name": name, "color": color, "idBoard": boardID}
	if err := c.post(ctx, "/labels", args, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// UpdateLabel applies the given field updates to a label.
func (c *Client) UpdateLabel(ctx context.Context, labelID string, args Args) (*Label, error) {
	var label Label
	if err := c.put(ctx, fmt.Sprintf("/labels/%s", labelID), args, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// DeleteLabel deletes a label from its board.
func (c *Client) DeleteLabel(ctx context.Context, labelID string) error {
	return c.del(ctx, fmt.Sprintf("/labels/%s", labelID), nil)
}
