package client

import (
	"context"
	"fmt"
)

// GetChecklist fetches a checklist including its check items.
func (c *Client) GetChecklist(ctx context.Context, checklistID string, args Args) (*Checklist, error) {
	var checklist Checklist
	if err := c.get(ctx, fmt.Sprintf("/checklists/%s", checklistID), args, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// AddChecklistToCard creates a new checklist on a card.
func (c *Client) AddChecklistToCard(ctx context.Context, cardID, name string) (*Checklist, error) {
	var checklist Checklist
	if err := c.post(ctx, fmt.Sprintf("/cards/%s/checklists", cardID), Args{"name": name}, &checklist); err != nil {
		return nil, err
	}
	return &checklist, nil
}

// AddItemToChecklist appends an item to a checklist.
func (c *Client) AddItemToChecklist(ctx context.Context, checklistID, name string, checked bool) (*CheckItem, error) {
	var item CheckItem
	args := Args{"name": name, "checked": checked}
	if err := c.post(ctx, fmt.Sprintf("/checklists/%s/checkItems", checklistID), args, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SetCheckItemState marks a check item complete or incomplete on the
// given card.
func (c *Client) SetCheckItemState(ctx context.Context, cardID, itemID string, complete bool) (*CheckItem, error) {
	state := "incomplete"
	if complete {
		state = "complete"
	}
	var item CheckItem
	if err := c.put(ctx, fmt.Sprintf("/cards/%s/checkItem/%s", cardID, itemID), Args{"state": state}, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
