package client

import (
	"context"
	"fmt"
)

// GetCard fetches a single card.
func (c *Client) GetCard(ctx context.Context, cardID string, args Args) (*Card, error) {
	var card Card
	if err := c.get(ctx, fmt.Sprintf("/cards/%s", cardID), args, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard creates a card on the given list.
func (c *Client) CreateCard(ctx context.Context, listID, name string, args Args) (*Card, error) {
	if args == nil {
		args = Args{}
	}
	args["name"] = name
	args["idList"] = listID
	var card Card
	if err := c.post(ctx, "/cards", args, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard applies the given field updates to a card.
func (c *Client) UpdateCard(ctx context.Context, cardID string, args Args) (*Card, error) {
	var card Card
	if err := c.put(ctx, fmt.Sprintf("/cards/%s", cardID), args, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteCard permanently deletes a card.
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.del(ctx, fmt.Sprintf("/cards/%s", cardID), nil)
}

// AddCommentToCard posts a comment on a card.
func (c *Client) AddCommentToCard(ctx context.Context, cardID, text string) (*Action, error) {
	var action Action
	if err := c.post(ctx, fmt.Sprintf("/cards/%s/actions/comments", cardID), Args{"text": text}, &action); err != nil {
		return nil, err
	}
	return &action, nil
}

// AddAttachmentToCard attaches a URL to a card.
func (c *Client) AddAttachmentToCard(ctx context.Context, cardID, attachmentURL string, args Args) (*Attachment, error) {
	if args == nil {
		args = Args{}
	}
	args["url"] = attachmentURL
	var attachment Attachment
	if err := c.post(ctx, fmt.Sprintf("/cards/%s/attachments", cardID), args, &attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// AddMemberToCard assigns a member to a card.
func (c *Client) AddMemberToCard(ctx context.Context, cardID, memberID string) error {
	return c.post(ctx, fmt.Sprintf("/cards/%s/idMembers", cardID), Args{"value": memberID}, nil)
}

// RemoveMemberFromCard unassigns a member from a card.
func (c *Client) RemoveMemberFromCard(ctx context.Context, cardID, memberID string) error {
	return c.del(ctx, fmt.Sprintf("/cards/%s/idMembers/%s", cardID, memberID), nil)
}

// AddLabelToCard attaches an existing label to a card.
func (c *Client) AddLabelToCard(ctx context.Context, cardID, labelID string) error {
	return c.post(ctx, fmt.Sprintf("/cards/%s/idLabels", cardID), Args{"value": labelID}, nil)
}

// RemoveLabelFromCard detaches a label from a card.
func (c *Client) RemoveLabelFromCard(ctx context.Context, cardID, labelID string) error {
	return c.del(ctx, fmt.Sprintf("/cards/%s/idLabels/%s", cardID, labelID), nil)
}

// GetCardActions returns a card's audit-log entries, newest first.
func (c *Client) GetCardActions(ctx context.Context, cardID string, args Args) ([]Action, error) {
	var actions []Action
	if err := c.get(ctx, fmt.Sprintf("/cards/%s/actions", cardID), args, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}
