package client

import (
	"context"
	"fmt"
)

// GetList fetches a single list.
func (c *Client) GetList(ctx context.Context, listID string, args Args) (*TaskList, error) {
	var list TaskList
	if err := c.get(ctx, fmt.Sprintf("/lists/%s", listID), args, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateList creates a list on the given board.
func (c *Client) CreateList(ctx context.Context, boardID, name string, args Args) (*TaskList, error) {
	if args == nil {
		args = Args{}
	}
	args["name"] = name
	args["idBoard"] = boardID
	var list TaskList
	if err := c.post(ctx, "/lists", args, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// RenameList changes a list's name.
func (c *Client) RenameList(ctx context.Context, listID, name string) (*TaskList, error) {
	var list TaskList
	if err := c.put(ctx, fmt.Sprintf("/lists/%s/name", listID), Args{"value": name}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ArchiveList closes or reopens a list.
func (c *Client) ArchiveList(ctx context.Context, listID string, closed bool) (*TaskList, error) {
	var list TaskList
	if err := c.put(ctx, fmt.Sprintf("/lists/%s/closed", listID), Args{"value": closed}, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetCardsOnList returns the cards on a list.
func (c *Client) GetCardsOnList(ctx context.Context, listID string, args Args) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, fmt.Sprintf("/lists/%s/cards", listID), args, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}
