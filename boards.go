package client

import (
	"context"
	"fmt"
)

// GetBoard fetches a single board. Optional query arguments (fields,
// filter values, ...) can be supplied via args.
func (c *Client) GetBoard(ctx context.Context, boardID string, args Args) (*Board, error) {
	var board Board
	if err := c.get(ctx, fmt.Sprintf("/boards/%s", boardID), args, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// GetMemberBoards lists the boards a member belongs to. Use "me" as
// memberID for the credential owner.
func (c *Client) GetMemberBoards(ctx context.Context, memberID string, args Args) ([]Board, error) {
	var boards []Board
	if err := c.get(ctx, fmt.Sprintf("/members/%s/boards", memberID), args, &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// CreateBoard creates a board with the given name.
func (c *Client) CreateBoard(ctx context.Context, name string, args Args) (*Board, error) {
	if args == nil {
		args = Args{}
	}
	args["name"] = name
	var board Board
	if err := c.post(ctx, "/boards", args, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// UpdateBoard applies the given field updates to a board.
func (c *Client) UpdateBoard(ctx context.Context, boardID string, args Args) (*Board, error) {
	var board Board
	if err := c.put(ctx, fmt.Sprintf("/boards/%s", boardID), args, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// GetBoardLists returns the lists on a board.
func (c *Client) GetBoardLists(ctx context.Context, boardID string, args Args) ([]TaskList, error) {
	var lists []TaskList
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/lists", boardID), args, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetBoardCards returns all cards on a board.
func (c *Client) GetBoardCards(ctx context.Context, boardID string, args Args) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/cards", boardID), args, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetBoardMembers returns the members of a board.
func (c *Client) GetBoardMembers(ctx context.Context, boardID string) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/members", boardID), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// GetBoardLabels returns the labels defined on a board.
func (c *Client) GetBoardLabels(ctx context.Context, boardID string) ([]Label, error) {
	var labels []Label
	if err := c.get(ctx, fmt.Sprintf("/boards/%s/labels", boardID), nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// AddMemberToBoard adds a member to a board with the given role
// ("normal", "admin" or "observer").
func (c *Client) AddMemberToBoard(ctx context.Context, boardID, memberID, role string) error {
	return c.put(ctx, fmt.Sprintf("/boards/%s/members/%s", boardID, memberID), Args{"type": role}, nil)
}
