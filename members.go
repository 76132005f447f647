package client

import (
	"context"
	"fmt"
)

// GetMember fetches a member profile. Use "me" for the credential owner.
func (c *Client) GetMember(ctx context.Context, memberID string, args Args) (*Member, error) {
	var member Member
	if err := c.get(ctx, fmt.Sprintf("/members/%s", memberID), args, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// GetCardsForMember returns the cards assigned to a member.
func (c *Client) GetCardsForMember(ctx context.Context, memberID string, args Args) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, fmt.Sprintf("/members/%s/cards", memberID), args, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}
