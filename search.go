package client

import "context"

// Search runs a full-text search across boards, cards and members.
// Optional arguments (modelTypes, partial, limits, ...) go in args.
func (c *Client) Search(ctx context.Context, query string, args Args) (*SearchResult, error) {
	if args == nil {
		args = Args{}
	}
	args["query"] = query
	var result SearchResult
	if err := c.get(ctx, "/search", args, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchMembers searches members by name or username.
func (c *Client) SearchMembers(ctx context.Context, query string, args Args) ([]Member, error) {
	if args == nil {
		args = Args{}
	}
	args["query"] = query
	var members []Member
	if err := c.get(ctx, "/search/members", args, &members); err != nil {
		return nil, err
	}
	return members, nil
}
