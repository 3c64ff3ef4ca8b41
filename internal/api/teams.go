package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListTeams fetches the teams the current user belongs to.
func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var response struct {
		Teams []Team `json:"teams"`
	}

	query := url.Values{}
	query.Set("limit", "100")

	if err := c.get(ctx, "/v2/teams", query, &response); err != nil {
		return nil, err
	}

	return response.Teams, nil
}

// GetTeam fetches a single team by id.
func (c *Client) GetTeam(ctx context.Context, id string) (*Team, error) {
	var team Team

	path := fmt.Sprintf("/v2/teams/%s", url.PathEscape(id))
	if err := c.get(ctx, path, nil, &team); err != nil {
		return nil, err
	}

	return &team, nil
}
