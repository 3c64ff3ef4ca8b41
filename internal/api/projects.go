package api

import (
	"context"
	"fmt"
	"net/url"
)

// GetProject fetches a single project by name or id. teamID may be empty for
// personal scopes.
func (c *Client) GetProject(ctx context.Context, name, teamID string) (*Project, error) {
	var project Project

	query := url.Values{}
	if teamID != "" {
		query.Set("teamId", teamID)
	}

	path := fmt.Sprintf("/v9/projects/%s", url.PathEscape(name))
	if err := c.get(ctx, path, query, &project); err != nil {
		return nil, err
	}

	return &project, nil
}

// ListProjects fetches the projects visible within the given scope.
func (c *Client) ListProjects(ctx context.Context, teamID string) ([]Project, error) {
	var response struct {
		Projects []Project `json:"projects"`
	}

	query := url.Values{}
	if teamID != "" {
		query.Set("teamId", teamID)
	}

	if err := c.get(ctx, "/v9/projects", query, &response); err != nil {
		return nil, err
	}

	return response.Projects, nil
}
