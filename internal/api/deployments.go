package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListDeployments fetches the most recent deployments of the given project,
// newest first.
func (c *Client) ListDeployments(ctx context.Context, projectID, teamID string, limit int) ([]Deployment, error) {
	var response struct {
		Deployments []struct {
			UID       string  `json:"uid"`
			URL       string  `json:"url"`
			State     string  `json:"state"`
			Target    string  `json:"target"`
			CreatedAt int64   `json:"created"`
			Creator   Creator `json:"creator"`
		} `json:"deployments"`
	}

	query := url.Values{}
	query.Set("projectId", projectID)
	if teamID != "" {
		query.Set("teamId", teamID)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	if err := c.get(ctx, "/v6/deployments", query, &response); err != nil {
		return nil, err
	}

	deployments := make([]Deployment, 0, len(response.Deployments))
	for _, d := range response.Deployments {
		deployments = append(deployments, Deployment{
			ID:        d.UID,
			URL:       d.URL,
			State:     d.State,
			Target:    d.Target,
			CreatedAt: d.CreatedAt,
			Creator:   d.Creator,
		})
	}

	return deployments, nil
}
