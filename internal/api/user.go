package api

import "context"

// GetCurrentUser fetches the user the access token belongs to.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var response struct {
		User User `json:"user"`
	}

	if err := c.get(ctx, "/v2/user", nil, &response); err != nil {
		return nil, err
	}

	return &response.User, nil
}
