package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListUsers returns every user in the connected workspace, in the order the
// API yields them (sorted by creation time).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	raw, err := c.fetchPaginated(ctx, fmt.Sprintf("/users?per_page=%d&sort=created_at", c.perPage), "users")
	if err != nil {
		return nil, err
	}

	users := make([]User, 0, len(raw))
	for _, r := range raw {
		var u *User
		if err := json.Unmarshal(r, &u); err != nil || u == nil {
			return nil, &PayloadError{Reason: `Intercom did not return "users" data`}
		}
		users = append(users, *u)
	}
	return users, nil
}
