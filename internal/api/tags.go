package api

import (
	"context"
	"encoding/json"
)

// ListTags returns every tag in the connected workspace.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	raw, err := c.fetchPaginated(ctx, "/tags", "tags")
	if err != nil {
		return nil, err
	}

	tags := make([]Tag, 0, len(raw))
	for _, r := range raw {
		var tag *Tag
		if err := json.Unmarshal(r, &tag); err != nil || tag == nil {
			return nil, &PayloadError{Reason: `Intercom did not return "tags" data`}
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}
