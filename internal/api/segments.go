package api

import (
	"context"
	"encoding/json"
)

// ListSegments returns every segment in the connected workspace.
func (c *Client) ListSegments(ctx context.Context) ([]Segment, error) {
	raw, err := c.fetchPaginated(ctx, "/segments", "segments")
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(raw))
	for _, r := range raw {
		var seg *Segment
		if err := json.Unmarshal(r, &seg); err != nil || seg == nil {
			return nil, &PayloadError{Reason: `Intercom did not return "segments" data`}
		}
		segments = append(segments, *seg)
	}
	return segments, nil
}
