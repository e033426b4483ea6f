package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListCompanies returns every company in the connected workspace.
func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	raw, err := c.fetchPaginated(ctx, fmt.Sprintf("/companies?per_page=%d", c.perPage), "companies")
	if err != nil {
		return nil, err
	}

	companies := make([]Company, 0, len(raw))
	for _, r := range raw {
		var co *Company
		if err := json.Unmarshal(r, &co); err != nil || co == nil {
			return nil, &PayloadError{Reason: `Intercom did not return "companies" data`}
		}
		companies = append(companies, *co)
	}
	return companies, nil
}
