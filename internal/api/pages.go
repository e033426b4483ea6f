package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// pagesEnvelope is the pagination block Intercom includes beside the data.
type pagesEnvelope struct {
	Next *string `json:"next"`
}

// fetchPaginated GETs firstPath and follows the envelope's pages.next URLs,
// accumulating the raw records found under dataKey. It stops when a page has
// no next URL, and unconditionally after maxPages pages, returning whatever
// accumulated by then.
//
// Responses must be JSON objects carrying dataKey; anything else is a
// PayloadError whose reason is written for end users.
func (c *Client) fetchPaginated(ctx context.Context, firstPath, dataKey string) ([]json.RawMessage, error) {
	var records []json.RawMessage

	pageURL := firstPath
	for page := 0; page < c.maxPages; page++ {
		resp, err := c.http.R().SetContext(ctx).Get(pageURL)
		if err != nil {
			requestErrorsTotal.WithLabelValues(dataKey).Inc()
			return nil, &RequestError{Err: err}
		}
		requestsTotal.WithLabelValues(dataKey, strconv.Itoa(resp.StatusCode())).Inc()
		if resp.IsError() {
			return nil, &StatusError{
				StatusCode: resp.StatusCode(),
				Status:     resp.Status(),
				Body:       string(resp.Body()),
			}
		}

		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(resp.Body(), &envelope); err != nil || envelope == nil {
			return nil, &PayloadError{Reason: "Intercom did not return a JSON Object"}
		}
		raw, ok := envelope[dataKey]
		if !ok {
			return nil, &PayloadError{Reason: fmt.Sprintf("Intercom did not return %q data", dataKey)}
		}
		var pageRecords []json.RawMessage
		if err := json.Unmarshal(raw, &pageRecords); err != nil || pageRecords == nil {
			return nil, &PayloadError{Reason: fmt.Sprintf("Intercom did not return %q data", dataKey)}
		}
		records = append(records, pageRecords...)
		recordsTotal.WithLabelValues(dataKey).Add(float64(len(pageRecords)))

		c.log.Debug().
			Str("resource", dataKey).
			Int("page", page+1).
			Int("records", len(pageRecords)).
			Msg("fetched page")

		next := nextPageURL(envelope)
		if next == "" {
			break
		}
		pageURL = next
	}

	return records, nil
}

// nextPageURL digs pages.next out of the envelope. Anything malformed counts
// as "no next page".
func nextPageURL(envelope map[string]json.RawMessage) string {
	raw, ok := envelope["pages"]
	if !ok {
		return ""
	}
	var pages pagesEnvelope
	if err := json.Unmarshal(raw, &pages); err != nil || pages.Next == nil {
		return ""
	}
	return *pages.Next
}
