// Package usertable shapes fetched Intercom records into the table the module
// hands back to the host: fixed column order, per-service social-profile
// columns, ID-to-name joins and timestamp conversion.
package usertable

import (
	"strings"
	"time"

	"github.com/CJWorkbench/intercom/internal/api"
	"github.com/CJWorkbench/intercom/workbench"
)

var columns = []workbench.Column{
	{Name: "email", Type: workbench.ColumnText},
	{Name: "name", Type: workbench.ColumnText},
	{Name: "city", Type: workbench.ColumnText},
	{Name: "country", Type: workbench.ColumnText},
	{Name: "session_count", Type: workbench.ColumnNumber},
	{Name: "last_request_at", Type: workbench.ColumnTimestamp},
	{Name: "facebook_username", Type: workbench.ColumnText},
	{Name: "linkedin_username", Type: workbench.ColumnText},
	{Name: "twitter_username", Type: workbench.ColumnText},
	{Name: "companies", Type: workbench.ColumnText},
	{Name: "segments", Type: workbench.ColumnText},
	{Name: "tags", Type: workbench.ColumnText},
	{Name: "timezone", Type: workbench.ColumnText},
	{Name: "created_at", Type: workbench.ColumnTimestamp},
	{Name: "updated_at", Type: workbench.ColumnTimestamp},
	{Name: "id", Type: workbench.ColumnText},
}

// Build assembles the user table, one row per user in listing order. Missing
// values become null cells, except the companies/segments/tags joins, which
// are always strings.
func Build(users []api.User, companies []api.Company, segments []api.Segment, tags []api.Tag) workbench.Table {
	companyNames := companyNameIndex(companies)
	segmentNames := segmentNameIndex(segments)
	tagNames := tagNameIndex(tags)

	rows := make([][]any, 0, len(users))
	for _, u := range users {
		rows = append(rows, buildRow(u, companyNames, segmentNames, tagNames))
	}
	return workbench.Table{
		Columns: append([]workbench.Column(nil), columns...),
		Rows:    rows,
	}
}

func buildRow(u api.User, companyNames, segmentNames, tagNames map[string]string) []any {
	var city, country, timezone any
	if l := u.LocationData; l != nil {
		city = textCell(l.CityName)
		country = textCell(l.CountryName)
		timezone = textCell(l.Timezone)
	}
	return []any{
		textCell(u.Email),
		textCell(u.Name),
		city,
		country,
		numberCell(u.SessionCount),
		timeCell(u.LastRequestAt),
		socialUsername(u.SocialProfiles, "facebook"),
		socialUsername(u.SocialProfiles, "linkedin"),
		socialUsername(u.SocialProfiles, "twitter"),
		joinRefNames(companyRefs(u.Companies), companyNames),
		joinRefNames(segmentRefs(u.Segments), segmentNames),
		joinRefNames(tagRefs(u.Tags), tagNames),
		timezone,
		timeCell(u.CreatedAt),
		timeCell(u.UpdatedAt),
		textCell(u.ID),
	}
}

// companyNameIndex maps company IDs to display names. Companies lacking a
// name (the API sometimes omits it) or an ID contribute nothing.
func companyNameIndex(companies []api.Company) map[string]string {
	names := make(map[string]string, len(companies))
	for _, c := range companies {
		if c.ID == nil || c.Name == nil {
			continue
		}
		names[*c.ID] = *c.Name
	}
	return names
}

func segmentNameIndex(segments []api.Segment) map[string]string {
	names := make(map[string]string, len(segments))
	for _, s := range segments {
		if s.ID == nil || s.Name == nil {
			continue
		}
		names[*s.ID] = *s.Name
	}
	return names
}

func tagNameIndex(tags []api.Tag) map[string]string {
	names := make(map[string]string, len(tags))
	for _, tg := range tags {
		if tg.ID == nil || tg.Name == nil {
			continue
		}
		names[*tg.ID] = *tg.Name
	}
	return names
}

// joinRefNames renders ref IDs as "; "-joined display names. IDs missing from
// the index are skipped: the page cap may have truncated the listing the
// index was built from.
func joinRefNames(refs []api.Ref, names map[string]string) string {
	found := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.ID == nil {
			continue
		}
		if name, ok := names[*ref.ID]; ok {
			found = append(found, name)
		}
	}
	return strings.Join(found, "; ")
}

// socialUsername pulls the username of the first profile matching service.
// Most users have no profile for a given service; that is a null cell.
func socialUsername(profiles *api.SocialProfiles, service string) any {
	if profiles == nil {
		return nil
	}
	for _, p := range profiles.SocialProfiles {
		if p.Name == service {
			return textCell(p.Username)
		}
	}
	return nil
}

func companyRefs(w *api.CompanyRefs) []api.Ref {
	if w == nil {
		return nil
	}
	return w.Companies
}

func segmentRefs(w *api.SegmentRefs) []api.Ref {
	if w == nil {
		return nil
	}
	return w.Segments
}

func tagRefs(w *api.TagRefs) []api.Ref {
	if w == nil {
		return nil
	}
	return w.Tags
}

func textCell(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func numberCell(n *int64) any {
	if n == nil {
		return nil
	}
	return *n
}

func timeCell(unixSeconds *int64) any {
	if unixSeconds == nil {
		return nil
	}
	return time.Unix(*unixSeconds, 0).UTC()
}
