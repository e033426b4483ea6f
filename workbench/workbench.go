// Package workbench defines the contract between the Workbench host platform
// and a fetch module: the parameter and secret values the host passes in, the
// localizable messages a module reports back, and the tabular result format.
//
// The types here are host-owned shapes. A module should depend on nothing in
// this package beyond what its fetch signature requires, so the package stays
// free of third-party imports.
package workbench

import "strings"

// Params holds the module's parameter values as configured by the user in the
// host. Keys are parameter IDs from the module definition. The Intercom module
// declares no parameters besides its connected account, so it ignores Params.
type Params map[string]any

// Secret is one connected-account credential as delivered by the host.
//
// Name is the host's display label for the connection (typically the account
// identity, e.g. an email address). Secret is the provider payload; for OAuth
// providers it carries the raw token response, including "access_token".
type Secret struct {
	Name   string         `json:"name"`
	Secret map[string]any `json:"secret"`
}

// Secrets maps secret parameter IDs to their values. A parameter the user has
// not connected yet maps to nil (or is simply absent).
type Secrets map[string]*Secret

// AccessToken returns the OAuth access token stored under the named secret
// parameter, or "" when the parameter is missing, not yet connected, or its
// payload has no usable "access_token" entry.
func (s Secrets) AccessToken(param string) string {
	sec := s[param]
	if sec == nil || sec.Secret == nil {
		return ""
	}
	token, _ := sec.Secret["access_token"].(string)
	return token
}

// Message is a localizable message in the host's i18n catalog format. ID names
// the catalog entry, Default is the en-US text, and Args fills the Default's
// "{name}" placeholders (and those of any translation the host substitutes).
type Message struct {
	ID      string            `json:"id"`
	Default string            `json:"default"`
	Args    map[string]string `json:"arguments,omitempty"`
}

// Trans builds a Message. The name follows the host SDK's i18n helper so
// message construction sites read the same across module implementations.
// args may be nil for messages without placeholders.
func Trans(id, defaultText string, args map[string]string) Message {
	return Message{ID: id, Default: defaultText, Args: args}
}

// String renders the message's default text with its placeholders filled in.
// Unmatched placeholders are left as-is.
func (m Message) String() string {
	if len(m.Args) == 0 {
		return m.Default
	}
	pairs := make([]string, 0, 2*len(m.Args))
	for k, v := range m.Args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(m.Default)
}

// FetchResult is the outcome of one module fetch: exactly one of Table or
// Error is set. The host stores tables and renders errors to the user.
type FetchResult struct {
	Table *Table   `json:"table,omitempty"`
	Error *Message `json:"error,omitempty"`
}

// TableResult wraps a table as a successful fetch outcome.
func TableResult(t Table) FetchResult { return FetchResult{Table: &t} }

// ErrorResult wraps a message as a failed fetch outcome.
func ErrorResult(m Message) FetchResult { return FetchResult{Error: &m} }
