package workbench

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecretsAccessToken(t *testing.T) {
	connected := Secrets{
		"access_token": &Secret{
			Name:   "user@example.org",
			Secret: map[string]any{"access_token": "tok-123", "token_type": "Bearer"},
		},
	}
	assert.Equal(t, "tok-123", connected.AccessToken("access_token"))

	cases := map[string]Secrets{
		"nil secrets":       nil,
		"param absent":      {},
		"not connected":     {"access_token": nil},
		"payload absent":    {"access_token": &Secret{Name: "x"}},
		"token key absent":  {"access_token": &Secret{Secret: map[string]any{"token_type": "Bearer"}}},
		"token not string":  {"access_token": &Secret{Secret: map[string]any{"access_token": 42}}},
		"wrong param wired": {"api_key": &Secret{Secret: map[string]any{"access_token": "tok"}}},
	}
	for name, secrets := range cases {
		assert.Empty(t, secrets.AccessToken("access_token"), name)
	}
}

func TestMessageString(t *testing.T) {
	plain := Trans("badParam.access_token.empty", "Please sign in to Intercom", nil)
	assert.Equal(t, "Please sign in to Intercom", plain.String())

	withArg := Trans("error.httpError.general", "Error querying Intercom: {error}",
		map[string]string{"error": "connection refused"})
	assert.Equal(t, "Error querying Intercom: connection refused", withArg.String())

	multi := Trans("x", "{a} and {b} and {a}", map[string]string{"a": "1", "b": "2"})
	assert.Equal(t, "1 and 2 and 1", multi.String())

	unmatched := Trans("x", "hello {name}", map[string]string{"other": "v"})
	assert.Equal(t, "hello {name}", unmatched.String())
}

func TestFetchResultConstructors(t *testing.T) {
	table := Table{Columns: []Column{{Name: "id", Type: ColumnText}}}
	ok := TableResult(table)
	assert.NotNil(t, ok.Table)
	assert.Nil(t, ok.Error)

	failed := ErrorResult(Trans("err.id", "boom", nil))
	assert.Nil(t, failed.Table)
	assert.NotNil(t, failed.Error)
	assert.Equal(t, "boom", failed.Error.String())
}
