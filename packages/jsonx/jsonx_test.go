package jsonx

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaneclient/vane/packages/client"
)

func TestPretty(t *testing.T) {
	out, err := Pretty([]byte(`{"a":1,"b":[true,null]}`))
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "\n"), "expected indented output")

	// The pretty form re-parses to the same value.
	var original, reparsed any
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":[true,null]}`), &original))
	require.NoError(t, json.Unmarshal([]byte(out), &reparsed))
	assert.Equal(t, original, reparsed)
}

func TestPretty_InvalidJSON(t *testing.T) {
	_, err := Pretty([]byte(`{bad`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, &client.Error{Kind: client.KindJSON}))
}

func TestValid_PassThrough(t *testing.T) {
	out, err := Valid(`{"a":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, out)
}

func TestValid_Invalid(t *testing.T) {
	_, err := Valid(`{bad`)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &client.Error{Kind: client.KindJSON}))
}

func TestGet(t *testing.T) {
	body := []byte(`{"items":[{"name":"first"},{"name":"second"}]}`)
	assert.Equal(t, "second", Get(body, "items.1.name").String())
	assert.False(t, Get(body, "missing").Exists())
}

func TestValidateSchema(t *testing.T) {
	schema := []byte(`{
		"type": "object",
		"required": ["id"],
		"properties": {"id": {"type": "integer"}}
	}`)

	assert.NoError(t, ValidateSchema([]byte(`{"id": 7}`), schema))

	err := ValidateSchema([]byte(`{"id": "seven"}`), schema)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &client.Error{Kind: client.KindJSON}))
}
