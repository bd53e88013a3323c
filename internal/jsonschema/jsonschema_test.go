package jsonschema

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupParams struct {
	Query string   `json:"query" description:"Search query."`
	Limit *float64 `json:"limit,omitempty" description:"Maximum results."`
}

type emptyParams struct{}

func TestGenerateSchemaRequiredAndOptional(t *testing.T) {
	raw, err := GenerateSchemaForType(reflect.TypeOf(&lookupParams{}))
	require.NoError(t, err)

	var schema struct {
		Type       string `json:"type"`
		Properties map[string]struct {
			Description string `json:"description"`
		} `json:"properties"`
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema.Type)
	assert.Contains(t, schema.Properties, "query")
	assert.Contains(t, schema.Properties, "limit")
	assert.Equal(t, "Search query.", schema.Properties["query"].Description)
	assert.Equal(t, "Maximum results.", schema.Properties["limit"].Description)

	assert.Equal(t, []string{"query"}, schema.Required)
}

func TestGenerateSchemaEmptyStruct(t *testing.T) {
	raw, err := GenerateSchemaForType(reflect.TypeOf(&emptyParams{}))
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["properties"])
}
