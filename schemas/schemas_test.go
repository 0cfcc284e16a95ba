package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestPliegoSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile("pliego.schema.json")
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestPliegoSchema_LoadsAsJSONSchema(t *testing.T) {
	data, err := os.ReadFile("pliego.schema.json")
	require.NoError(t, err)

	var schemaObj map[string]interface{}
	err = json.Unmarshal(data, &schemaObj)
	require.NoError(t, err)

	_, hasSchema := schemaObj["$schema"]
	_, hasProps := schemaObj["properties"]
	assert.True(t, hasSchema, "schema should declare $schema")
	assert.True(t, hasProps, "schema should declare properties")

	_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	assert.NoError(t, err, "schema should compile as a JSON Schema")
}

func TestPliegoSchema_AcceptsMinimalDocument(t *testing.T) {
	data, err := os.ReadFile("pliego.schema.json")
	require.NoError(t, err)

	doc := `{
		"hardware": {
			"accepted_processors": [
				{"brand": "intel", "min_family": "5", "accept_superior": true}
			],
			"minimum_memory_gb": 8,
			"accepted_storage": [
				{"type": "ssd", "min_capacity_gb": 256}
			]
		},
		"software": {
			"operating_system": {"name": "windows", "min_version": "10"},
			"accepted_browsers": [
				{"name": "chrome", "min_version": 100}
			]
		}
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(data),
		gojsonschema.NewStringLoader(doc),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "minimal document should validate: %v", result.Errors())
}

func TestPliegoSchema_RejectsUnknownSectionFields(t *testing.T) {
	data, err := os.ReadFile("pliego.schema.json")
	require.NoError(t, err)

	doc := `{
		"hardware": {
			"accepted_processors": [
				{"brand": "intel", "min_family": "5", "accept_superior": true}
			],
			"minimum_memory_gb": 8,
			"accepted_storage": [
				{"type": "ssd", "min_capacity_gb": 256}
			],
			"gpu": "rtx 4090"
		},
		"software": {
			"operating_system": {"name": "windows", "min_version": "10"},
			"accepted_browsers": [
				{"name": "chrome", "min_version": 100}
			]
		}
	}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(data),
		gojsonschema.NewStringLoader(doc),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid(), "unknown hardware field should be rejected")
}
