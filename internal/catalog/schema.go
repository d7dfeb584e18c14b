package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Field declares one string property of a tool input schema.
type Field struct {
	Name        string
	Description string
}

// ObjectSchema creates an object schema with one string property per field.
// Fields listed in required must be present in every call.
func ObjectSchema(fields []Field, required ...string) *jsonschema.Schema {
	properties := make(map[string]*jsonschema.Schema, len(fields))
	for _, f := range fields {
		properties[f.Name] = StringField(f.Description)
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// StringField creates a string property schema with a description.
func StringField(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Description: description,
	}
}

// schemaToMap converts a schema to its generic JSON form.
func schemaToMap(schema *jsonschema.Schema) (map[string]any, error) {
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshal schema: %w", err)
	}

	return out, nil
}
