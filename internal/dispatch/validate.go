package dispatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
)

// compileArgumentSchema compiles the validator for one tool. Only required
// fields are checked: they must be present and match their declared type.
// Optional fields are left to the decoder, which drops malformed values.
func compileArgumentSchema(d catalog.Descriptor) (*jsonschema.Schema, error) {
	properties := make(map[string]any)
	required := make([]any, 0)

	for _, name := range d.Required() {
		prop := map[string]any{}
		if field, ok := d.InputSchema.Properties[name]; ok && field.Type != "" {
			prop["type"] = field.Type
		}

		properties[name] = prop
		required = append(required, name)
	}

	doc := map[string]any{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}

	url := "mem://tools/" + d.Name + ".json"

	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema for %s: %w", d.Name, err)
	}

	schema, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema for %s: %w", d.Name, err)
	}

	return schema, nil
}

// validateArguments checks args against a compiled schema.
func validateArguments(schema *jsonschema.Schema, args map[string]any) error {
	instance, err := normalize(args)
	if err != nil {
		return err
	}

	if err := schema.Validate(instance); err != nil {
		return errors.New(validationDetail(err))
	}

	return nil
}

// normalize converts args to the generic JSON form the validator expects.
func normalize(args map[string]any) (any, error) {
	if args == nil {
		return map[string]any{}, nil
	}

	data, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("arguments are not JSON: %w", err)
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("arguments are not JSON: %w", err)
	}

	return v, nil
}

// validationDetail flattens a multi-line validation error into one line,
// dropping the header that names the in-memory schema URL.
func validationDetail(err error) string {
	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return err.Error()
	}

	lines := strings.Split(verr.Error(), "\n")
	details := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "jsonschema validation failed") {
			continue
		}

		details = append(details, strings.TrimPrefix(line, "- "))
	}

	if len(details) == 0 {
		return verr.Error()
	}

	return strings.Join(details, "; ")
}
