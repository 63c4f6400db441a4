package enforce

import (
	"context"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Wire bridges. The core validates generic values (map[string]any, []any,
// scalars); these helpers decode external documents into that shape. They do
// no tree construction.

// JSONValue decodes a JSON document into the generic value shape Validate
// consumes. Numbers decode as float64.
func JSONValue(b []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLValue decodes a YAML document into the generic value shape Validate
// consumes.
func YAMLValue(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateJSON decodes b as JSON and validates the result against root.
// Decode errors surface as-is; they are input problems, not defects.
func ValidateJSON(ctx context.Context, root Node, b []byte) (bool, error) {
	v, err := JSONValue(b)
	if err != nil {
		return false, err
	}
	return Validate(ctx, root, v)
}

// ValidateYAML decodes b as YAML and validates the result against root.
func ValidateYAML(ctx context.Context, root Node, b []byte) (bool, error) {
	v, err := YAMLValue(b)
	if err != nil {
		return false, err
	}
	return Validate(ctx, root, v)
}
