package tools

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

func compileSchema(toolName string, schema json.RawMessage) (*jsonschema.Schema, error) {
	s, err := jsonschema.CompileString(toolName+".json", string(schema))
	if err != nil {
		return nil, fmt.Errorf("invalid inputSchema for %s: %w", toolName, err)
	}
	return s, nil
}

func firstLeafValidationError(err *jsonschema.ValidationError) *jsonschema.ValidationError {
	if err == nil {
		return nil
	}
	if len(err.Causes) == 0 {
		return err
	}
	for _, c := range err.Causes {
		if leaf := firstLeafValidationError(c); leaf != nil {
			return leaf
		}
	}
	return err
}

// validateArgs checks args against a compiled schema.
func validateArgs(toolName string, s *jsonschema.Schema, args map[string]any) error {
	if s == nil {
		return nil
	}
	// The validator only understands values in their decoded JSON form.
	raw, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("invalid arguments for %s: %w", toolName, err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid arguments for %s: %w", toolName, err)
	}
	if err := s.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			leaf := firstLeafValidationError(ve)
			loc := leaf.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			msg := leaf.Message
			if msg == "" {
				msg = leaf.Error()
			}
			return fmt.Errorf("invalid arguments for %s at %s: %s", toolName, loc, msg)
		}
		return fmt.Errorf("invalid arguments for %s: %v", toolName, err)
	}
	return nil
}
