package trivia

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSetDefinition is the JSON Schema for a generated question array.
// It covers structural shape only; semantic checks (answer membership,
// set size) live in ValidateSet.
var questionSetDefinition = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"choices": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"minItems":    ChoicesPerQuestion,
				"maxItems":    ChoicesPerQuestion,
				"uniqueItems": true,
			},
			// Some models emit "correct" instead of "answer"; both are
			// accepted here and reconciled during decoding.
			"answer":  map[string]any{"type": "string"},
			"correct": map[string]any{"type": "string"},
		},
		"required": []any{"question", "choices"},
	},
}

var compileSetSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not a Go
	// literal map. Marshal then unmarshal to get a clean representation.
	defBytes, err := json.Marshal(questionSetDefinition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-set.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateShape checks a parsed JSON value against the question-set schema.
func validateShape(parsed any) error {
	schema, err := compileSetSchema()
	if err != nil {
		return fmt.Errorf("compile question-set schema: %w", err)
	}
	return schema.Validate(parsed)
}
