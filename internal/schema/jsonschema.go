// Package schema provides implementations of the models.Schema capability.
package schema

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"hookflow/pkg/models"
)

// JSONSchema validates payloads against a compiled JSON Schema document.
type JSONSchema struct {
	compiled *gojsonschema.Schema
}

// FromMap compiles a JSON Schema expressed as a Go map, the form schemas
// usually take when declared inline with a workflow.
func FromMap(doc map[string]any) (*JSONSchema, error) {
	return compile(gojsonschema.NewGoLoader(doc))
}

// FromString compiles a JSON Schema from its JSON text.
func FromString(doc string) (*JSONSchema, error) {
	return compile(gojsonschema.NewStringLoader(doc))
}

// MustFromMap is FromMap that panics on a malformed schema document. Intended
// for schemas declared as literals at startup.
func MustFromMap(doc map[string]any) *JSONSchema {
	s, err := FromMap(doc)
	if err != nil {
		panic(err)
	}
	return s
}

func compile(loader gojsonschema.JSONLoader) (*JSONSchema, error) {
	compiled, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &JSONSchema{compiled: compiled}, nil
}

// Validate implements models.Schema. The payload passes through unchanged on
// success; JSON Schema checks but does not transform.
func (s *JSONSchema) Validate(input any) *models.ValidationResult {
	result, err := s.compiled.Validate(gojsonschema.NewGoLoader(input))
	if err != nil {
		return models.InvalidResult(models.ValidationIssue{
			Field:   "(payload)",
			Message: err.Error(),
		})
	}
	if result.Valid() {
		return models.ValidResult(input)
	}

	issues := make([]models.ValidationIssue, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		issues = append(issues, models.ValidationIssue{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return models.InvalidResult(issues...)
}
