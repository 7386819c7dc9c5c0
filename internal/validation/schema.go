// Package validation checks section payloads against per-component JSON
// schemas before they are seeded. Structural checks beyond what the typed
// model can express (CTA shape, card item shape) live here.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/veloura/go-storefront/schema"
)

var (
	ErrSchemaInvalid    = errors.New("validation: component schema invalid")
	ErrSchemaValidation = errors.New("validation: payload validation failed")
	ErrUnknownComponent = errors.New("validation: unknown component")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Component schema.SectionKind
	Issues    []ValidationIssue
	Cause     error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return fmt.Sprintf("%s payload: %s", e.Component, strings.Join(parts, "; "))
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

// ValidateSection validates the section's payload against the JSON schema
// registered for its component. Unknown components fail; tolerating them is a
// read-side concern, seeded content must match a known shape.
func ValidateSection(section schema.Section) error {
	compiled, err := compiledComponentSchema(section.Kind)
	if err != nil {
		return err
	}
	payload, err := section.Payload()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaValidation, err)
	}
	if err := compiled.Validate(payload); err != nil {
		return &PayloadValidationError{
			Component: section.Kind,
			Issues:    Issues(err),
			Cause:     err,
		}
	}
	return nil
}

var linkSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []any{"label", "href"},
	"properties": map[string]any{
		"label": map[string]any{"type": "string", "minLength": 1},
		"href":  map[string]any{"type": "string", "minLength": 1},
	},
}

var componentSchemas = map[schema.SectionKind]map[string]any{
	schema.SectionHero: {
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"title"},
		"properties": map[string]any{
			"eyebrow":      map[string]any{"type": "string"},
			"title":        map[string]any{"type": "string", "minLength": 1},
			"subtitle":     map[string]any{"type": "string"},
			"primaryCta":   linkSchema,
			"secondaryCta": linkSchema,
			"mediaKey":     map[string]any{"type": "string"},
		},
	},
	schema.SectionCardGrid: {
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"subtitle": map[string]any{"type": "string"},
			"cards": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"title"},
					"properties": map[string]any{
						"title":       map[string]any{"type": "string", "minLength": 1},
						"description": map[string]any{"type": "string"},
						"href":        map[string]any{"type": "string"},
						"mediaKey":    map[string]any{"type": "string"},
						"badge":       map[string]any{"type": "string"},
					},
				},
			},
		},
	},
	schema.SectionGenericContent: {
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"body":  map[string]any{"type": "string"},
		},
	},
}

var (
	compileOnce sync.Once
	compiled    map[schema.SectionKind]*jsonschema.Schema
	compileErr  error
)

func compiledComponentSchema(kind schema.SectionKind) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[schema.SectionKind]*jsonschema.Schema, len(componentSchemas))
		for component, definition := range componentSchemas {
			compiledSchema, err := compileSchema(definition)
			if err != nil {
				compileErr = fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, component, err)
				return
			}
			compiled[component] = compiledSchema
		}
	})
	if compileErr != nil {
		return nil, compileErr
	}
	compiledSchema, ok := compiled[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, kind)
	}
	return compiledSchema, nil
}

func compileSchema(definition map[string]any) (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(definition)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("schema.json")
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
