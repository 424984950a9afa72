// internal/common/validation/schema.go
package validation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSONSchema is the subset of JSON Schema used to describe worker inputs and
// outputs. Document converts it for gojsonschema.
type JSONSchema struct {
	Type                 string              `json:"type"`
	Properties           map[string]Property `json:"properties"`
	Required             []string            `json:"required,omitempty"`
	AdditionalProperties bool                `json:"additionalProperties"`
}

type Property struct {
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Minimum     *float64            `json:"minimum,omitempty"`
	Maximum     *float64            `json:"maximum,omitempty"`
	Enum        []string            `json:"enum,omitempty"`
	Pattern     *string             `json:"pattern,omitempty"`
	MinLength   *int                `json:"minLength,omitempty"`
	MinItems    *int                `json:"minItems,omitempty"`
	Items       *Property           `json:"items,omitempty"`
	Properties  map[string]Property `json:"properties,omitempty"`
	Required    []string            `json:"required,omitempty"`
	// Nullable allows an explicit null besides Type.
	Nullable bool `json:"-"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Float and Int build pointer bounds for Property literals.
func Float(v float64) *float64 { return &v }
func Int(v int) *int           { return &v }

// Document renders the schema as a plain JSON Schema document.
func (s JSONSchema) Document() map[string]interface{} {
	doc := map[string]interface{}{
		"type":                 s.Type,
		"additionalProperties": s.AdditionalProperties,
	}
	if len(s.Properties) > 0 {
		props := make(map[string]interface{}, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.document()
		}
		doc["properties"] = props
	}
	if len(s.Required) > 0 {
		doc["required"] = s.Required
	}
	return doc
}

func (p Property) document() map[string]interface{} {
	doc := map[string]interface{}{}
	if p.Type != "" {
		if p.Nullable {
			doc["type"] = []string{p.Type, "null"}
		} else {
			doc["type"] = p.Type
		}
	}
	if p.Description != "" {
		doc["description"] = p.Description
	}
	if p.Minimum != nil {
		doc["minimum"] = *p.Minimum
	}
	if p.Maximum != nil {
		doc["maximum"] = *p.Maximum
	}
	if len(p.Enum) > 0 {
		doc["enum"] = p.Enum
	}
	if p.Pattern != nil {
		doc["pattern"] = *p.Pattern
	}
	if p.MinLength != nil {
		doc["minLength"] = *p.MinLength
	}
	if p.MinItems != nil {
		doc["minItems"] = *p.MinItems
	}
	if p.Items != nil {
		doc["items"] = p.Items.document()
	}
	if len(p.Properties) > 0 {
		props := make(map[string]interface{}, len(p.Properties))
		for name, child := range p.Properties {
			props[name] = child.document()
		}
		doc["properties"] = props
	}
	if len(p.Required) > 0 {
		doc["required"] = p.Required
	}
	return doc
}

// ValidateInput checks job variables against schema.
func ValidateInput(input map[string]interface{}, schema JSONSchema) *ValidationResult {
	return ValidateDocument(schema.Document(), input)
}

// ValidateDocument checks any decoded JSON value against a raw schema
// document. A schema that cannot be compiled is reported as a single error.
func ValidateDocument(schema map[string]interface{}, doc interface{}) *ValidationResult {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return &ValidationResult{
			Valid:  false,
			Errors: []ValidationError{{Field: "(root)", Message: err.Error(), Code: "SCHEMA_ERROR"}},
		}
	}
	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	errs := make([]ValidationError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		errs = append(errs, ValidationError{
			Field:   fieldName(desc),
			Message: desc.Description(),
			Code:    codeFor(desc.Type()),
		})
	}
	return &ValidationResult{Valid: false, Errors: errs}
}

func fieldName(desc gojsonschema.ResultError) string {
	field := desc.Field()
	switch desc.Type() {
	case "required", "additional_property_not_allowed":
		prop, ok := desc.Details()["property"].(string)
		if !ok || field == prop || strings.HasSuffix(field, "."+prop) {
			return field
		}
		if field == "(root)" {
			return prop
		}
		return field + "." + prop
	}
	return field
}

func codeFor(kind string) string {
	switch kind {
	case "required":
		return "REQUIRED_FIELD_MISSING"
	case "additional_property_not_allowed":
		return "EXTRA_FIELD"
	case "invalid_type":
		return "INVALID_TYPE"
	case "enum":
		return "INVALID_ENUM_VALUE"
	case "pattern":
		return "PATTERN_MISMATCH"
	case "string_gte":
		return "MIN_LENGTH_VIOLATION"
	case "number_gte":
		return "MINIMUM_VIOLATION"
	case "number_lte":
		return "MAXIMUM_VIOLATION"
	case "array_min_items":
		return "MIN_ITEMS_VIOLATION"
	}
	return strings.ToUpper(kind)
}

var activityPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+\.[a-z-]+$`)

// ValidateActivityNaming enforces domain.subdomain.action identifiers.
func ValidateActivityNaming(activityID string) error {
	if !activityPattern.MatchString(activityID) {
		return fmt.Errorf("activity ID %q must follow format: domain.subdomain.action (e.g., assessment.test.score)", activityID)
	}
	return nil
}

func GetSchemaFromJSON(schemaJSON string) (JSONSchema, error) {
	var schema JSONSchema
	err := json.Unmarshal([]byte(schemaJSON), &schema)
	return schema, err
}

func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field || strings.HasPrefix(err.Field, field+".") {
			return true
		}
	}
	return false
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}
