// Package schema reflects JSON Schemas from the Toggl models and checks
// payloads against them.
//
// Checks are advisory: the Toggl API stays the only authority on what it
// accepts, and no client call is blocked by a failed check.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/usestring/toggl-mcp/pkg/client"
)

// Report is the outcome of a payload check.
type Report struct {
	Model  string   `json:"model"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// reflector produces permissive schemas: no field is required and unknown
// fields are allowed, so partial update bodies pass.
var reflector = &invopop.Reflector{
	Anonymous:                  true,
	ExpandedStruct:             true,
	DoNotReference:             true,
	AllowAdditionalProperties:  true,
	RequiredFromJSONSchemaTags: true,
}

// For returns the JSON Schema of the named model.
func For(model string) (*invopop.Schema, error) {
	v, ok := client.Model(model)
	if !ok {
		return nil, fmt.Errorf("unknown model %q (known: %s)", model, strings.Join(client.ModelNames(), ", "))
	}
	return reflector.Reflect(v), nil
}

// Map returns the schema of the named model as plain JSON values.
func Map(model string) (map[string]any, error) {
	s, err := For(model)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unmarshaling schema: %w", err)
	}
	return out, nil
}

// Validator checks payloads against one model's schema.
type Validator struct {
	model  string
	schema *jsonschema.Schema
}

// NewValidator compiles the schema of the named model.
func NewValidator(model string) (*Validator, error) {
	schemaValue, err := Map(model)
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	url := strings.ToLower(strings.TrimSpace(model)) + ".json"
	if err := compiler.AddResource(url, schemaValue); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	return &Validator{model: model, schema: compiled}, nil
}

// Validate checks a JSON document. A top-level array is checked element by
// element, as bulk endpoints accept lists of models.
func (v *Validator) Validate(data []byte) *Report {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return &Report{Model: v.model, Errors: []string{fmt.Sprintf("invalid JSON: %s", err.Error())}}
	}
	return v.ValidateValue(value)
}

// ValidateValue checks an already decoded value.
func (v *Validator) ValidateValue(value any) *Report {
	report := &Report{Model: v.model}

	if items, ok := value.([]any); ok {
		for i, item := range items {
			for _, msg := range v.check(item) {
				report.Errors = append(report.Errors, fmt.Sprintf("[%d]%s", i, msg))
			}
		}
	} else {
		report.Errors = v.check(value)
	}

	report.Valid = len(report.Errors) == 0
	return report
}

func (v *Validator) check(value any) []string {
	err := v.schema.Validate(value)
	if err == nil {
		return nil
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		return extractDetailedErrors(validationErr)
	}
	return []string{": " + err.Error()}
}

// printer renders the validator's localized messages in English.
var printer = message.NewPrinter(language.English)

// extractDetailedErrors flattens a ValidationError tree into sorted,
// deduplicated "path: message" lines.
func extractDetailedErrors(err *jsonschema.ValidationError) []string {
	errorsByPath := make(map[string][]string)
	collectErrors(err, errorsByPath)

	var result []string
	for path, msgs := range errorsByPath {
		seen := make(map[string]bool)
		for _, msg := range msgs {
			if seen[msg] {
				continue
			}
			seen[msg] = true
			result = append(result, fmt.Sprintf("%s: %s", path, msg))
		}
	}
	sort.Strings(result)
	return result
}

// collectErrors collects leaf errors, those without causes.
func collectErrors(err *jsonschema.ValidationError, errorsByPath map[string][]string) {
	instancePath := ""
	if len(err.InstanceLocation) > 0 {
		instancePath = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil && len(err.Causes) == 0 {
		errMsg := err.ErrorKind.LocalizedString(printer)
		if !strings.HasPrefix(errMsg, "$ref ") && !strings.HasPrefix(errMsg, "doesn't validate with") {
			errorsByPath[instancePath] = append(errorsByPath[instancePath], errMsg)
		}
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errorsByPath)
	}
}
