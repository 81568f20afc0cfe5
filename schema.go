package smartjson

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/jsonschema"
)

// ValidateAgainstSchema validates a parsed value against a JSON Schema
// document.
func ValidateAgainstSchema(value any, schema []byte) error {
	compiler := jsonschema.NewCompiler()
	validator, err := compiler.Compile(schema)
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	result := validator.Validate(normalizeNumbers(value))
	if !result.IsValid() {
		var errMsgs []string
		for field, validationErr := range result.Errors {
			errMsgs = append(errMsgs, fmt.Sprintf("%s: %s", field, validationErr.Message))
		}
		sort.Strings(errMsgs)
		return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
	}

	return nil
}

// ParseAndValidate combines Parse and ValidateAgainstSchema. A document that
// parses but violates the schema yields a *SchemaError together with the
// parse Result, so callers can still show what was understood.
//
// Example:
//
//	res, err := ParseAndValidate(`{name:john}`, []byte(`{"required":["name"]}`))
//	// res.State: ParseStateCorrected, err: nil
func ParseAndValidate(raw string, schema []byte, opts ...Option) (*Result, error) {
	res, err := Parse(raw, opts...)
	if err != nil {
		return res, err
	}
	if err := ValidateAgainstSchema(res.Value, schema); err != nil {
		return res, &SchemaError{Text: res.Text, Err: err}
	}
	return res, nil
}

// normalizeNumbers converts json.Number leaves to float64, the shape
// encoding/json produces by default and the validator expects.
func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalizeNumbers(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalizeNumbers(item)
		}
		return out
	default:
		return value
	}
}
