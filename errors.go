package smartjson

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Parse for input that is empty or only
// whitespace.
var ErrEmptyInput = errors.New("input is empty")

// ErrCorrectionExhausted matches any *CorrectionExhaustedError with errors.Is.
var ErrCorrectionExhausted = errors.New("auto correction exhausted")

// CorrectionExhaustedError is returned when every attempt produced text the
// strict parser still rejects. Missing array brackets end up here too, since
// the corrector never tries to insert them.
type CorrectionExhaustedError struct {
	// Attempts is the number of correction passes that ran.
	Attempts int
	// Text is the last candidate handed to the strict parser.
	Text string
	// Err is the strict parser's error for Text.
	Err error
}

func (e *CorrectionExhaustedError) Error() string {
	return fmt.Sprintf("auto correction failed after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the strict parser's error.
func (e *CorrectionExhaustedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCorrectionExhausted.
func (e *CorrectionExhaustedError) Is(target error) bool {
	return target == ErrCorrectionExhausted
}

// IsCorrectionExhausted checks if an error is of type CorrectionExhaustedError.
func IsCorrectionExhausted(err error) bool {
	var target *CorrectionExhaustedError
	return errors.As(err, &target)
}

// SchemaError is returned by ParseAndValidate when the document parsed but
// does not satisfy the schema.
type SchemaError struct {
	// Text is the strict JSON text that was validated.
	Text string
	// Err describes the violations.
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

// Unwrap returns the underlying validation error.
func (e *SchemaError) Unwrap() error {
	return e.Err
}
