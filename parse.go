package smartjson

import (
	"io"
	"strings"

	"charm.land/smartjson/internal/jsonext"
	"github.com/charmbracelet/log/v2"
)

// DefaultMaxAttempts is the number of correction passes tried before giving
// up. It matches the default of auto_correction.max_attempt.
const DefaultMaxAttempts = 5

// ParseState represents the state of JSON parsing.
type ParseState string

const (
	// ParseStateUndefined means input was empty or only whitespace.
	ParseStateUndefined ParseState = "undefined"

	// ParseStateSuccessful means JSON parsed without correction.
	ParseStateSuccessful ParseState = "successful"

	// ParseStateCorrected means JSON parsed after inserting missing tokens.
	ParseStateCorrected ParseState = "corrected"

	// ParseStateFailed means JSON could not be parsed within the budget.
	ParseStateFailed ParseState = "failed"
)

// Result is the outcome of Parse. On failure Value is nil and State is
// ParseStateFailed.
type Result struct {
	// Value is the decoded document. Numbers are json.Number.
	Value any
	// Text is the strict JSON text Value was decoded from. For corrected
	// input this is the proposal to show the user.
	Text string
	// State tells whether correction was needed.
	State ParseState
	// Attempts is the number of correction passes that ran.
	Attempts int
}

// Corrected reports whether the value came from corrected text.
func (r *Result) Corrected() bool {
	return r.State == ParseStateCorrected
}

// Option is a function that configures a Parser.
type Option func(*options)

type options struct {
	maxAttempts int
	logger      *log.Logger
}

// WithMaxAttempts sets the number of correction passes. Values below one
// are treated as one.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = max(n, 1)
	}
}

// WithLogger sets the logger that receives attempt traces and structural
// inconsistencies. Logging never changes the outcome of a parse.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Parser corrects and parses JSON-like text. It holds no per-call state and
// is safe for concurrent use.
type Parser struct {
	maxAttempts int
	logger      *log.Logger
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	return &Parser{maxAttempts: o.maxAttempts, logger: o.logger}
}

// MaxAttempts returns the configured correction budget.
func (p *Parser) MaxAttempts() int {
	return p.maxAttempts
}

// Parse parses raw with a Parser built from opts.
//
// Example:
//
//	res, err := smartjson.Parse(`{name:john}`)
//	// res.Text: {"name":"john"}, res.State: ParseStateCorrected
func Parse(raw string, opts ...Option) (*Result, error) {
	return New(opts...).Parse(raw)
}

// Parse strictly parses raw and, if that fails, repeatedly inserts the
// punctuation most likely missing until the text parses or the budget runs
// out. Already valid JSON is returned without any correction pass. Empty
// input fails with ErrEmptyInput. Otherwise the only error returned is a
// *CorrectionExhaustedError, alongside a Result that carries the last
// candidate text and no value.
func (p *Parser) Parse(raw string) (*Result, error) {
	if strings.TrimSpace(raw) == "" {
		return &Result{State: ParseStateUndefined}, ErrEmptyInput
	}

	if v, err := jsonext.Decode(raw); err == nil {
		return &Result{Value: v, Text: raw, State: ParseStateSuccessful}, nil
	}

	tokens := p.Tokenize(raw)
	var (
		text    string
		lastErr error
	)
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		tokens = CorrectPass(tokens)
		text = Render(tokens)
		p.logger.Debug("trying auto correction", "attempt", attempt, "tokens", formatTokens(tokens), "text", text)

		v, err := jsonext.Decode(text)
		if err == nil {
			return &Result{Value: v, Text: text, State: ParseStateCorrected, Attempts: attempt}, nil
		}
		lastErr = err
	}

	p.logger.Debug("auto correction exhausted", "attempts", p.maxAttempts, "err", lastErr)
	return &Result{Text: text, State: ParseStateFailed, Attempts: p.maxAttempts},
		&CorrectionExhaustedError{Attempts: p.maxAttempts, Text: text, Err: lastErr}
}
