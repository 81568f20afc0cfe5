package smartjson

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/exp/slice"
)

// InconsistencyError reports a nesting mismatch found while tokenizing. It is
// advisory: the correction loop decides what to repair on its own.
type InconsistencyError struct {
	// Token is the token that could not be accepted.
	Token Token
	// Expected is the opener Token needed to close, if any.
	Expected *Token
	// Stack is a snapshot of the open tokens at the time of the failure.
	Stack []Token
}

func (e *InconsistencyError) Error() string {
	stack := formatTokens(e.Stack)
	switch {
	case e.Token.Kind == KindStructureEnd:
		return fmt.Sprintf("unclosed structure at end of input: %s", stack)
	case len(e.Stack) == 0:
		return fmt.Sprintf("cannot close %s: stack is empty", e.Token)
	default:
		return fmt.Sprintf(
			"cannot close %s: top of stack is %s but expected %s (stack: %s)",
			e.Token, e.Stack[len(e.Stack)-1], *e.Expected, stack,
		)
	}
}

// ValidationStack checks bracket and quote nesting as tokens are produced.
// The zero value is ready to use.
type ValidationStack struct {
	open []Token
}

// Push offers the next token to the stack.
func (s *ValidationStack) Push(t Token) error {
	switch t.Kind {
	case KindObjectOpen, KindQuoteOpen, KindArrayOpen:
		s.open = append(s.open, t)
		return nil
	case KindObjectClose:
		return s.close(t, ObjectOpen)
	case KindQuoteClose:
		return s.close(t, QuoteOpen)
	case KindArrayClose:
		return s.close(t, ArrayOpen)
	case KindStructureEnd:
		if len(s.open) > 0 {
			return &InconsistencyError{Token: t, Stack: s.Open()}
		}
		return nil
	default:
		return nil
	}
}

// Open returns a copy of the currently open tokens, bottom first.
func (s *ValidationStack) Open() []Token {
	return append([]Token(nil), s.open...)
}

// Len returns the number of open tokens.
func (s *ValidationStack) Len() int {
	return len(s.open)
}

func (s *ValidationStack) close(t, opener Token) error {
	top, rest, ok := slice.Pop(s.open)
	if !ok {
		return &InconsistencyError{Token: t, Expected: &opener}
	}
	if top != opener {
		return &InconsistencyError{Token: t, Expected: &opener, Stack: s.Open()}
	}
	s.open = rest
	return nil
}

func formatTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
