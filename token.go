package smartjson

import "fmt"

// TokenKind is the lexical class of a Token.
type TokenKind uint8

const (
	// KindStructureStart marks the beginning of every token sequence.
	KindStructureStart TokenKind = iota
	// KindObjectOpen is a `{`.
	KindObjectOpen
	// KindObjectClose is a `}`.
	KindObjectClose
	// KindQuoteOpen is a quote that opens a string.
	KindQuoteOpen
	// KindQuoteClose is a quote that closes a string.
	KindQuoteClose
	// KindArrayOpen is a `[`.
	KindArrayOpen
	// KindArrayClose is a `]`.
	KindArrayClose
	// KindColon is a `:`.
	KindColon
	// KindComma is a `,`.
	KindComma
	// KindLiteral is any character that is not structural.
	KindLiteral
	// KindDigit is a digit outside of a string.
	KindDigit
	// KindStructureEnd marks the end of every token sequence.
	KindStructureEnd
)

// String returns the kind name.
func (k TokenKind) String() string {
	switch k {
	case KindStructureStart:
		return "StructureStart"
	case KindObjectOpen:
		return "ObjectOpen"
	case KindObjectClose:
		return "ObjectClose"
	case KindQuoteOpen:
		return "QuoteOpen"
	case KindQuoteClose:
		return "QuoteClose"
	case KindArrayOpen:
		return "ArrayOpen"
	case KindArrayClose:
		return "ArrayClose"
	case KindColon:
		return "Colon"
	case KindComma:
		return "Comma"
	case KindLiteral:
		return "Literal"
	case KindDigit:
		return "Digit"
	case KindStructureEnd:
		return "StructureEnd"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

// Token is a classified lexical unit. Char is only set for literal and digit
// tokens.
type Token struct {
	Kind TokenKind
	Char rune
}

// Payload-less tokens.
var (
	StructureStart = Token{Kind: KindStructureStart}
	ObjectOpen     = Token{Kind: KindObjectOpen}
	ObjectClose    = Token{Kind: KindObjectClose}
	QuoteOpen      = Token{Kind: KindQuoteOpen}
	QuoteClose     = Token{Kind: KindQuoteClose}
	ArrayOpen      = Token{Kind: KindArrayOpen}
	ArrayClose     = Token{Kind: KindArrayClose}
	Colon          = Token{Kind: KindColon}
	Comma          = Token{Kind: KindComma}
	StructureEnd   = Token{Kind: KindStructureEnd}
)

// Literal returns a literal token carrying r.
func Literal(r rune) Token {
	return Token{Kind: KindLiteral, Char: r}
}

// Digit returns a digit token carrying r.
func Digit(r rune) Token {
	return Token{Kind: KindDigit, Char: r}
}

// String returns a debug representation such as Literal('a') or Colon.
func (t Token) String() string {
	switch t.Kind {
	case KindLiteral, KindDigit:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Char)
	default:
		return t.Kind.String()
	}
}

// QuoteState tracks whether the tokenizer is inside a string.
type QuoteState bool

const (
	// QuoteClosed means the tokenizer is outside of a string.
	QuoteClosed QuoteState = false
	// QuoteOpened means the tokenizer is inside of a string.
	QuoteOpened QuoteState = true
)

// Toggle flips the state.
func (q *QuoteState) Toggle() {
	*q = !*q
}

// Position says where a Correction goes relative to the offending pair. Only
// PositionMiddle is produced today.
type Position uint8

const (
	// PositionMiddle inserts between the previous and the current token.
	PositionMiddle Position = iota
)

// Correction is a single token the corrector believes is missing.
type Correction struct {
	Token    Token
	Position Position
}
