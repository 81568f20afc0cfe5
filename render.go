package smartjson

import "strings"

// Render turns tokens back into text. Sentinels are dropped and both quote
// tokens become `"`. Whitespace discarded by Tokenize is not restored.
func Render(tokens []Token) string {
	var sb strings.Builder
	sb.Grow(len(tokens))
	for _, t := range tokens {
		switch t.Kind {
		case KindObjectOpen:
			sb.WriteByte('{')
		case KindObjectClose:
			sb.WriteByte('}')
		case KindQuoteOpen, KindQuoteClose:
			sb.WriteByte('"')
		case KindArrayOpen:
			sb.WriteByte('[')
		case KindArrayClose:
			sb.WriteByte(']')
		case KindColon:
			sb.WriteByte(':')
		case KindComma:
			sb.WriteByte(',')
		case KindLiteral, KindDigit:
			sb.WriteRune(t.Char)
		}
	}
	return sb.String()
}
