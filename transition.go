package smartjson

import "slices"

// ExpectedNext returns the kinds that may legally follow k in a well-formed
// document. The table is total: StructureEnd, and any unknown kind, has no
// successors.
func ExpectedNext(k TokenKind) []TokenKind {
	switch k {
	case KindStructureStart:
		return []TokenKind{KindObjectOpen}
	case KindObjectOpen:
		return []TokenKind{KindObjectClose, KindQuoteOpen}
	case KindObjectClose:
		return []TokenKind{KindObjectClose, KindArrayClose, KindComma}
	case KindQuoteOpen:
		return []TokenKind{KindLiteral, KindQuoteClose}
	case KindQuoteClose:
		return []TokenKind{KindColon, KindComma, KindObjectClose, KindArrayClose}
	case KindArrayOpen:
		return []TokenKind{KindArrayClose, KindObjectOpen, KindQuoteOpen, KindDigit}
	case KindArrayClose:
		return []TokenKind{KindObjectClose, KindArrayClose, KindComma}
	case KindColon:
		return []TokenKind{KindObjectOpen, KindQuoteOpen, KindArrayOpen, KindDigit}
	case KindLiteral:
		return []TokenKind{KindLiteral, KindQuoteClose}
	case KindDigit:
		return []TokenKind{KindDigit, KindObjectClose, KindComma}
	case KindComma:
		return []TokenKind{KindQuoteOpen, KindObjectOpen, KindArrayOpen, KindDigit}
	default:
		return nil
	}
}

// Allows reports whether next may follow prev.
func Allows(prev, next TokenKind) bool {
	return slices.Contains(ExpectedNext(prev), next)
}
