package smartjson

// Tokenize splits raw into tokens using a default Parser. It never fails;
// unknown characters become literals.
func Tokenize(raw string, opts ...Option) []Token {
	return New(opts...).Tokenize(raw)
}

// Tokenize splits raw into tokens. Nesting mismatches are logged at error
// level and do not stop tokenization, since the output is expected to be
// imperfect until corrected.
func (p *Parser) Tokenize(raw string) []Token {
	tokens := make([]Token, 0, len(raw)+2)
	var stack ValidationStack
	emit := func(t Token) {
		tokens = append(tokens, t)
		if err := stack.Push(t); err != nil {
			p.logger.Error("structural inconsistency", "err", err)
		}
	}

	emit(StructureStart)
	quote := QuoteClosed
	for _, r := range raw {
		switch r {
		case '{':
			emit(ObjectOpen)
		case '}':
			emit(ObjectClose)
		case '[':
			emit(ArrayOpen)
		case ']':
			emit(ArrayClose)
		case '"', '\'':
			if quote == QuoteOpened {
				emit(QuoteClose)
			} else {
				emit(QuoteOpen)
			}
			quote.Toggle()
		case ' ', '\n', '\t', '\r':
			if quote == QuoteOpened {
				emit(Literal(r))
			}
		case '=':
			// A bare `=` is almost always meant as a key/value separator.
			if quote == QuoteOpened {
				emit(Literal(r))
			} else {
				emit(Literal(':'))
			}
		case ':':
			emit(Colon)
		case ',':
			emit(Comma)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if quote == QuoteOpened {
				emit(Literal(r))
			} else {
				emit(Digit(r))
			}
		default:
			emit(Literal(r))
		}
	}
	emit(StructureEnd)
	return tokens
}
