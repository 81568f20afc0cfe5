package smartjson

// InferMissing guesses the single token missing between prev and cur. It is a
// local lookup with no knowledge of the rest of the sequence. A false second
// return means no insertion: the pair is either legal or not something this
// heuristic can repair. Array brackets are never inferred.
func InferMissing(prev, cur Token) (Correction, bool) {
	insert := func(t Token) (Correction, bool) {
		return Correction{Token: t, Position: PositionMiddle}, true
	}

	switch prev.Kind {
	case KindStructureStart:
		switch cur.Kind {
		case KindQuoteOpen:
			return insert(ObjectOpen)
		case KindLiteral, KindDigit:
			return insert(QuoteOpen)
		}
	case KindObjectOpen:
		if cur.Kind == KindLiteral {
			return insert(QuoteOpen)
		}
	case KindLiteral:
		switch cur.Kind {
		case KindColon:
			return insert(QuoteClose)
		case KindObjectClose, KindStructureEnd:
			return insert(QuoteClose)
		}
	case KindColon:
		if cur.Kind == KindLiteral && cur.Char != ' ' {
			return insert(QuoteOpen)
		}
	case KindDigit:
		if cur.Kind == KindStructureEnd {
			return insert(ObjectClose)
		}
	case KindQuoteClose:
		switch cur.Kind {
		case KindStructureEnd:
			return insert(ObjectClose)
		case KindQuoteOpen, KindObjectClose:
			return insert(Colon)
		}
	}
	return Correction{}, false
}

// CorrectPass walks tokens once and returns a new sequence with an inferred
// token inserted before every token its predecessor does not allow. The
// input is not modified.
func CorrectPass(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens)+len(tokens)/4)
	for _, t := range tokens {
		if len(out) > 0 {
			prev := out[len(out)-1]
			if !Allows(prev.Kind, t.Kind) {
				if c, ok := InferMissing(prev, t); ok && c.Position == PositionMiddle {
					out = append(out, c.Token)
				}
			}
		}
		out = append(out, t)
	}
	return out
}
