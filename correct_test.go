package smartjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var allKinds = []TokenKind{
	KindStructureStart, KindObjectOpen, KindObjectClose, KindQuoteOpen, KindQuoteClose,
	KindArrayOpen, KindArrayClose, KindColon, KindComma, KindLiteral, KindDigit, KindStructureEnd,
}

func tokenOf(k TokenKind) Token {
	switch k {
	case KindLiteral:
		return Literal('x')
	case KindDigit:
		return Digit('1')
	default:
		return Token{Kind: k}
	}
}

func TestInferMissing(t *testing.T) {
	cases := []struct {
		name string
		prev Token
		cur  Token
		want Token
	}{
		{name: "missing opening brace", prev: StructureStart, cur: QuoteOpen, want: ObjectOpen},
		{name: "bare literal at start", prev: StructureStart, cur: Literal('n'), want: QuoteOpen},
		{name: "bare digit at start", prev: StructureStart, cur: Digit('1'), want: QuoteOpen},
		{name: "unquoted key", prev: ObjectOpen, cur: Literal('n'), want: QuoteOpen},
		{name: "unterminated key", prev: Literal('e'), cur: Colon, want: QuoteClose},
		{name: "unquoted value", prev: Colon, cur: Literal('j'), want: QuoteOpen},
		{name: "unterminated value before brace", prev: Literal('n'), cur: ObjectClose, want: QuoteClose},
		{name: "unterminated value at end", prev: Literal('n'), cur: StructureEnd, want: QuoteClose},
		{name: "number then end", prev: Digit('0'), cur: StructureEnd, want: ObjectClose},
		{name: "string then end", prev: QuoteClose, cur: StructureEnd, want: ObjectClose},
		{name: "missing colon between strings", prev: QuoteClose, cur: QuoteOpen, want: Colon},
		{name: "missing colon before brace", prev: QuoteClose, cur: ObjectClose, want: Colon},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := InferMissing(tc.prev, tc.cur)
			require.True(t, ok)
			require.Equal(t, tc.want, got.Token)
			require.Equal(t, PositionMiddle, got.Position)
		})
	}
}

func TestInferMissingNone(t *testing.T) {
	cases := []struct {
		name string
		prev Token
		cur  Token
	}{
		{name: "space after colon", prev: Colon, cur: Literal(' ')},
		{name: "literal run", prev: Literal(' '), cur: Literal(' ')},
		{name: "object close then end", prev: ObjectClose, cur: StructureEnd},
		{name: "equals stand-in after key", prev: QuoteClose, cur: Literal(':')},
		{name: "value after equals stand-in", prev: Literal(':'), cur: QuoteOpen},
		{name: "object after string", prev: QuoteClose, cur: ObjectOpen},
		{name: "literal then comma", prev: Literal('a'), cur: Comma},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := InferMissing(tc.prev, tc.cur)
			require.False(t, ok)
		})
	}
}

func TestInferMissingNeverInsertsArrayBrackets(t *testing.T) {
	for _, prev := range allKinds {
		for _, cur := range allKinds {
			c, ok := InferMissing(tokenOf(prev), tokenOf(cur))
			if !ok {
				continue
			}
			require.NotEqual(t, KindArrayOpen, c.Token.Kind, "%s -> %s", prev, cur)
			require.NotEqual(t, KindArrayClose, c.Token.Kind, "%s -> %s", prev, cur)
		}
	}
}

func TestCorrectPass(t *testing.T) {
	in := Tokenize(`{name:john}`)
	out := CorrectPass(in)

	require.Equal(t, `{"name":"john"}`, Render(out))
	require.Len(t, out, len(in)+4)
	// Input is left untouched.
	require.Equal(t, `{name:john}`, Render(in))
}

func TestCorrectPassAccumulates(t *testing.T) {
	first := CorrectPass(Tokenize(`name:john`))
	require.Equal(t, `"name":"john"`, Render(first))

	second := CorrectPass(first)
	require.Equal(t, `{"name":"john"}`, Render(second))

	// A corrected sequence is a fixed point.
	require.Equal(t, second, CorrectPass(second))
}

func TestCorrectPassLeavesLegalSequences(t *testing.T) {
	in := Tokenize(`{"a":[1,{"b":"c"}],"d":2}`)
	require.Equal(t, in, CorrectPass(in))
}
