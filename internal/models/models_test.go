package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	tests := []struct {
		token Token
		want  string
	}{
		{Token{Kind: CurlyOpenToken}, "'{'"},
		{Token{Kind: CurlyCloseToken}, "'}'"},
		{Token{Kind: SquareOpenToken}, "'['"},
		{Token{Kind: SquareCloseToken}, "']'"},
		{Token{Kind: CommaToken}, "','"},
		{Token{Kind: ColonToken}, "':'"},
		{Token{Kind: StringToken, Str: `a\"b`}, `str:"a\\\"b"`},
		{Token{Kind: NumberToken, Num: 245.23}, "num:245.23"},
		{Token{Kind: NumberToken, Num: -245}, "num:-245"},
		{Token{Kind: BoolToken, Bool: true}, "'true'"},
		{Token{Kind: BoolToken}, "'false'"},
		{Token{Kind: NullToken}, "'null'"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.token.String())
	}
}

func TestValue_ClosedSet(t *testing.T) {
	// Every variant satisfies Value; nothing else can.
	values := []Value{
		Object{"k": Null{}},
		Array{Number(1), Bool(false)},
		String("s"),
		Number(1.5),
		Bool(true),
		Null{},
	}

	for _, v := range values {
		assert.Implements(t, (*Value)(nil), v)
	}
}
