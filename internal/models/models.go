package models

import "strconv"

// Kind identifies the lexical class of a Token.
type Kind uint8

const (
	CurlyOpenToken Kind = iota
	CurlyCloseToken
	SquareOpenToken
	SquareCloseToken
	CommaToken
	ColonToken
	StringToken
	NumberToken
	BoolToken
	NullToken
)

// Token is one lexical unit recognized in the input, in document order.
// Exactly one payload field is meaningful, selected by Kind; structural
// tokens carry no payload. Whitespace is skipped during scanning and is
// never represented as a Token.
type Token struct {
	Kind Kind
	Str  string  // StringToken: content without quotes, escapes kept verbatim
	Num  float64 // NumberToken
	Bool bool    // BoolToken
}

// String generates a readable form of a token meant for debugging and
// error messages.
func (t Token) String() string {
	switch t.Kind {
	case CurlyOpenToken:
		return "'{'"
	case CurlyCloseToken:
		return "'}'"
	case SquareOpenToken:
		return "'['"
	case SquareCloseToken:
		return "']'"
	case CommaToken:
		return "','"
	case ColonToken:
		return "':'"
	case StringToken:
		return "str:" + strconv.Quote(t.Str)
	case NumberToken:
		return "num:" + strconv.FormatFloat(t.Num, 'f', -1, 64)
	case BoolToken:
		if t.Bool {
			return "'true'"
		}
		return "'false'"
	case NullToken:
		return "'null'"
	default:
		return "unknown"
	}
}

// Value is one node of a parsed JSON document. It is a closed set:
// Object, Array, String, Number, Bool and Null are the only
// implementations, so consumers can switch over all variants. A Value
// tree is finite and acyclic; containers exclusively own their
// children.
type Value interface {
	isValue()
}

// Object is a JSON object. Key iteration order is unspecified and
// duplicate keys from the source collapse to the last occurrence.
type Object map[string]Value

// Array is a JSON array, in document order.
type Array []Value

// String is a JSON string scalar. Backslash escape sequences from the
// source are preserved literally, not interpreted.
type String string

// Number is a JSON number scalar, held as a float64.
type Number float64

// Bool is a JSON boolean scalar.
type Bool bool

// Null is the JSON null scalar.
type Null struct{}

func (Object) isValue() {}
func (Array) isValue()  {}
func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (Null) isValue()   {}
