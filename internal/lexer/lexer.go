package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/mcncl/jsonv/internal/errors"
	"github.com/mcncl/jsonv/internal/models"
)

// Tokenizer scans a JSON document in a single forward pass and produces
// its complete token sequence. A Tokenizer owns nothing beyond the
// input bytes and its scan position; it is constructed for one input
// and consumed by one Tokenize call.
type Tokenizer struct {
	input string
	pos   int
}

// New creates a Tokenizer for the given input.
func New(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize converts the input into an ordered token sequence. It
// returns either the complete sequence or the first lexical error,
// never both; no partial sequence accompanies an error.
func (t *Tokenizer) Tokenize() ([]models.Token, error) {
	var out []models.Token
	for t.pos < len(t.input) {
		tok, emitted, err := t.next()
		if err != nil {
			return nil, err
		}
		if !emitted {
			// Whitespace, or a byte no token class claims.
			t.pos++
			continue
		}
		out = append(out, tok)
		t.pos += width(tok)
	}
	return out, nil
}

// next recognizes the token starting at the current position. It does
// not advance; emitted is false for bytes that are skipped silently.
func (t *Tokenizer) next() (tok models.Token, emitted bool, err error) {
	switch b := t.input[t.pos]; b {
	case '{':
		return models.Token{Kind: models.CurlyOpenToken}, true, nil
	case '}':
		return models.Token{Kind: models.CurlyCloseToken}, true, nil
	case '[':
		return models.Token{Kind: models.SquareOpenToken}, true, nil
	case ']':
		return models.Token{Kind: models.SquareCloseToken}, true, nil
	case ',':
		return models.Token{Kind: models.CommaToken}, true, nil
	case ':':
		return models.Token{Kind: models.ColonToken}, true, nil
	case 'n':
		return t.literal("null", models.Token{Kind: models.NullToken})
	case 't':
		return t.literal("true", models.Token{Kind: models.BoolToken, Bool: true})
	case 'f':
		return t.literal("false", models.Token{Kind: models.BoolToken})
	case '"':
		return t.scanString()
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return t.scanNumber()
	default:
		return models.Token{}, false, nil
	}
}

// width is the advancement after emitting a token. It is derived from
// the token's own textual width, not from a separately tracked
// consumed-byte count. For a number whose shortest decimal formatting
// is narrower than its source spelling ("1.10" scans as 1.1) the two
// disagree and the scan position desynchronizes; the remainder of the
// spelling is scanned again as a fresh token.
func width(tok models.Token) int {
	switch tok.Kind {
	case models.NullToken:
		return len("null")
	case models.BoolToken:
		if tok.Bool {
			return len("true")
		}
		return len("false")
	case models.NumberToken:
		return len(strconv.FormatFloat(tok.Num, 'f', -1, 64))
	case models.StringToken:
		return len(tok.Str) + 2
	default:
		return 1
	}
}

// literal matches a fixed keyword starting at the current position.
// Truncation near end of input is a mismatch like any other.
func (t *Tokenizer) literal(want string, tok models.Token) (models.Token, bool, error) {
	end := t.pos + len(want)
	if end > len(t.input) || t.input[t.pos:end] != want {
		return models.Token{}, false, errors.NewTokenizeError(errors.InvalidLiteral, t.pos)
	}
	return tok, true, nil
}

// scanString finds the first unescaped closing quote after the opening
// one: either the very first content position, or a quote whose
// preceding byte is not a backslash. The content is decoded verbatim;
// escape sequences are kept literally.
func (t *Tokenizer) scanString() (models.Token, bool, error) {
	for j := t.pos + 1; j < len(t.input); j++ {
		if t.input[j] != '"' {
			continue
		}
		if j == t.pos+1 || t.input[j-1] != '\\' {
			content := t.input[t.pos+1 : j]
			if !utf8.ValidString(content) {
				return models.Token{}, false, errors.NewTokenizeError(errors.InvalidString, t.pos)
			}
			return models.Token{Kind: models.StringToken, Str: content}, true, nil
		}
	}
	return models.Token{}, false, errors.NewTokenizeError(errors.InvalidString, t.pos)
}

// scanNumber consumes the maximal run of digits, '.' and '-' and lets
// the float parse decide validity. The run never includes 'e' or 'E',
// so exponent notation splits into separate scans instead of forming
// one number.
func (t *Tokenizer) scanNumber() (models.Token, bool, error) {
	end := t.pos
	for end < len(t.input) && isNumberByte(t.input[end]) {
		end++
	}
	n, err := strconv.ParseFloat(t.input[t.pos:end], 64)
	if err != nil {
		return models.Token{}, false, errors.NewTokenizeError(errors.InvalidNumber, t.pos)
	}
	return models.Token{Kind: models.NumberToken, Num: n}, true, nil
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == '-'
}
