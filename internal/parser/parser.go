package parser

import (
	"github.com/mcncl/jsonv/internal/errors"
	"github.com/mcncl/jsonv/internal/models"
)

// Parser consumes a token sequence left to right through a
// single-token lookahead cursor and builds the document's value tree
// by recursive descent. A Parser is constructed for one token sequence
// and consumed by one Parse call.
type Parser struct {
	tokens []models.Token
	pos    int
}

// New creates a Parser over the given token sequence.
func New(tokens []models.Token) *Parser {
	return &Parser{tokens: tokens}
}

// next consumes one token. ok is false at end of input.
func (p *Parser) next() (models.Token, bool) {
	if p.pos >= len(p.tokens) {
		return models.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// peek inspects the next token without consuming it.
func (p *Parser) peek() (models.Token, bool) {
	if p.pos >= len(p.tokens) {
		return models.Token{}, false
	}
	return p.tokens[p.pos], true
}

// Parse consumes one value from the cursor: container-open tokens
// recurse into the matching container rule, scalar tokens become
// scalar values directly. Tokens remaining after the value are left
// unconsumed.
func (p *Parser) Parse() (models.Value, error) {
	tok, ok := p.next()
	if !ok {
		return nil, errors.NewParseError(errors.UnexpectedToken, "end of input")
	}
	switch tok.Kind {
	case models.CurlyOpenToken:
		return p.parseObject()
	case models.SquareOpenToken:
		return p.parseArray()
	case models.StringToken:
		return models.String(tok.Str), nil
	case models.NumberToken:
		return models.Number(tok.Num), nil
	case models.BoolToken:
		return models.Bool(tok.Bool), nil
	case models.NullToken:
		return models.Null{}, nil
	default:
		return nil, errors.NewParseError(errors.UnexpectedToken, tok.String())
	}
}

// parseObject runs after the opening brace was consumed. Each
// iteration expects a string key or the closing brace, then a colon,
// one value, and a comma or the closing brace. The key position also
// accepts the closing brace right after a comma, so a trailing comma
// is legal; duplicate keys overwrite the earlier value.
func (p *Parser) parseObject() (models.Value, error) {
	obj := models.Object{}
	for {
		tok, ok := p.next()
		if !ok {
			return nil, errors.NewParseError(errors.ExpectedKeyOrCloseBrace, "end of input")
		}
		switch tok.Kind {
		case models.CurlyCloseToken:
			return obj, nil
		case models.StringToken:
			key := tok.Str
			colon, ok := p.next()
			if !ok {
				return nil, errors.NewParseError(errors.ExpectedColon, "end of input")
			}
			if colon.Kind != models.ColonToken {
				return nil, errors.NewParseError(errors.ExpectedColon, colon.String())
			}
			val, err := p.Parse()
			if err != nil {
				return nil, err
			}
			obj[key] = val
			delim, ok := p.next()
			if !ok {
				return nil, errors.NewParseError(errors.ExpectedCommaOrCloseBrace, "end of input")
			}
			switch delim.Kind {
			case models.CommaToken:
			case models.CurlyCloseToken:
				return obj, nil
			default:
				return nil, errors.NewParseError(errors.ExpectedCommaOrCloseBrace, delim.String())
			}
		default:
			return nil, errors.NewParseError(errors.ExpectedKeyOrCloseBrace, tok.String())
		}
	}
}

// parseArray runs after the opening bracket was consumed. The loop
// peeks for the closing bracket before each element, so a comma
// followed directly by the closing bracket is accepted: the comma is
// consumed unconditionally and the next iteration's peek closes the
// array.
func (p *Parser) parseArray() (models.Value, error) {
	arr := models.Array{}
	for {
		if tok, ok := p.peek(); ok && tok.Kind == models.SquareCloseToken {
			p.next()
			return arr, nil
		}
		val, err := p.Parse()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)
		tok, ok := p.peek()
		if !ok {
			return nil, errors.NewParseError(errors.ExpectedCommaOrCloseBracket, "end of input")
		}
		switch tok.Kind {
		case models.CommaToken:
			p.next()
		case models.SquareCloseToken:
		default:
			return nil, errors.NewParseError(errors.ExpectedCommaOrCloseBracket, tok.String())
		}
	}
}
