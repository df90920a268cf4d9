package ternary

import (
	"errors"
	"math"
	"unicode"
	"unicode/utf8"
)

// Parser evaluates a single ternary expression while it is being parsed; no
// tree is built. A Parser holds its own scan position, so separate Parsers may
// be used from separate goroutines.
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := '(' expr ')' | number
//	number := ('0' | '1' | '2')+
type Parser struct {
	input string
	pos   int
}

func NewParser(s string) *Parser {
	return &Parser{
		input: s,
	}
}

// Eval evaluates s and returns its integer value.
func Eval(s string) (int64, error) {
	return NewParser(s).Parse()
}

func (p *Parser) Pos() int {
	return p.pos
}

// peekRune returns the rune at the current position and its width. The width
// is 0 at end of input.
func (p *Parser) peekRune() (rune, int) {
	if p.pos >= len(p.input) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(p.input[p.pos:])
}

func (p *Parser) readRune() (rune, bool) {
	r, n := p.peekRune()
	if n == 0 {
		return 0, false
	}
	p.pos += n
	return r, true
}

func (p *Parser) SkipWhite() {
	for {
		r, n := p.peekRune()
		if n == 0 || !unicode.IsSpace(r) {
			return
		}
		p.pos += n
	}
}

func (p *Parser) newError(kind ErrorKind, r rune, pos int) *Error {
	return &Error{
		Kind: kind,
		Char: r,
		Pos:  pos,
	}
}

func (p *Parser) opError(err error, r rune, pos int) *Error {
	if errors.Is(err, ErrDivisionByZero) {
		return p.newError(KindDivisionByZero, r, pos)
	}
	return p.newError(KindOverflow, r, pos)
}

// Parse evaluates the whole input. Anything other than white space after a
// complete expression is an error.
func (p *Parser) Parse() (int64, error) {
	p.pos = 0
	p.SkipWhite()
	if _, n := p.peekRune(); n == 0 {
		return 0, p.newError(KindEmptyInput, 0, p.pos)
	}
	v, err := p.ParseExpr()
	if err != nil {
		return 0, err
	}
	p.SkipWhite()
	if r, n := p.peekRune(); n != 0 {
		return 0, p.newError(KindTrailingContent, r, p.pos)
	}
	return v, nil
}

func (p *Parser) ParseExpr() (int64, error) {
	return p.parseLevel(LevelExpr, p.ParseTerm)
}

func (p *Parser) ParseTerm() (int64, error) {
	return p.parseLevel(LevelTerm, p.ParseFactor)
}

// parseLevel folds operands left to right with the operators registered at level.
func (p *Parser) parseLevel(level Level, operand func() (int64, error)) (int64, error) {
	lhs, err := operand()
	if err != nil {
		return 0, err
	}
	for {
		p.SkipWhite()
		r, n := p.peekRune()
		fn, ok := lookupOp(r, level)
		if n == 0 || !ok {
			return lhs, nil
		}
		pos := p.pos
		p.pos += n

		rhs, err := operand()
		if err != nil {
			return 0, err
		}
		lhs, err = fn(lhs, rhs)
		if err != nil {
			return 0, p.opError(err, r, pos)
		}
	}
}

func (p *Parser) ParseFactor() (int64, error) {
	p.SkipWhite()
	r, n := p.peekRune()
	if n == 0 {
		return 0, p.newError(KindUnexpectedEndOfInput, 0, p.pos)
	}

	if r == '(' {
		open := p.pos
		p.pos += n
		v, err := p.ParseExpr()
		if err != nil {
			return 0, err
		}
		p.SkipWhite()
		if r, ok := p.readRune(); !ok || r != ')' {
			return 0, p.newError(KindMissingClosingParenthesis, '(', open)
		}
		return v, nil
	}
	if r >= '0' && r <= '9' {
		return p.ParseNumber()
	}
	return 0, p.newError(KindUnexpectedCharacter, r, p.pos)
}

// ParseNumber reads a run of ternary digits. A decimal digit 3-9 directly
// after or instead of the run is an invalid digit.
func (p *Parser) ParseNumber() (int64, error) {
	start := p.pos
	var v int64
	for {
		r, n := p.peekRune()
		if n == 0 || r < '0' || r > '2' {
			break
		}
		d := int64(r - '0')
		if v > (math.MaxInt64-d)/3 {
			return 0, p.newError(KindOverflow, 0, start)
		}
		v = v*3 + d
		p.pos += n
	}
	if r, n := p.peekRune(); n != 0 && r >= '3' && r <= '9' {
		return 0, p.newError(KindInvalidDigit, r, p.pos)
	}
	if p.pos == start {
		r, n := p.peekRune()
		if n == 0 {
			return 0, p.newError(KindUnexpectedEndOfInput, 0, p.pos)
		}
		return 0, p.newError(KindUnexpectedCharacter, r, p.pos)
	}
	return v, nil
}
