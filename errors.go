package ternary

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindEmptyInput ErrorKind = iota
	KindUnexpectedCharacter
	KindUnexpectedEndOfInput
	KindInvalidDigit
	KindMissingClosingParenthesis
	KindDivisionByZero
	KindTrailingContent
	KindOverflow
)

var (
	ErrEmptyInput                = errors.New("empty input")
	ErrUnexpectedCharacter       = errors.New("unexpected character")
	ErrUnexpectedEndOfInput      = errors.New("unexpected end of input")
	ErrInvalidDigit              = errors.New("invalid digit")
	ErrMissingClosingParenthesis = errors.New("missing closing parenthesis")
	ErrDivisionByZero            = errors.New("division by zero")
	ErrTrailingContent           = errors.New("unexpected trailing content")
	ErrOverflow                  = errors.New("integer overflow")
)

var kindErrors = map[ErrorKind]error{
	KindEmptyInput:                ErrEmptyInput,
	KindUnexpectedCharacter:       ErrUnexpectedCharacter,
	KindUnexpectedEndOfInput:      ErrUnexpectedEndOfInput,
	KindInvalidDigit:              ErrInvalidDigit,
	KindMissingClosingParenthesis: ErrMissingClosingParenthesis,
	KindDivisionByZero:            ErrDivisionByZero,
	KindTrailingContent:           ErrTrailingContent,
	KindOverflow:                  ErrOverflow,
}

func (k ErrorKind) String() string {
	if err, ok := kindErrors[k]; ok {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned for every failure detected while evaluating an expression.
// Char is zero for kinds that are not tied to a single character.
type Error struct {
	Kind ErrorKind
	Char rune
	Pos  int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnexpectedCharacter, KindInvalidDigit, KindTrailingContent:
		return fmt.Sprintf("%v: '%c' (%d)", e.Kind, e.Char, e.Pos)
	case KindMissingClosingParenthesis, KindDivisionByZero, KindOverflow:
		return fmt.Sprintf("%v (%d)", e.Kind, e.Pos)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return kindErrors[e.Kind]
}
