package parser

import (
	"errors"
	"fmt"

	"monkey/interpreter-go/pkg/token"
)

// ErrorKind enumerates the parse failures the parser can report.
type ErrorKind string

const (
	ErrUnexpectedToken       ErrorKind = "unexpected_token"
	ErrNoPrefixParseFunction ErrorKind = "no_prefix_parse_function"
)

// Error describes the first syntax violation found in a program. Parsing
// stops as soon as one is produced.
type Error struct {
	Kind     ErrorKind
	Expected token.Kind // set for ErrUnexpectedToken
	Actual   token.Kind
	Literal  string
	Detail   string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrUnexpectedToken:
		if e.Detail != "" {
			return fmt.Sprintf("unexpected token: %s", e.Detail)
		}
		return fmt.Sprintf("unexpected token: expected %s, got %s", e.Expected, e.Actual)
	case ErrNoPrefixParseFunction:
		return fmt.Sprintf("no prefix parse function for %s", e.Actual)
	default:
		return fmt.Sprintf("parse error: %s", e.Kind)
	}
}

func unexpectedToken(expected token.Kind, actual token.Token) *Error {
	return &Error{Kind: ErrUnexpectedToken, Expected: expected, Actual: actual.Kind, Literal: actual.Literal}
}

func noPrefixParseFunction(actual token.Token) *Error {
	return &Error{Kind: ErrNoPrefixParseFunction, Actual: actual.Kind, Literal: actual.Literal}
}

// IsIncomplete reports whether err was caused by the input ending before a
// construct was closed. The REPL uses it to keep reading continuation lines.
func IsIncomplete(err error) bool {
	var perr *Error
	if !errors.As(err, &perr) {
		return false
	}
	return perr.Actual == token.EOF
}
