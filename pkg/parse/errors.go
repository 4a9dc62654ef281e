package parse

import (
	"fmt"

	"github.com/jaikdean/ShapeScript/pkg/lex"
)

// ErrorKind enumerates the ways a token stream can fail to parse.
type ErrorKind int

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrExpectedExpression
	ErrExpectedIdentifier
	ErrUnclosedBlock
	ErrUnexpectedEOF
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpectedToken"
	case ErrExpectedExpression:
		return "expectedExpression"
	case ErrExpectedIdentifier:
		return "expectedIdentifier"
	case ErrUnclosedBlock:
		return "unclosedBlock"
	case ErrUnexpectedEOF:
		return "unexpectedEOF"
	default:
		return "unknown"
	}
}

// Error is raised when the parser cannot build a statement or expression
// from the token stream.
type Error struct {
	Kind  ErrorKind
	Range lex.SourceRange
	Hint  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Range.Start.Line, e.Range.Start.Column, e.Hint)
}
