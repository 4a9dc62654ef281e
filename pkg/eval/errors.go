package eval

import (
	"fmt"

	"github.com/jaikdean/ShapeScript/pkg/lex"
)

// RuntimeErrorKind enumerates the ways evaluation can fail.
type RuntimeErrorKind int

const (
	ErrTypeMismatch RuntimeErrorKind = iota
	ErrUnknownSymbol
	ErrAssertionFailure
	ErrFileNotFound
	ErrFileAccessRestricted
	ErrFileParsingError
	ErrFileTypeMismatch
	ErrUnknownFont
	ErrImportError
	ErrWrongArgumentCount
)

func (k RuntimeErrorKind) String() string {
	switch k {
	case ErrTypeMismatch:
		return "typeMismatch"
	case ErrUnknownSymbol:
		return "unknownSymbol"
	case ErrAssertionFailure:
		return "assertionFailure"
	case ErrFileNotFound:
		return "fileNotFound"
	case ErrFileAccessRestricted:
		return "fileAccessRestricted"
	case ErrFileParsingError:
		return "fileParsingError"
	case ErrFileTypeMismatch:
		return "fileTypeMismatch"
	case ErrUnknownFont:
		return "unknownFont"
	case ErrImportError:
		return "importError"
	case ErrWrongArgumentCount:
		return "wrongArgumentCount"
	default:
		return "unknown"
	}
}

// RuntimeError is raised by the evaluator. ErrImportError wraps an inner
// error via Unwrap, so callers can errors.Is/As through to the underlying
// Importer failure.
type RuntimeError struct {
	Kind  RuntimeErrorKind
	Range lex.SourceRange
	Hint  string
	Inner error
}

func (e *RuntimeError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s at %d:%d: %s: %v", e.Kind, e.Range.Start.Line, e.Range.Start.Column, e.Hint, e.Inner)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Range.Start.Line, e.Range.Start.Column, e.Hint)
}

func (e *RuntimeError) Unwrap() error { return e.Inner }

// Cancelled is the sentinel returned when evaluation is aborted via
// isCancelled rather than failing outright.
var Cancelled = fmt.Errorf("evaluation cancelled")
