package guard

import (
	"errors"
	"fmt"
)

// Kind classifies a failed precondition.
type Kind uint8

// Kind constants. The zero value is reserved so an uninitialized Kind never
// matches a real failure.
const (
	KindNullArgument Kind = iota + 1
	KindEmptyArgument
	KindInvalidArgument
	KindOutOfRangeArgument
)

// Sentinel errors matched by errors.Is against any *Error of the same kind.
var (
	// ErrNullArgument reports a required value that is absent.
	ErrNullArgument = errors.New("null argument")
	// ErrEmptyArgument reports a present value with zero effective length.
	ErrEmptyArgument = errors.New("empty argument")
	// ErrInvalidArgument reports a compound value that breaks a structural rule.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRangeArgument reports a value or range outside its bounds.
	ErrOutOfRangeArgument = errors.New("argument out of range")
)

// String returns the kind name used in messages and telemetry labels.
func (kind Kind) String() string {
	switch kind {
	case KindNullArgument:
		return "null_argument"
	case KindEmptyArgument:
		return "empty_argument"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindOutOfRangeArgument:
		return "out_of_range_argument"
	default:
		return "unknown"
	}
}

func (kind Kind) sentinel() error {
	switch kind {
	case KindNullArgument:
		return ErrNullArgument
	case KindEmptyArgument:
		return ErrEmptyArgument
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindOutOfRangeArgument:
		return ErrOutOfRangeArgument
	default:
		return nil
	}
}

// Error is the failure returned by every guard. It is built once at the point
// of failure and exposes its fields read-only.
type Error struct {
	kind    Kind
	param   string
	message string
}

func newError(kind Kind, param, format string, args ...any) *Error {
	return &Error{
		kind:    kind,
		param:   param,
		message: fmt.Sprintf(format, args...),
	}
}

// Kind returns the failure classification.
func (e *Error) Kind() Kind {
	if e == nil {
		return 0
	}

	return e.kind
}

// Param returns the name of the offending parameter.
func (e *Error) Param() string {
	if e == nil {
		return ""
	}

	return e.param
}

// Message returns the formatted diagnostic.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

// Error returns the formatted diagnostic.
func (e *Error) Error() string {
	if e == nil {
		return ErrInvalidArgument.Error()
	}

	return e.message
}

// Unwrap returns the sentinel for the error's kind so errors.Is works.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.kind.sentinel()
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var guardErr *Error
	if !errors.As(err, &guardErr) || guardErr == nil {
		return 0, false
	}

	return guardErr.kind, true
}
