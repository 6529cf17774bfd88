package guard

import (
	"cmp"
	"strings"

	"github.com/LerianStudio/lib-guard/guard/internal/nilcheck"
)

// Fixed labels cited by guards that validate something other than a
// caller-supplied argument.
const (
	nameParam     = "name"
	lengthParam   = "length"
	sequenceParam = "sequence"
)

// Comparer is satisfied by types that order themselves through a Cmp method
// returning -1, 0 or +1, such as decimal.Decimal.
type Comparer[T any] interface {
	Cmp(other T) int
}

// RequireNonNull returns value unchanged, or a KindNullArgument error when value
// is nil. Typed nil (a nil pointer, map, slice, chan or func, including one held
// in an interface) counts as nil. Values of non-nillable kinds always pass.
func RequireNonNull[T any](value T, name string) (T, error) {
	if !nilcheck.Interface(value) {
		return value, nil
	}

	var zero T

	return zero, fail(KindNullArgument, name, "argument %s must not be nil", name)
}

// RequireNonEmptySequence returns value unchanged when it is a non-nil slice
// with at least one element.
func RequireNonEmptySequence[S ~[]E, E any](value S, name string) (S, error) {
	if _, err := RequireNonNull(value, name); err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return nil, fail(KindEmptyArgument, name, "collection argument %s is empty", name)
	}

	return value, nil
}

// RequireNonEmptyMap is RequireNonEmptySequence for maps.
func RequireNonEmptyMap[M ~map[K]V, K comparable, V any](value M, name string) (M, error) {
	if _, err := RequireNonNull(value, name); err != nil {
		return nil, err
	}

	if len(value) == 0 {
		return nil, fail(KindEmptyArgument, name, "collection argument %s is empty", name)
	}

	return value, nil
}

// RequireNonEmptyText returns value unchanged unless it is empty or consists
// only of whitespace. The returned string is never trimmed.
func RequireNonEmptyText(value, name string) (string, error) {
	if !isBlank(value) {
		return value, nil
	}

	return "", fail(KindEmptyArgument, name, "argument %s is empty", name)
}

// RequireNonEmptyTextPtr is RequireNonEmptyText for optional text: a nil
// pointer fails with KindNullArgument. The same pointer is returned.
func RequireNonEmptyTextPtr(value *string, name string) (*string, error) {
	if value == nil {
		return nil, fail(KindNullArgument, name, "argument %s must not be nil", name)
	}

	if _, err := RequireNonEmptyText(*value, name); err != nil {
		return nil, err
	}

	return value, nil
}

// NullOrNonEmptyText accepts a nil pointer and returns it as is. A present
// value fails only when it is exactly "". Unlike RequireNonEmptyText it does
// not trim, so whitespace-only text passes.
func NullOrNonEmptyText(value *string, name string) (*string, error) {
	if value == nil || *value != "" {
		return value, nil
	}

	return nil, fail(KindEmptyArgument, name, "argument %s is empty", name)
}

// RequireNoNullElements returns value unchanged when it is a non-nil slice and
// none of its elements is nil. An empty slice passes. The slice is only read.
func RequireNoNullElements[S ~[]E, E any](value S, name string) (S, error) {
	if _, err := RequireNonNull(value, name); err != nil {
		return nil, err
	}

	if index := nilcheck.Index([]E(value)); index >= 0 {
		return nil, fail(KindInvalidArgument, name, "argument %s contains a nil element at index %d", name, index)
	}

	return value, nil
}

// RequireInRange returns value when lower <= value <= upper. Ordering follows
// cmp.Compare, so a NaN value is below every bound and fails.
//
// The result is a copy; use RequireInRangeRef to keep working through the
// caller's own storage.
func RequireInRange[T cmp.Ordered](value T, name string, lower, upper T) (T, error) {
	if cmp.Compare(value, lower) >= 0 && cmp.Compare(value, upper) <= 0 {
		return value, nil
	}

	var zero T

	return zero, outOfRange(name, lower, upper)
}

// RequireInRangeRef checks *value against [lower, upper] and returns the same
// pointer, so callers can validate and keep mutating in one expression:
//
//	p, err := guard.RequireInRangeRef(&cfg.Workers, "workers", 1, 64)
func RequireInRangeRef[T cmp.Ordered](value *T, name string, lower, upper T) (*T, error) {
	if value == nil {
		return nil, fail(KindNullArgument, name, "argument %s must not be nil", name)
	}

	if _, err := RequireInRange(*value, name, lower, upper); err != nil {
		return nil, err
	}

	return value, nil
}

// RequireInRangeComparable is RequireInRange for types that order themselves
// through Cmp instead of the built-in operators.
func RequireInRangeComparable[T Comparer[T]](value T, name string, lower, upper T) (T, error) {
	if value.Cmp(lower) >= 0 && value.Cmp(upper) <= 0 {
		return value, nil
	}

	var zero T

	return zero, outOfRange(name, lower, upper)
}

// RequireValidRange verifies that [offset, offset+count) lies inside a
// sequence of the given length. A negative count cites countName; a negative
// offset or a range past the end cites offsetName. The end check is done as
// length-offset < count so it cannot overflow.
func RequireValidRange(length, offset, count int, offsetName, countName string) error {
	if length < 0 {
		return fail(KindOutOfRangeArgument, lengthParam, "argument %s must not be negative", lengthParam)
	}

	if count < 0 {
		return fail(KindOutOfRangeArgument, countName, "argument %s must not be negative", countName)
	}

	if offset < 0 || length-offset < count {
		return fail(KindOutOfRangeArgument, offsetName,
			"argument %s is out of range: offset %d, count %d, length %d", offsetName, offset, count, length)
	}

	return nil
}

// RequireValidSliceRange is RequireValidRange over a slice. A nil slice fails
// with KindNullArgument on the parameter "sequence" rather than on either of
// the range labels.
func RequireValidSliceRange[S ~[]E, E any](value S, offset, count int, offsetName, countName string) error {
	if value == nil {
		return fail(KindNullArgument, sequenceParam, "argument %s must not be nil", sequenceParam)
	}

	return RequireValidRange(len(value), offset, count, offsetName, countName)
}

// Must returns value when err is nil and panics with err otherwise. It suits
// package-level initialization and other places where a broken precondition
// has no caller to report to.
//
//	port := guard.Must(guard.RequireInRange(cfg.Port, "port", 1, 65535))
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}

func outOfRange(name string, lower, upper any) error {
	return fail(KindOutOfRangeArgument, name, "argument %s must be in range [%v, %v]", name, lower, upper)
}

// fail builds the error for a broken precondition after making sure the label
// it cites is usable. A blank label is reported in place of the intended
// failure.
func fail(kind Kind, name, format string, args ...any) error {
	if err := validateName(name); err != nil {
		return err
	}

	return newError(kind, name, format, args...)
}

// validateName applies the text rule to a guard's own label. It cites the
// fixed label "name" and never validates that label, so it cannot recurse.
func validateName(name string) error {
	if !isBlank(name) {
		return nil
	}

	return newError(KindEmptyArgument, nameParam, "argument %s is empty", nameParam)
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
