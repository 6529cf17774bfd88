//go:build unit

package guard

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindNullArgument, "null_argument"},
		{KindEmptyArgument, "empty_argument"},
		{KindInvalidArgument, "invalid_argument"},
		{KindOutOfRangeArgument, "out_of_range_argument"},
		{Kind(0), "unknown"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}

func TestError_UnwrapsToSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		sentinel error
	}{
		{KindNullArgument, ErrNullArgument},
		{KindEmptyArgument, ErrEmptyArgument},
		{KindInvalidArgument, ErrInvalidArgument},
		{KindOutOfRangeArgument, ErrOutOfRangeArgument},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			t.Parallel()

			err := newError(tt.kind, "x", "argument %s broke", "x")
			require.ErrorIs(t, err, tt.sentinel)

			for _, other := range tests {
				if other.kind != tt.kind {
					assert.NotErrorIs(t, err, other.sentinel)
				}
			}
		})
	}
}

func TestError_Accessors(t *testing.T) {
	t.Parallel()

	err := newError(KindOutOfRangeArgument, "port", "argument %s must be in range [%v, %v]", "port", 1, 10)

	assert.Equal(t, KindOutOfRangeArgument, err.Kind())
	assert.Equal(t, "port", err.Param())
	assert.Equal(t, "argument port must be in range [1, 10]", err.Message())
	assert.Equal(t, err.Message(), err.Error())
}

func TestError_NilReceiver(t *testing.T) {
	t.Parallel()

	var err *Error

	assert.Equal(t, Kind(0), err.Kind())
	assert.Empty(t, err.Param())
	assert.Empty(t, err.Message())
	assert.Equal(t, ErrInvalidArgument.Error(), err.Error())
	assert.NoError(t, err.Unwrap())
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()

		kind, ok := KindOf(newError(KindEmptyArgument, "x", "empty"))
		require.True(t, ok)
		assert.Equal(t, KindEmptyArgument, kind)
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("create publisher: %w", newError(KindNullArgument, "conn", "nil"))

		kind, ok := KindOf(wrapped)
		require.True(t, ok)
		assert.Equal(t, KindNullArgument, kind)

		var guardErr *Error
		require.ErrorAs(t, wrapped, &guardErr)
		assert.Equal(t, "conn", guardErr.Param())
	})

	t.Run("foreign error", func(t *testing.T) {
		t.Parallel()

		_, ok := KindOf(errors.New("boom"))
		assert.False(t, ok)
	})

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		_, ok := KindOf(nil)
		assert.False(t, ok)
	})
}
