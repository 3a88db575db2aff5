package veloxquery_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/veloxquery"
)

func TestMalformedCursorError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := veloxquery.NewMalformedCursorError("abc", "bad prefix", nil)
		assert.Equal(t, `veloxquery: malformed cursor "abc": bad prefix`, err.Error())
	})

	t.Run("ErrorWithCause", func(t *testing.T) {
		cause := errors.New("illegal base64 data at input byte 0")
		err := veloxquery.NewMalformedCursorError("!!", "not base64", cause)
		assert.Equal(t, `veloxquery: malformed cursor "!!": not base64: illegal base64 data at input byte 0`, err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Is", func(t *testing.T) {
		err := veloxquery.NewMalformedCursorError("abc", "bad prefix", nil)
		assert.True(t, errors.Is(err, veloxquery.ErrMalformedCursor))
		assert.False(t, errors.Is(err, veloxquery.ErrInvalidPagingArgs))
	})

	t.Run("IsMalformedCursor", func(t *testing.T) {
		err := veloxquery.NewMalformedCursorError("abc", "bad prefix", nil)
		assert.True(t, veloxquery.IsMalformedCursor(err))

		// Wrapped error
		wrapped := fmt.Errorf("resolving after: %w", err)
		assert.True(t, veloxquery.IsMalformedCursor(wrapped))

		// Sentinel error
		assert.True(t, veloxquery.IsMalformedCursor(veloxquery.ErrMalformedCursor))

		// Non-matching error
		assert.False(t, veloxquery.IsMalformedCursor(errors.New("other error")))
		assert.False(t, veloxquery.IsMalformedCursor(nil))
	})
}

func TestPagingArgsError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := veloxquery.NewPagingArgsError("first", "must be non-negative")
		assert.Equal(t, `veloxquery: paging argument "first": must be non-negative`, err.Error())
	})

	t.Run("ErrorWithoutArg", func(t *testing.T) {
		err := &veloxquery.PagingArgsError{Msg: "window too large"}
		assert.Equal(t, "veloxquery: paging: window too large", err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := veloxquery.NewPagingArgsError("last", "must be non-negative")
		assert.ErrorIs(t, err, veloxquery.ErrInvalidPagingArgs)
		assert.NotErrorIs(t, err, veloxquery.ErrConflictingPagingArgs)

		conflict := &veloxquery.PagingArgsError{Msg: "first and last", Err: veloxquery.ErrConflictingPagingArgs}
		assert.ErrorIs(t, conflict, veloxquery.ErrConflictingPagingArgs)
		assert.ErrorIs(t, conflict, veloxquery.ErrInvalidPagingArgs)
	})

	t.Run("IsPagingArgsError", func(t *testing.T) {
		err := veloxquery.NewPagingArgsError("first", "too large")
		assert.True(t, veloxquery.IsPagingArgsError(err))
		assert.True(t, veloxquery.IsPagingArgsError(fmt.Errorf("wrapper: %w", err)))
		assert.True(t, veloxquery.IsPagingArgsError(veloxquery.ErrConflictingPagingArgs))
		assert.False(t, veloxquery.IsPagingArgsError(veloxquery.ErrMalformedCursor))
		assert.False(t, veloxquery.IsPagingArgsError(nil))
	})
}

func TestValidationError(t *testing.T) {
	inner := errors.New("in must not be empty")
	err := veloxquery.NewValidationError("age", inner)

	assert.Equal(t, `veloxquery: validator failed for "age": in must not be empty`, err.Error())
	assert.ErrorIs(t, err, inner)
	assert.True(t, veloxquery.IsValidationError(err))
	assert.True(t, veloxquery.IsValidationError(fmt.Errorf("wrapper: %w", err)))
	assert.False(t, veloxquery.IsValidationError(inner))
	assert.False(t, veloxquery.IsValidationError(nil))
}

func TestAggregateError(t *testing.T) {
	t.Run("NoErrors", func(t *testing.T) {
		assert.NoError(t, veloxquery.NewAggregateError())
		assert.NoError(t, veloxquery.NewAggregateError(nil, nil))
	})

	t.Run("SingleError", func(t *testing.T) {
		single := errors.New("only")
		err := veloxquery.NewAggregateError(nil, single)
		assert.Same(t, single, err)
	})

	t.Run("MultipleErrors", func(t *testing.T) {
		a := veloxquery.NewValidationError("a", errors.New("bad"))
		b := veloxquery.NewPagingArgsError("first", "too large")
		err := veloxquery.NewAggregateError(a, nil, b)
		require.Error(t, err)

		var agg *veloxquery.AggregateError
		require.ErrorAs(t, err, &agg)
		assert.Len(t, agg.Errors, 2)
		assert.Contains(t, err.Error(), "veloxquery: multiple errors:")
		assert.Contains(t, err.Error(), `[1] veloxquery: validator failed for "a": bad`)
		assert.True(t, veloxquery.IsValidationError(err))
		assert.True(t, veloxquery.IsPagingArgsError(err))
	})

	t.Run("Empty", func(t *testing.T) {
		err := &veloxquery.AggregateError{}
		assert.Equal(t, "veloxquery: no errors", err.Error())
	})
}
