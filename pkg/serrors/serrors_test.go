package serrors_test

import (
	"cartscan/pkg/serrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrConfiguration,
		serrors.ErrAuthentication,
		serrors.ErrSearch,
		serrors.ErrNotFound,
		serrors.ErrResolution,
		serrors.ErrCartMutation,
		serrors.ErrUnauthorized,
		serrors.ErrBadRequest,
		serrors.ErrConflict,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "no products found for %q", "milk")
	require.Equal(t, `no products found for "milk"`, e1.Error(), "With() Error() mismatch")

	e2 := serrors.Wrap(serrors.ErrSearch, base, "catalog search failed")
	require.Equal(t, "catalog search failed: connection refused", e2.Error(), "Wrap() Error() mismatch")
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrCartMutation, base, "adding product")

	require.ErrorIs(t, e, serrors.ErrCartMutation)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrAuthentication, "errors.Is should not match a different kind")
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrResolution, base, "selecting candidate")

	var k serrors.Kind
	require.ErrorAs(t, e, &k, "errors.As should extract Kind")
	require.Equal(t, serrors.ErrResolution, k)

	var ce *customError
	require.ErrorAs(t, e, &ce, "errors.As should extract wrapped error type")
	require.Equal(t, base, ce, "extracted cause pointer mismatch")
}

func TestDetails(t *testing.T) {
	e := serrors.With(serrors.ErrSearch, "catalog search failed").
		Detail("searchTerm", "oat milk")

	require.Equal(t, map[string]any{"searchTerm": "oat milk"}, e.Details())
	require.Equal(t, serrors.ErrSearch, e.Kind())
	require.Equal(t, "catalog search failed", e.Message())

	var none *serrors.Error
	require.Nil(t, none.Details(), "nil error has no details")
}
