package serrors_test

import (
	"errors"
	"testing"

	"airhhi/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type rootCause struct{ msg string }

func (e rootCause) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNotFound,
		serrors.ErrBadInput,
		serrors.ErrConfig,
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
	base := errors.New("unreadable header")

	e1 := serrors.With(serrors.ErrNotFound, "slot file for %s not found", "TXL")
	require.Equal(t, "slot file for TXL not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrBadInput, base, "reading schedule")
	require.Equal(t, "reading schedule: unreadable header", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrConfig)
	require.Equal(t, "CONFIG", e3.Error())
}

func TestIsMatchesKindAndCause(t *testing.T) {
	base := rootCause{"empty file"}
	e := serrors.Wrap(serrors.ErrBadInput, base, "loading slots")

	require.ErrorIs(t, e, serrors.ErrBadInput)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrConfig, "errors.Is should not match a different kind")
}

func TestAsMatchesCause(t *testing.T) {
	base := rootCause{"boom"}
	e := serrors.Wrap(serrors.ErrInternal, base, "aggregating")

	var got rootCause
	require.ErrorAs(t, e, &got)
	require.Equal(t, "boom", got.msg)
}

func TestKindAccessors(t *testing.T) {
	e := serrors.With(serrors.ErrConfig, "no focus airports configured")
	require.Equal(t, serrors.ErrConfig, e.Kind())
	require.Equal(t, "no focus airports configured", e.Message())
	require.Nil(t, errors.Unwrap(e))
}
