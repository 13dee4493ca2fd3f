package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junioryono/beca/fault"
)

// AssertKind checks err is classified as kind.
func AssertKind(t testing.TB, err error, kind fault.Kind, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	actual, ok := fault.KindOf(err)
	require.True(t, ok, "expected a classified error, got: %v", err)
	assert.Equal(t, kind, actual, msgAndArgs...)
}

// AssertUnclassified checks err carries no kind.
func AssertUnclassified(t testing.TB, err error, msgAndArgs ...any) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
	_, ok := fault.KindOf(err)
	assert.False(t, ok, "expected a raw error, got kind for: %v", err)
}
