package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-session-state/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, "x", utils.Value(utils.Ptr("x")))
}

func TestCopyPtr(t *testing.T) {
	require.Nil(t, utils.CopyPtr[int](nil))

	orig := utils.Ptr(7)
	c := utils.CopyPtr(orig)
	require.Equal(t, 7, *c)
	*c = 8
	require.Equal(t, 7, *orig)
}

func TestToStringSlice(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, utils.ToStringSlice([]any{"a", 1, "b", nil}))
	require.Empty(t, utils.ToStringSlice(nil))
}

func TestStringFrom(t *testing.T) {
	m := map[string]any{"id": "t1", "n": 2}
	require.Equal(t, "t1", utils.StringFrom(m, "id"))
	require.Equal(t, "", utils.StringFrom(m, "n"))
	require.Equal(t, "", utils.StringFrom(m, "missing"))
}
