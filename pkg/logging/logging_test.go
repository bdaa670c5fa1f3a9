package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLevelAndOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		require.NoError(t, SetLevel("info"))
	})

	require.NoError(t, SetLevel("warn"))
	L().Info("hidden")
	require.Empty(t, buf.String())

	L().Warn("computed", "n", 5)
	require.Contains(t, buf.String(), "computed")
	require.Contains(t, buf.String(), "n=5")

	require.NoError(t, SetLevel("debug"))
	SetOutput(&buf)
	L().Debug("still debug")
	require.Contains(t, buf.String(), "still debug")
}

func TestSetLevelInvalid(t *testing.T) {
	require.Error(t, SetLevel("loud"))
}
