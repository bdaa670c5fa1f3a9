package ui

import (
	"bytes"
	"math/big"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/factorial/math"
)

func TestWriteResult(t *testing.T) {
	r := Result{N: 20, Value: "2432902008176640000"}

	tests := []struct {
		format string
		want   string
	}{
		{"text", "2432902008176640000\n"},
		{"", "2432902008176640000\n"},
		{"json", "{\n  \"n\": 20,\n  \"value\": \"2432902008176640000\"\n}\n"},
		{"yaml", "n: 20\nvalue: \"2432902008176640000\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteResult(&buf, tc.format, r))
			require.Equal(t, tc.want, buf.String())
		})
	}
}

func TestWriteResultInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResult(&buf, "xml", Result{})
	require.EqualError(t, err, `invalid format "xml": must be 'text', 'json', or 'yaml'`)
	require.Empty(t, buf.String())
}

func TestWriteTable(t *testing.T) {
	rs := NewResults([]math.Entry{
		{N: 0, Value: big.NewInt(1)},
		{N: 3, Value: big.NewInt(6)},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, "text", rs))
	require.Equal(t, "0! = 1\n3! = 6\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTable(&buf, "json", rs))
	require.JSONEq(t, `[{"n":0,"value":"1"},{"n":3,"value":"6"}]`, buf.String())

	buf.Reset()
	require.NoError(t, WriteTable(&buf, "yaml", rs))
	require.Equal(t, "- n: 0\n  value: \"1\"\n- n: 3\n  value: \"6\"\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTable(&buf, "json", nil))
	require.JSONEq(t, `[]`, buf.String())

	require.Error(t, WriteTable(&buf, "csv", rs))
}

func TestFormatToolOutputPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	require.Equal(t, "120\n", FormatToolOutput("120"))
	require.Equal(t, "4! = 24\n5! = 120\n", FormatToolOutput("4! = 24\n5! = 120"))
	require.Equal(t, "❌ boom", Error("boom"))
}

func TestFormatToolOutputColored(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("colors are disabled on windows")
	}
	t.Setenv("NO_COLOR", "")
	require.NoError(t, os.Unsetenv("NO_COLOR"))

	out := FormatToolOutput("4! = 24\n120")
	require.Equal(t,
		colorBrightPurple+"4! ="+colorReset+" "+colorBrightGreen+"24"+colorReset+"\n"+
			colorBold+colorBrightWhite+"120"+colorReset+colorReset+"\n",
		out)
}

func TestMessageShortcuts(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	require.Equal(t, "⚠️  stale config", Warning("stale config"))
	require.Equal(t, "✅ done", Success("done"))
	require.Equal(t, "x", Bold("x"))
	require.Equal(t, "x", BrightPurple("x"))
}

func TestColorize(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	require.Equal(t, "x", Colorize("x", colorBold))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestSpinnerStartStop(t *testing.T) {
	var buf bytes.Buffer

	s := NewSpinner("20!")
	s.out = &buf
	s.interval = 5 * time.Millisecond

	s.Start()
	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.UpdateMessage("21!")
	time.Sleep(30 * time.Millisecond)
	s.Stop()
	s.Stop()

	require.Contains(t, buf.String(), "computing...")
	require.Contains(t, buf.String(), "21!")
	require.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\r\033[K")))
}
