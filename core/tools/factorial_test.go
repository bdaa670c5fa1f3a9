package tools

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/factorial/math"
)

func withMaxInput(t *testing.T, n int) {
	prev := MaxInput()
	SetMaxInput(n)
	t.Cleanup(func() { SetMaxInput(prev) })
}

func TestFactorialTool(t *testing.T) {
	tests := []struct {
		name string
		n    interface{}
		want string
	}{
		{"int", 5, "120"},
		{"zero", 0, "1"},
		{"json number", json.Number("20"), "2432902008176640000"},
		{"big int", big.NewInt(21), "51090942171709440000"},
		{"parsed literal", ParseLiteral("10"), "3628800"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Execute("factorial", map[string]interface{}{"n": tc.n})
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFactorialToolErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		message string
		kind    math.Kind
	}{
		{"float", map[string]interface{}{"n": 3.0}, "Input must be an integer", math.KindType},
		{"string", map[string]interface{}{"n": "3"}, "Input must be an integer", math.KindType},
		{"json float", map[string]interface{}{"n": json.Number("3.0")}, "Input must be an integer", math.KindType},
		{"missing", map[string]interface{}{}, "Input must be an integer", math.KindType},
		{"negative", map[string]interface{}{"n": -1}, "Input must be non-negative", math.KindValue},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Execute("factorial", tc.args)
			require.EqualError(t, err, tc.message)

			kind, ok := math.KindOf(err)
			require.True(t, ok)
			require.Equal(t, tc.kind, kind)
		})
	}
}

func TestFactorialToolLimit(t *testing.T) {
	withMaxInput(t, 50)

	_, err := Execute("factorial", map[string]interface{}{"n": 51})
	require.EqualError(t, err, "Input exceeds limit 50")
	require.ErrorIs(t, err, math.ErrValue)

	got, err := Execute("factorial", map[string]interface{}{"n": 50})
	require.NoError(t, err)
	require.Len(t, got, 65)

	SetMaxInput(0)
	_, err = Execute("factorial", map[string]interface{}{"n": 51})
	require.NoError(t, err)
}

func TestFactorialTableTool(t *testing.T) {
	got, err := Execute("factorial_table", map[string]interface{}{"from": 3, "to": 6})
	require.NoError(t, err)
	require.Equal(t, "3! = 6\n4! = 24\n5! = 120\n6! = 720", got)

	got, err = Execute("factorial_table", map[string]interface{}{"from": json.Number("0"), "to": json.Number("0")})
	require.NoError(t, err)
	require.Equal(t, "0! = 1", got)
}

func TestFactorialTableToolErrors(t *testing.T) {
	_, err := Execute("factorial_table", map[string]interface{}{"from": 5, "to": 2})
	require.EqualError(t, err, "from (5) must not exceed to (2)")

	_, err = Execute("factorial_table", map[string]interface{}{"from": 1.5, "to": 2})
	require.EqualError(t, err, "Input must be an integer")

	_, err = Execute("factorial_table", map[string]interface{}{"from": -2, "to": 2})
	require.EqualError(t, err, "Input must be non-negative")
}

func TestFactorialTableToolSpanLimit(t *testing.T) {
	withMaxInput(t, 0)

	tests := []struct {
		name     string
		from, to interface{}
	}{
		{"max int without ceiling", 0, ParseLiteral("9223372036854775807")},
		{"default ceiling span", 0, 100000},
		{"one row too many", 10, 10 + math.MaxTableRows},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Execute("factorial_table", map[string]interface{}{"from": tc.from, "to": tc.to})
			require.EqualError(t, err, fmt.Sprintf("Table exceeds %d rows", math.MaxTableRows))
			require.ErrorIs(t, err, math.ErrValue)
		})
	}

	got, err := Execute("factorial_table", map[string]interface{}{"from": 1, "to": math.MaxTableRows})
	require.NoError(t, err)
	require.Len(t, strings.Split(got, "\n"), math.MaxTableRows)
}
