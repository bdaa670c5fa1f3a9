package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/math"
)

// factorialTool computes n! for args["n"]. A missing n is nil and fails the
// integer check like any other non-integer value.
func factorialTool(args map[string]interface{}) (string, error) {
	n, err := ValidateInput(args["n"])
	if err != nil {
		return "", err
	}

	v, err := math.Factorial(n)
	if err != nil {
		return "", err
	}

	return v.String(), nil
}

// factorialTable renders from! .. to! one per line.
func factorialTable(args map[string]interface{}) (string, error) {
	from, err := ValidateInput(args["from"])
	if err != nil {
		return "", err
	}
	to, err := ValidateInput(args["to"])
	if err != nil {
		return "", err
	}
	if from > to {
		return "", errors.Errorf("from (%d) must not exceed to (%d)", from, to)
	}

	ns, err := math.Range(from, to)
	if err != nil {
		return "", err
	}

	entries, err := math.Table(context.Background(), ns, Workers())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d! = %d", e.N, e.Value)
	}

	return b.String(), nil
}

// ValidateInput applies the type and sign checks of math.FactorialOf plus the
// MaxInput ceiling.
func ValidateInput(v any) (int, error) {
	n, err := math.ToInt(v)
	if err != nil {
		return 0, err
	}

	if limit := MaxInput(); limit > 0 && n > limit {
		return 0, &math.Error{
			Kind:    math.KindValue,
			Message: fmt.Sprintf("Input exceeds limit %d", limit),
		}
	}

	return n, nil
}
