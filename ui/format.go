package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/vadiminshakov/factorial/math"
)

// Result is a computed factorial ready for output. Value is kept as a decimal
// string so JSON consumers do not lose precision.
type Result struct {
	N     int    `json:"n" yaml:"n"`
	Value string `json:"value" yaml:"value"`
}

// NewResults converts table entries to results.
func NewResults(entries []math.Entry) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		results[i] = Result{N: e.N, Value: e.Value.String()}
	}
	return results
}

// WriteResult writes a single result: the bare value for text, an object for json and yaml.
func WriteResult(w io.Writer, format string, r Result) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprintln(w, r.Value)
		return err
	case "json":
		return writeJSON(w, r)
	case "yaml":
		return writeYAML(w, r)
	default:
		return invalidFormat(format)
	}
}

// WriteTable writes results as "n! = value" lines for text, or a list for json and yaml.
func WriteTable(w io.Writer, format string, rs []Result) error {
	switch format {
	case "text", "":
		for _, r := range rs {
			if _, err := fmt.Fprintf(w, "%d! = %s\n", r.N, r.Value); err != nil {
				return err
			}
		}
		return nil
	case "json":
		if rs == nil {
			rs = []Result{}
		}
		return writeJSON(w, rs)
	case "yaml":
		return writeYAML(w, rs)
	default:
		return invalidFormat(format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(v), "failed to encode json")
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	return enc.Close()
}

func invalidFormat(format string) error {
	return errors.Errorf("invalid format %q: must be 'text', 'json', or 'yaml'", format)
}

// FormatToolOutput colors a tool result for the terminal. Table rows get a
// purple "n! =" label and a green value; other lines are bold.
func FormatToolOutput(out string) string {
	var b strings.Builder
	for _, line := range strings.Split(out, "\n") {
		if label, value, ok := strings.Cut(line, " = "); ok {
			b.WriteString(BrightPurple(label + " ="))
			b.WriteString(" ")
			b.WriteString(BrightGreen(value))
		} else {
			b.WriteString(Bold(BrightWhite(line)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
