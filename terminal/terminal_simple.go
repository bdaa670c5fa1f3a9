package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/pkg/logging"
)

// RunHeadless evaluates one line at a time from r and writes one result line
// per input to w. Failures are written as "error: <message>" and do not stop
// the loop. It returns at "exit", "quit" or end of input.
func RunHeadless(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())

		if input == "exit" || input == "quit" {
			break
		}

		if input == "" {
			continue
		}

		out, err := Evaluate(input)
		if err != nil {
			logging.L().Debug("evaluation failed", "input", input, "err", err)
			if _, werr := fmt.Fprintf(w, "error: %s\n", err); werr != nil {
				return werr
			}
			continue
		}

		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	return errors.Wrap(scanner.Err(), "failed to read input")
}
