package tools

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
)

const (
	DefaultMaxInput = 100000
	DefaultWorkers  = 4
)

var (
	maxInput atomic.Int64
	workers  atomic.Int64
)

func init() {
	maxInput.Store(DefaultMaxInput)
	workers.Store(DefaultWorkers)
}

// SetMaxInput sets the largest n the factorial tools accept. Zero disables the ceiling.
func SetMaxInput(n int) {
	maxInput.Store(int64(n))
}

func MaxInput() int {
	return int(maxInput.Load())
}

// SetWorkers sets the goroutine limit used by factorial_table.
func SetWorkers(n int) {
	workers.Store(int64(n))
}

func Workers() int {
	return int(workers.Load())
}

// ParseLiteral converts a token typed by a user into a typed value:
// integer literals become *big.Int, float literals float64, anything else
// stays a string.
func ParseLiteral(s string) any {
	s = strings.TrimSpace(s)
	if isIntegerLiteral(s) {
		if n, ok := new(big.Int).SetString(s, 10); ok {
			return n
		}
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func isIntegerLiteral(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DecodeArgs decodes a JSON object of tool arguments. Numbers are kept as
// json.Number so that 3 and 3.0 remain distinguishable.
func DecodeArgs(data []byte) (map[string]interface{}, error) {
	args := map[string]interface{}{}
	if len(bytes.TrimSpace(data)) == 0 {
		return args, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&args); err != nil {
		return nil, errors.Wrap(err, "invalid tool arguments")
	}
	if args == nil {
		args = map[string]interface{}{}
	}

	return args, nil
}
