package math

import (
	"encoding/json"
	"math/big"
	"strings"
)

const maxInt = int64(^uint(0) >> 1)

// Factorial calculates n! for a non-negative n.
// The product is accumulated in ascending order starting from 1, so Factorial(0) is 1.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, valueError(msgNegative)
	}

	result := big.NewInt(1)
	factor := new(big.Int)
	for i := 1; i <= n; i++ {
		result.Mul(result, factor.SetInt64(int64(i)))
	}

	return result, nil
}

// FactorialOf is Factorial for loosely typed callers. Only Go integer types,
// *big.Int and integer json.Number literals are accepted; floats (even 3.0),
// strings, bools and nil fail with a KindType error.
func FactorialOf(v any) (*big.Int, error) {
	n, err := ToInt(v)
	if err != nil {
		return nil, err
	}
	return Factorial(n)
}

// ToInt applies the same type and sign checks as FactorialOf and returns the
// value as an int.
func ToInt(v any) (int, error) {
	switch x := v.(type) {
	case int:
		return checkInt64(int64(x))
	case int8:
		return checkInt64(int64(x))
	case int16:
		return checkInt64(int64(x))
	case int32:
		return checkInt64(int64(x))
	case int64:
		return checkInt64(x)
	case uint:
		return checkUint64(uint64(x))
	case uint8:
		return checkUint64(uint64(x))
	case uint16:
		return checkUint64(uint64(x))
	case uint32:
		return checkUint64(uint64(x))
	case uint64:
		return checkUint64(x)
	case *big.Int:
		if x == nil {
			return 0, typeError()
		}
		return checkBig(x)
	case json.Number:
		return checkNumber(x)
	default:
		return 0, typeError()
	}
}

func checkInt64(n int64) (int, error) {
	if n < 0 {
		return 0, valueError(msgNegative)
	}
	if n > maxInt {
		return 0, valueError(msgOutOfRange)
	}
	return int(n), nil
}

func checkUint64(n uint64) (int, error) {
	if n > uint64(maxInt) {
		return 0, valueError(msgOutOfRange)
	}
	return int(n), nil
}

func checkBig(x *big.Int) (int, error) {
	if x.Sign() < 0 {
		return 0, valueError(msgNegative)
	}
	if !x.IsInt64() {
		return 0, valueError(msgOutOfRange)
	}
	return checkInt64(x.Int64())
}

// checkNumber accepts only integer literals: a fraction or exponent makes the
// literal a float in JSON terms, whatever its value.
func checkNumber(num json.Number) (int, error) {
	s := num.String()
	if s == "" || strings.ContainsAny(s, ".eE") {
		return 0, typeError()
	}
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, typeError()
	}
	return checkBig(x)
}
