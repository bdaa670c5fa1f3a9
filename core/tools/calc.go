package tools

import (
	"go/ast"
	"go/parser"
	"go/token"
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factorial/math"
)

// calc evaluates an arithmetic expression such as "2+factorial(5)*3".
// Supported: +, -, *, /, unary minus, parentheses, and factorial(x) / fact(x).
// Arithmetic is exact. Integer literals combined with +, - and * stay
// integers; float literals and division produce non-integer values, which
// factorial rejects.
func calc(args map[string]interface{}) (string, error) {
	expr, ok := args["expr"].(string)
	if !ok {
		expr, ok = args["expression"].(string)
	}

	if !ok || strings.TrimSpace(expr) == "" {
		return "", errors.New("parameter 'expr' or 'expression' must be a non-empty string")
	}

	astExpr, err := parser.ParseExpr(expr)
	if err != nil {
		return "", errors.Wrap(err, "expression parse error")
	}

	val, err := evalAST(astExpr)
	if err != nil {
		return "", err
	}

	return val.String(), nil
}

type calcValue struct {
	rat   *big.Rat
	isInt bool
}

func intValue(n *big.Int) calcValue {
	return calcValue{rat: new(big.Rat).SetInt(n), isInt: true}
}

// operand hands the value to math.ToInt with the Go type matching its kind.
func (v calcValue) operand() any {
	if v.isInt {
		return new(big.Int).Set(v.rat.Num())
	}
	f, _ := v.rat.Float64()
	return f
}

func (v calcValue) String() string {
	if v.rat.IsInt() {
		return v.rat.Num().String()
	}
	f, _ := v.rat.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

//nolint:gocyclo
func evalAST(expr ast.Expr) (calcValue, error) {
	switch n := expr.(type) {
	case *ast.BasicLit:
		switch n.Kind {
		case token.INT:
			i, ok := new(big.Int).SetString(n.Value, 0)
			if !ok {
				return calcValue{}, errors.Errorf("invalid integer literal: %s", n.Value)
			}
			return intValue(i), nil
		case token.FLOAT:
			r, ok := new(big.Rat).SetString(n.Value)
			if !ok {
				return calcValue{}, errors.Errorf("invalid float literal: %s", n.Value)
			}
			return calcValue{rat: r}, nil
		default:
			return calcValue{}, errors.Errorf("unsupported literal: %s", n.Value)
		}

	case *ast.BinaryExpr:
		left, err := evalAST(n.X)
		if err != nil {
			return calcValue{}, err
		}
		right, err := evalAST(n.Y)
		if err != nil {
			return calcValue{}, err
		}

		res := calcValue{rat: new(big.Rat), isInt: left.isInt && right.isInt}
		switch n.Op {
		case token.ADD:
			res.rat.Add(left.rat, right.rat)
		case token.SUB:
			res.rat.Sub(left.rat, right.rat)
		case token.MUL:
			res.rat.Mul(left.rat, right.rat)
		case token.QUO:
			if right.rat.Sign() == 0 {
				return calcValue{}, errors.New("division by zero")
			}
			res.rat.Quo(left.rat, right.rat)
			res.isInt = false
		default:
			return calcValue{}, errors.Errorf("unsupported operator: %s", n.Op.String())
		}
		return res, nil

	case *ast.UnaryExpr:
		x, err := evalAST(n.X)
		if err != nil {
			return calcValue{}, err
		}
		switch n.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return calcValue{rat: new(big.Rat).Neg(x.rat), isInt: x.isInt}, nil
		default:
			return calcValue{}, errors.Errorf("unsupported operator: %s", n.Op.String())
		}

	case *ast.ParenExpr:
		return evalAST(n.X)

	case *ast.CallExpr:
		return evalCall(n)

	default:
		return calcValue{}, errors.Errorf("unsupported expression: %T", n)
	}
}

func evalCall(call *ast.CallExpr) (calcValue, error) {
	fn, ok := call.Fun.(*ast.Ident)
	if !ok || (fn.Name != "factorial" && fn.Name != "fact") {
		return calcValue{}, errors.New("unsupported function call")
	}
	if len(call.Args) != 1 || call.Ellipsis.IsValid() {
		return calcValue{}, errors.Errorf("%s takes exactly one argument", fn.Name)
	}

	arg, err := evalAST(call.Args[0])
	if err != nil {
		return calcValue{}, err
	}

	n, err := ValidateInput(arg.operand())
	if err != nil {
		return calcValue{}, err
	}

	v, err := math.Factorial(n)
	if err != nil {
		return calcValue{}, err
	}

	return intValue(v), nil
}
