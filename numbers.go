package main

import (
	"math"

	"github.com/shopspring/decimal"
)

func num(d decimal.Decimal) Number {
	return Number{d}
}

func numFromInt(i int) Number {
	return Number{decimal.NewFromInt(int64(i))}
}

func toNumber(name string, v Value) (Number, error) {
	n, isNum := v.(Number)
	if !isNum {
		return Number{}, errorf(TypeMismatch, "%s expects a number, got %s %s", name, typeName(v), Print(v))
	}
	return n, nil
}

// agg left-folds args with accum: (- a b c) is (a - b) - c.
func agg(name string, args []Value, accum func(r, x decimal.Decimal) (decimal.Decimal, error)) (Value, error) {
	first, err := toNumber(name, args[0])
	if err != nil {
		return nil, err
	}

	ret := first.Decimal
	for _, arg := range args[1:] {
		x, err := toNumber(name, arg)
		if err != nil {
			return nil, err
		}
		ret, err = accum(ret, x.Decimal)
		if err != nil {
			return nil, err
		}
	}
	return num(ret), nil
}

func add(args []Value) (Value, error) {
	return agg("+", args, func(r, x decimal.Decimal) (decimal.Decimal, error) {
		return r.Add(x), nil
	})
}

func sub(args []Value) (Value, error) {
	return agg("-", args, func(r, x decimal.Decimal) (decimal.Decimal, error) {
		return r.Sub(x), nil
	})
}

func mul(args []Value) (Value, error) {
	return agg("*", args, func(r, x decimal.Decimal) (decimal.Decimal, error) {
		return r.Mul(x), nil
	})
}

func div(args []Value) (Value, error) {
	return agg("/", args, func(r, x decimal.Decimal) (decimal.Decimal, error) {
		if x.IsZero() {
			return decimal.Decimal{}, errorf(DivisionByZero, "%s / %s", r, x)
		}
		return r.Div(x), nil
	})
}

// order compares the first operand against every later operand. It does
// not compare neighbours: (< 1 3 2) holds because 1 < 3 and 1 < 2.
func order(name string, args []Value, holds func(cmp int) bool) (Value, error) {
	first, err := toNumber(name, args[0])
	if err != nil {
		return nil, err
	}

	result := true
	for _, arg := range args[1:] {
		x, err := toNumber(name, arg)
		if err != nil {
			return nil, err
		}
		if !holds(first.Cmp(x.Decimal)) {
			result = false
		}
	}
	return Boolean(result), nil
}

func eq(args []Value) (Value, error) {
	return order("=", args, func(cmp int) bool { return cmp == 0 })
}

func lt(args []Value) (Value, error) {
	return order("<", args, func(cmp int) bool { return cmp < 0 })
}

func gt(args []Value) (Value, error) {
	return order(">", args, func(cmp int) bool { return cmp > 0 })
}

func lte(args []Value) (Value, error) {
	return order("<=", args, func(cmp int) bool { return cmp <= 0 })
}

func gte(args []Value) (Value, error) {
	return order(">=", args, func(cmp int) bool { return cmp >= 0 })
}

func extremum(name string, args []Value, better func(cmp int) bool) (Value, error) {
	best, err := toNumber(name, args[0])
	if err != nil {
		return nil, err
	}
	for _, arg := range args[1:] {
		x, err := toNumber(name, arg)
		if err != nil {
			return nil, err
		}
		if better(x.Cmp(best.Decimal)) {
			best = x
		}
	}
	return best, nil
}

func abs(args []Value) (Value, error) {
	n, err := toNumber("abs", args[0])
	if err != nil {
		return nil, err
	}
	return num(n.Abs()), nil
}

func round(args []Value) (Value, error) {
	n, err := toNumber("round", args[0])
	if err != nil {
		return nil, err
	}
	return num(n.Round(0)), nil
}

// inexact lifts a float64 function onto numbers. Exact decimals have no
// transcendental operations, so the result carries float64 precision.
func inexact(name string, fn func(float64) float64) func(args []Value) (Value, error) {
	return func(args []Value) (Value, error) {
		n, err := toNumber(name, args[0])
		if err != nil {
			return nil, err
		}
		f := fn(n.InexactFloat64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, errorf(TypeMismatch, "%s is undefined for %s", name, n)
		}
		return num(decimal.NewFromFloat(f)), nil
	}
}
