package main

import (
	"math"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// stdlib is built once and copied into every new global environment.
var stdlib = builtins()

func builtins() map[Symbol]Value {
	env := map[Symbol]Value{
		Symbol("pi"): num(decimal.NewFromFloat(math.Pi)),
	}

	natives := []*Native{
		variadic("+", 1, add),
		variadic("-", 1, sub),
		variadic("*", 1, mul),
		variadic("/", 1, div),
		fixed("abs", 1, abs),
		fixed("sqrt", 1, inexact("sqrt", math.Sqrt)),
		fixed("sin", 1, inexact("sin", math.Sin)),
		fixed("cos", 1, inexact("cos", math.Cos)),
		fixed("tan", 1, inexact("tan", math.Tan)),
		fixed("round", 1, round),
		variadic("max", 1, func(args []Value) (Value, error) {
			return extremum("max", args, func(cmp int) bool { return cmp > 0 })
		}),
		variadic("min", 1, func(args []Value) (Value, error) {
			return extremum("min", args, func(cmp int) bool { return cmp < 0 })
		}),

		variadic("=", 1, eq),
		variadic("<", 1, lt),
		variadic(">", 1, gt),
		variadic("<=", 1, lte),
		variadic(">=", 1, gte),

		fixed("number?", 1, isType(func(v Value) bool { _, ok := v.(Number); return ok })),
		fixed("string?", 1, isType(func(v Value) bool { _, ok := v.(String); return ok })),
		fixed("list?", 1, isType(func(v Value) bool { _, ok := v.(List); return ok })),
		fixed("boolean?", 1, isType(func(v Value) bool { _, ok := v.(Boolean); return ok })),
		fixed("symbol?", 1, isType(func(v Value) bool { _, ok := v.(Symbol); return ok })),
		fixed("procedure?", 1, isType(func(v Value) bool {
			switch v.(type) {
			case *Procedure, *Native:
				return true
			}
			return false
		})),
		fixed("null?", 1, isType(func(v Value) bool { l, ok := v.(List); return ok && len(l) == 0 })),
		fixed("equal?", 2, func(args []Value) (Value, error) {
			return Boolean(Equals(args[0], args[1])), nil
		}),
		fixed("not", 1, func(args []Value) (Value, error) {
			b, isBoolean := args[0].(Boolean)
			return Boolean(isBoolean && !bool(b)), nil
		}),
		fixed("display", 1, func(args []Value) (Value, error) {
			return args[0], nil
		}),

		variadic("list", 0, list),
		fixed("length", 1, length),
		fixed("cons", 2, cons),
		fixed("car", 1, car),
		fixed("cdr", 1, cdr),
		fixed("append", 2, appendList),
		fixed("string-length", 1, stringLength),
	}
	for _, n := range natives {
		env[Symbol(n.Name)] = n
	}
	return env
}

func fixed(name string, arity int, fn func(args []Value) (Value, error)) *Native {
	return &Native{Name: name, MinArgs: arity, MaxArgs: arity, Fn: fn}
}

func variadic(name string, minArgs int, fn func(args []Value) (Value, error)) *Native {
	return &Native{Name: name, MinArgs: minArgs, MaxArgs: -1, Fn: fn}
}

func isType(pred func(Value) bool) func(args []Value) (Value, error) {
	return func(args []Value) (Value, error) {
		return Boolean(pred(args[0])), nil
	}
}

func toList(name string, v Value) (List, error) {
	l, isList := v.(List)
	if !isList {
		return nil, errorf(TypeMismatch, "%s expects a list, got %s %s", name, typeName(v), Print(v))
	}
	return l, nil
}

func list(args []Value) (Value, error) {
	l := make(List, len(args))
	copy(l, args)
	return l, nil
}

func length(args []Value) (Value, error) {
	l, err := toList("length", args[0])
	if err != nil {
		return nil, err
	}
	return numFromInt(len(l)), nil
}

// cons pairs two values as a two-element list. There are no dotted pairs.
func cons(args []Value) (Value, error) {
	return List{args[0], args[1]}, nil
}

func car(args []Value) (Value, error) {
	l, err := toList("car", args[0])
	if err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, errorf(EmptyListAccess, "car of empty list")
	}
	return l[0], nil
}

func cdr(args []Value) (Value, error) {
	l, err := toList("cdr", args[0])
	if err != nil {
		return nil, err
	}
	if len(l) == 0 {
		return nil, errorf(EmptyListAccess, "cdr of empty list")
	}
	rest := make(List, len(l)-1)
	copy(rest, l[1:])
	return rest, nil
}

// appendList adds the second argument as one trailing element, even when it
// is itself a list.
func appendList(args []Value) (Value, error) {
	l, err := toList("append", args[0])
	if err != nil {
		return nil, err
	}
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, args[1]), nil
}

func stringLength(args []Value) (Value, error) {
	s, isString := args[0].(String)
	if !isString {
		return nil, errorf(TypeMismatch, "string-length expects a string, got %s %s", typeName(args[0]), Print(args[0]))
	}
	n := utf8.RuneCountInString(string(s)) - 2
	if n < 0 {
		n = 0
	}
	return numFromInt(n), nil
}
