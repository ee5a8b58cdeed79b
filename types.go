package main

import "github.com/shopspring/decimal"

// Expr is a node of the syntax tree built by the reader.
// Implemented by Number, String, Symbol, Boolean, Form and Quoted.
type Expr interface {
	exprNode()
}

// Value is the result of evaluation.
// Implemented by Number, String, Symbol, Boolean, List, *Procedure, *Native
// and Unspecified.
type Value interface {
	valueNode()
}

// Number is an exact decimal.
type Number struct {
	decimal.Decimal
}

// String keeps its delimiting quote characters.
type String string

type Symbol string

// Form is a parenthesized expression: a call or a special form.
type Form []Expr

// Quoted wraps an expression whose evaluation is suppressed once.
type Quoted struct {
	Expr Expr
}

type Boolean bool

// List is a list value, produced by quotation and the list procedures.
type List []Value

// Unspecified is returned by define, set! and a cond without a match.
type Unspecified struct{}

// Procedure is a closure. Its environment is a snapshot taken when the
// procedure was created.
type Procedure struct {
	Name   Symbol
	Params []Symbol
	Body   Expr
	Env    *Env
}

// Native is a built-in procedure. MaxArgs of -1 means variadic.
type Native struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      func(args []Value) (Value, error)
}

func (Number) exprNode() {}
func (String) exprNode() {}
func (Symbol) exprNode() {}
func (Form) exprNode()   {}
func (Quoted) exprNode() {}
func (Boolean) exprNode() {}

func (Number) valueNode()      {}
func (String) valueNode()      {}
func (Symbol) valueNode()      {}
func (Boolean) valueNode()     {}
func (List) valueNode()        {}
func (Unspecified) valueNode() {}
func (*Procedure) valueNode()  {}
func (*Native) valueNode()     {}

// typeName names the runtime type of v for error messages.
func typeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Symbol:
		return "symbol"
	case Boolean:
		return "boolean"
	case List:
		return "list"
	case Unspecified:
		return "unspecified"
	case *Procedure, *Native:
		return "procedure"
	default:
		return "unknown"
	}
}

// datum converts an unevaluated expression into the value it denotes when
// quoted.
func datum(e Expr) Value {
	switch t := e.(type) {
	case Number:
		return t
	case String:
		return t
	case Symbol:
		return t
	case Boolean:
		return t
	case Quoted:
		return List{Symbol("quote"), datum(t.Expr)}
	case Form:
		l := make(List, len(t))
		for i, sub := range t {
			l[i] = datum(sub)
		}
		return l
	default:
		return Unspecified{}
	}
}
