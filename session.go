package main

import "log"

// Interpreter owns the global environment and evaluates source text
// against it, one string at a time.
type Interpreter struct {
	env      *Env
	maxDepth int
	logger   *log.Logger
}

func NewInterpreter(configs ...Config) *Interpreter {
	in := &Interpreter{
		env:      NewEnv(),
		maxDepth: DefaultMaxDepth,
		logger:   discardLogger(),
	}
	for _, c := range configs {
		c(in)
	}
	return in
}

// Env returns the global environment.
func (in *Interpreter) Env() *Env {
	return in.env
}

// EvalString reads every expression in src and evaluates them in order,
// returning the value of the last one. Evaluation stops at the first error;
// bindings made by earlier expressions stay in place.
func (in *Interpreter) EvalString(src string) (Value, error) {
	exprs, err := parseAll(src, in.maxDepth)
	if err != nil {
		in.logger.Printf("read failed: %v", err)
		return nil, err
	}

	var val Value = Unspecified{}
	for _, expr := range exprs {
		val, err = in.EvalExpr(expr)
		if err != nil {
			return nil, err
		}
	}
	return val, nil
}

// EvalExpr evaluates one parsed expression against the global environment.
func (in *Interpreter) EvalExpr(expr Expr) (Value, error) {
	ev := &evaluator{maxDepth: in.maxDepth}
	val, err := ev.eval(expr, in.env)
	if err != nil {
		in.logger.Printf("eval %s failed: %v", Print(datum(expr)), err)
		return nil, err
	}
	in.logger.Printf("eval %s => %s", Print(datum(expr)), Print(val))
	return val, nil
}
