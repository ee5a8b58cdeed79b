package main

import (
	"strconv"
)

// specialForms are checked before the environment, so they cannot be
// shadowed by a binding of the same name.
var specialForms map[Symbol]func(ev *evaluator, args []Expr, env *Env) (Value, error)

func init() {
	specialForms = map[Symbol]func(ev *evaluator, args []Expr, env *Env) (Value, error){
		Symbol("quote"):  quote,
		Symbol("if"):     ifForm,
		Symbol("cond"):   cond,
		Symbol("define"): define,
		Symbol("lambda"): lambda,
		Symbol("let"):    let,
		Symbol("set!"):   set,
		Symbol("and"):    and,
		Symbol("or"):     or,
	}
}

// evaluator carries the recursion bound for one top-level evaluation.
type evaluator struct {
	depth    int
	maxDepth int
}

// Eval evaluates an expression in env with the default depth limit.
func Eval(expr Expr, env *Env) (Value, error) {
	ev := &evaluator{maxDepth: DefaultMaxDepth}
	return ev.eval(expr, env)
}

func (ev *evaluator) eval(expr Expr, env *Env) (Value, error) {
	if ev.maxDepth > 0 && ev.depth >= ev.maxDepth {
		return nil, errorf(ResourceExhaustion, "evaluation nested deeper than %d levels", ev.maxDepth)
	}
	ev.depth++
	defer func() { ev.depth-- }()

	switch t := expr.(type) {
	case Number:
		return t, nil
	case String:
		return t, nil
	case Boolean:
		return t, nil
	case Quoted:
		return datum(t.Expr), nil
	case Symbol:
		return env.Find(t)
	case Form:
		if len(t) == 0 {
			return List{}, nil
		}
		if sym, isSym := t[0].(Symbol); isSym {
			if spec, isSpec := specialForms[sym]; isSpec {
				return spec(ev, t[1:], env)
			}
		}
		return ev.call(t, env)
	default:
		return nil, errorf(TypeMismatch, "cannot evaluate %T", expr)
	}
}

// call evaluates the head, then every operand left to right, then applies.
func (ev *evaluator) call(form Form, env *Env) (Value, error) {
	switch form[0].(type) {
	case Symbol, Form:
	default:
		return nil, errorf(UnboundIdentifier, "%s", Print(datum(form[0])))
	}

	front, err := ev.eval(form[0], env)
	if err != nil {
		return nil, err
	}

	args, err := ev.evalSlice(form[1:], env)
	if err != nil {
		return nil, err
	}

	switch proc := front.(type) {
	case *Procedure:
		return ev.apply(proc, args)
	case *Native:
		return applyNative(proc, args)
	default:
		return nil, errorf(TypeMismatch, "%s is not a procedure", Print(front))
	}
}

// evalSlice evaluates exprs left to right, stopping at the first error.
func (ev *evaluator) evalSlice(exprs []Expr, env *Env) ([]Value, error) {
	arr := make([]Value, len(exprs))
	for i, e := range exprs {
		res, err := ev.eval(e, env)
		if err != nil {
			return nil, err
		}
		arr[i] = res
	}
	return arr, nil
}

func (ev *evaluator) apply(proc *Procedure, args []Value) (Value, error) {
	if len(args) != len(proc.Params) {
		return nil, arityError(procName(proc), strconv.Itoa(len(proc.Params)), len(args))
	}
	return ev.eval(proc.Body, proc.Env.Extend(proc.Params, args))
}

func applyNative(n *Native, args []Value) (Value, error) {
	if len(args) < n.MinArgs || (n.MaxArgs >= 0 && len(args) > n.MaxArgs) {
		return nil, arityError(n.Name, expectedArgs(n), len(args))
	}
	return n.Fn(args)
}

func expectedArgs(n *Native) string {
	switch {
	case n.MaxArgs < 0:
		return "at least " + strconv.Itoa(n.MinArgs)
	case n.MinArgs == n.MaxArgs:
		return strconv.Itoa(n.MinArgs)
	default:
		return strconv.Itoa(n.MinArgs) + " to " + strconv.Itoa(n.MaxArgs)
	}
}

func procName(proc *Procedure) string {
	if proc.Name == "" {
		return "lambda"
	}
	return string(proc.Name)
}

func isTruthy(val Value) bool {
	b, isBoolean := val.(Boolean)
	return !isBoolean || bool(b)
}

// Special Forms

func quote(ev *evaluator, args []Expr, env *Env) (Value, error) {
	if len(args) != 1 {
		return nil, arityError("quote", "1", len(args))
	}
	return datum(args[0]), nil
}

func ifForm(ev *evaluator, args []Expr, env *Env) (Value, error) {
	if len(args) != 3 {
		return nil, arityError("if", "3", len(args))
	}

	test, err := ev.eval(args[0], env)
	if err != nil {
		return nil, err
	}

	if isTruthy(test) {
		return ev.eval(args[1], env)
	}
	return ev.eval(args[2], env)
}

func cond(ev *evaluator, args []Expr, env *Env) (Value, error) {
	for _, arg := range args {
		clause, isForm := arg.(Form)
		if !isForm || len(clause) != 2 {
			return nil, errorf(TypeMismatch, "cond clause must be (test expr)")
		}

		if sym, isSym := clause[0].(Symbol); isSym && sym == "else" {
			return ev.eval(clause[1], env)
		}

		test, err := ev.eval(clause[0], env)
		if err != nil {
			return nil, err
		}
		if isTruthy(test) {
			return ev.eval(clause[1], env)
		}
	}
	return Unspecified{}, nil
}

func define(ev *evaluator, args []Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return nil, errorf(MalformedDefine, "define takes a target and one expression, given %d operand(s)", len(args))
	}

	switch target := args[0].(type) {
	case Symbol:
		val, err := ev.eval(args[1], env)
		if err != nil {
			return nil, err
		}
		if proc, isProc := val.(*Procedure); isProc && isLambdaForm(args[1]) {
			nameProcedure(proc, target)
		}
		env.Define(target, val)
		return Unspecified{}, nil
	case Form:
		if len(target) == 0 {
			return nil, errorf(MalformedDefine, "define needs a procedure name")
		}
		name, isSym := target[0].(Symbol)
		if !isSym {
			return nil, errorf(MalformedDefine, "procedure name must be a symbol")
		}
		params, err := paramSymbols(target[1:], MalformedDefine)
		if err != nil {
			return nil, err
		}
		proc := newProcedure(params, args[1], env)
		nameProcedure(proc, name)
		env.Define(name, proc)
		return Unspecified{}, nil
	default:
		return nil, errorf(MalformedDefine, "cannot define %s", Print(datum(args[0])))
	}
}

func lambda(ev *evaluator, args []Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return nil, errorf(MalformedLambda, "lambda takes a parameter list and one body expression, given %d operand(s)", len(args))
	}

	list, isForm := args[0].(Form)
	if !isForm {
		return nil, errorf(MalformedLambda, "parameters must be a list, got %s", Print(datum(args[0])))
	}

	params, err := paramSymbols(list, MalformedLambda)
	if err != nil {
		return nil, err
	}
	return newProcedure(params, args[1], env), nil
}

// let is rewritten into an immediately applied lambda, so every initializer
// is evaluated in the enclosing scope.
func let(ev *evaluator, args []Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return nil, arityError("let", "2", len(args))
	}

	bindings, isForm := args[0].(Form)
	if !isForm {
		return nil, errorf(TypeMismatch, "let bindings must be a list")
	}

	vars := make(Form, len(bindings))
	inits := make([]Expr, len(bindings))
	for i, b := range bindings {
		pair, isPair := b.(Form)
		if !isPair || len(pair) != 2 {
			return nil, errorf(TypeMismatch, "let binding must be (name expr)")
		}
		vars[i] = pair[0]
		inits[i] = pair[1]
	}

	call := Form{Form{Symbol("lambda"), vars, args[1]}}
	call = append(call, inits...)
	return ev.eval(call, env)
}

func set(ev *evaluator, args []Expr, env *Env) (Value, error) {
	if len(args) != 2 {
		return nil, arityError("set!", "2", len(args))
	}

	sym, isSym := args[0].(Symbol)
	if !isSym {
		return nil, errorf(TypeMismatch, "set! target must be a symbol")
	}
	if _, err := env.Find(sym); err != nil {
		return nil, errorf(AssignmentBeforeDefinition, "cannot set! %s before it is defined", sym)
	}

	val, err := ev.eval(args[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(sym, val); err != nil {
		return nil, err
	}
	return Unspecified{}, nil
}

func and(ev *evaluator, args []Expr, env *Env) (Value, error) {
	for _, arg := range args {
		val, err := ev.eval(arg, env)
		if err != nil {
			return nil, err
		}
		if !isTruthy(val) {
			return Boolean(false), nil
		}
	}
	return Boolean(true), nil
}

func or(ev *evaluator, args []Expr, env *Env) (Value, error) {
	for _, arg := range args {
		val, err := ev.eval(arg, env)
		if err != nil {
			return nil, err
		}
		if isTruthy(val) {
			return Boolean(true), nil
		}
	}
	return Boolean(false), nil
}

func paramSymbols(list Form, kind ErrorKind) ([]Symbol, error) {
	params := make([]Symbol, len(list))
	for i, p := range list {
		sym, isSym := p.(Symbol)
		if !isSym {
			return nil, errorf(kind, "parameter %s is not a symbol", Print(datum(p)))
		}
		params[i] = sym
	}
	return params, nil
}

// newProcedure captures a snapshot of env, not env itself.
func newProcedure(params []Symbol, body Expr, env *Env) *Procedure {
	return &Procedure{
		Params: params,
		Body:   body,
		Env:    env.Extend(nil, nil),
	}
}

// isLambdaForm reports whether e is a literal (lambda ...) expression, whose
// value is a closure nothing else can reference yet.
func isLambdaForm(e Expr) bool {
	form, isForm := e.(Form)
	if !isForm || len(form) == 0 {
		return false
	}
	head, isSym := form[0].(Symbol)
	return isSym && head == "lambda"
}

// nameProcedure names a freshly created closure and binds the name inside
// its own snapshot so the body can call itself.
func nameProcedure(proc *Procedure, name Symbol) {
	proc.Name = name
	proc.Env.Define(name, proc)
}
