package main

import "sort"

// Env maps names to values. There is no parent link: Extend copies the
// whole mapping, so an extended scope never observes later changes to the
// scope it came from.
type Env struct {
	symbols map[Symbol]Value
}

// NewEnv returns a global environment holding the standard library.
func NewEnv() *Env {
	env := &Env{symbols: make(map[Symbol]Value, len(stdlib))}
	for name, val := range stdlib {
		env.symbols[name] = val
	}
	return env
}

// Find looks up name in this environment.
func (e *Env) Find(name Symbol) (Value, error) {
	val, ok := e.symbols[name]
	if !ok {
		return nil, errorf(UnboundIdentifier, "%s", name)
	}
	return val, nil
}

// Define binds name in this environment, replacing any previous binding.
func (e *Env) Define(name Symbol, val Value) {
	e.symbols[name] = val
}

// Set rebinds a name that is already bound in this environment.
func (e *Env) Set(name Symbol, val Value) error {
	if _, ok := e.symbols[name]; !ok {
		return errorf(AssignmentBeforeDefinition, "cannot set! %s before it is defined", name)
	}
	e.symbols[name] = val
	return nil
}

// Extend returns an independent copy of e with params bound to args.
// When a parameter name repeats, the later argument wins.
func (e *Env) Extend(params []Symbol, args []Value) *Env {
	child := &Env{symbols: make(map[Symbol]Value, len(e.symbols)+len(params))}
	for name, val := range e.symbols {
		child.symbols[name] = val
	}
	for i, param := range params {
		child.symbols[param] = args[i]
	}
	return child
}

func (e *Env) Len() int {
	return len(e.symbols)
}

// Names returns the bound names in sorted order.
func (e *Env) Names() []Symbol {
	names := make([]Symbol, 0, len(e.symbols))
	for name := range e.symbols {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
