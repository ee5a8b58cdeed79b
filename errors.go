package main

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure raised while reading or evaluating.
type ErrorKind int

const (
	MalformedInput ErrorKind = iota
	UnboundIdentifier
	ArityMismatch
	MalformedDefine
	MalformedLambda
	AssignmentBeforeDefinition
	DivisionByZero
	EmptyListAccess
	TypeMismatch
	ResourceExhaustion
)

var errorKindNames = [...]string{
	MalformedInput:             "malformed-input",
	UnboundIdentifier:          "unbound-identifier",
	ArityMismatch:              "arity-mismatch",
	MalformedDefine:            "malformed-define",
	MalformedLambda:            "malformed-lambda",
	AssignmentBeforeDefinition: "assignment-before-definition",
	DivisionByZero:             "division-by-zero",
	EmptyListAccess:            "empty-list-access",
	TypeMismatch:               "type-mismatch",
	ResourceExhaustion:         "resource-exhaustion",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(errorKindNames) {
		return fmt.Sprintf("error-kind(%d)", int(k))
	}
	return errorKindNames[k]
}

// Error is the only error type produced by the reader and the evaluator.
// Every failure is local to one top-level evaluation.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

func errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func arityError(name string, expected string, given int) *Error {
	return errorf(ArityMismatch, "%s expects %s argument(s), given %d", name, expected, given)
}
