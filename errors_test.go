package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	err := errorf(UnboundIdentifier, "%s", "foo")
	assert.Equal(t, "unbound-identifier: foo", err.Error())

	_, evalErr := NewInterpreter().EvalString("(car 1 2)")
	assert.Equal(t, "arity-mismatch: car expects 1 argument(s), given 2", evalErr.Error())

	_, evalErr = NewInterpreter().EvalString("(+ 1)(- )")
	assert.Equal(t, "arity-mismatch: - expects at least 1 argument(s), given 0", evalErr.Error())

	_, evalErr = NewInterpreter().EvalString("((lambda (a) a))")
	assert.Equal(t, "arity-mismatch: lambda expects 1 argument(s), given 0", evalErr.Error())
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", errorf(DivisionByZero, "1 / 0"))
	assert.True(t, IsKind(err, DivisionByZero))
	assert.False(t, IsKind(err, TypeMismatch))
	assert.False(t, IsKind(errors.New("plain"), DivisionByZero))
	assert.False(t, IsKind(nil, DivisionByZero))
}

func TestErrorKindNames(t *testing.T) {
	assert.Equal(t, "malformed-input", MalformedInput.String())
	assert.Equal(t, "assignment-before-definition", AssignmentBeforeDefinition.String())
	assert.Equal(t, "resource-exhaustion", ResourceExhaustion.String())
	assert.Equal(t, "error-kind(99)", ErrorKind(99).String())
}
