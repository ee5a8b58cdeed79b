package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefineFind(t *testing.T) {
	env := NewEnv()
	_, err := env.Find("a")
	assert.True(t, IsKind(err, UnboundIdentifier))

	env.Define("a", Boolean(true))
	v, err := env.Find("a")
	require.NoError(t, err)
	assert.Equal(t, Boolean(true), v)

	env.Define("a", Boolean(false))
	v, err = env.Find("a")
	require.NoError(t, err)
	assert.Equal(t, Boolean(false), v)
}

func TestEnvSet(t *testing.T) {
	env := NewEnv()
	err := env.Set("a", Boolean(true))
	assert.True(t, IsKind(err, AssignmentBeforeDefinition))
	_, err = env.Find("a")
	assert.Error(t, err)

	env.Define("a", Boolean(true))
	require.NoError(t, env.Set("a", Symbol("x")))
	v, err := env.Find("a")
	require.NoError(t, err)
	assert.Equal(t, Symbol("x"), v)
}

func TestEnvExtendIsIndependent(t *testing.T) {
	root := NewEnv()
	root.Define("a", Symbol("root-a"))
	root.Define("b", Symbol("root-b"))

	child := root.Extend([]Symbol{"b", "c"}, []Value{Symbol("child-b"), Symbol("child-c")})
	assert.Equal(t, root.Len()+1, child.Len())

	v, err := child.Find("a")
	require.NoError(t, err)
	assert.Equal(t, Symbol("root-a"), v)
	v, err = child.Find("b")
	require.NoError(t, err)
	assert.Equal(t, Symbol("child-b"), v)

	root.Define("a", Symbol("changed"))
	root.Define("d", Symbol("new"))
	v, err = child.Find("a")
	require.NoError(t, err)
	assert.Equal(t, Symbol("root-a"), v)
	_, err = child.Find("d")
	assert.Error(t, err)

	child.Define("e", Symbol("child-only"))
	_, err = root.Find("e")
	assert.Error(t, err)
	_, err = root.Find("c")
	assert.Error(t, err)
}

func TestEnvExtendDuplicateParams(t *testing.T) {
	env := NewEnv().Extend([]Symbol{"x", "x"}, []Value{Symbol("first"), Symbol("second")})
	v, err := env.Find("x")
	require.NoError(t, err)
	assert.Equal(t, Symbol("second"), v)
}

func TestEnvNames(t *testing.T) {
	env := NewEnv()
	names := env.Names()
	assert.Len(t, names, env.Len())
	assert.Contains(t, names, Symbol("car"))
	assert.Contains(t, names, Symbol("pi"))
	for i := 1; i < len(names); i++ {
		assert.True(t, names[i-1] < names[i])
	}
}

func TestNewEnvIsolated(t *testing.T) {
	a := NewEnv()
	a.Define("car", Boolean(false))
	b := NewEnv()
	v, err := b.Find("car")
	require.NoError(t, err)
	assert.IsType(t, &Native{}, v)
}
