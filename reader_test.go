package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"(", "+", "1", "2", ")"}, Tokenize("(+ 1 2)"))
	assert.Equal(t, []string{"'", "(", "a", "b", ")"}, Tokenize("'(a b)"))
	assert.Equal(t, []string{"(", "(", ")", ")"}, Tokenize("(())"))
	assert.Equal(t, []string{`"a`, `b"`}, Tokenize(`"a b"`))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" \t\n "))
}

func TestNumbers(t *testing.T) {
	testRead(t, "1", "1")
	testRead(t, "  7   ", "7")
	testRead(t, "-123", "-123")
	testRead(t, "+5", "5")
	testRead(t, "3.25", "3.25")
	testRead(t, ".5", "0.5")
	testRead(t, "-0.75", "-0.75")

	expr, err := Parse("12.5")
	require.NoError(t, err)
	assert.IsType(t, Number{}, expr)
}

func TestSymbols(t *testing.T) {
	for _, s := range []string{"+", "-", "abc", "abc5", "abc-def", "set!", "#true", "->>", "1abc", "-abc", "..."} {
		expr, err := Parse(s)
		if assert.NoError(t, err, s) {
			assert.Equal(t, Symbol(s), expr, s)
		}
	}
}

func TestBooleans(t *testing.T) {
	expr, err := Parse("#t")
	require.NoError(t, err)
	assert.Equal(t, Boolean(true), expr)

	expr, err = Parse("#f")
	require.NoError(t, err)
	assert.Equal(t, Boolean(false), expr)

	expr, err = Parse("'(#t #f)")
	require.NoError(t, err)
	assert.Equal(t, List{Boolean(true), Boolean(false)}, datum(expr.(Quoted).Expr))
}

func TestStrings(t *testing.T) {
	expr, err := Parse(`"abc"`)
	require.NoError(t, err)
	assert.Equal(t, String(`"abc"`), expr)

	expr, err = Parse(`""`)
	require.NoError(t, err)
	assert.Equal(t, String(`""`), expr)
}

func TestLists(t *testing.T) {
	testRead(t, "(+ 1 2)", "(+ 1 2)")
	testRead(t, "()", "()")
	testRead(t, "( )", "()")
	testRead(t, "((3 4))", "((3 4))")
	testRead(t, "(+ 1 (+ 2 3))", "(+ 1 (+ 2 3))")
	testRead(t, "  ( +   1   (+   2 3   )   )  ", "(+ 1 (+ 2 3))")
	testRead(t, "(()())", "(() ())")

	expr, err := Parse("(f x)")
	require.NoError(t, err)
	assert.Equal(t, Form{Symbol("f"), Symbol("x")}, expr)
}

func TestQuoteShorthand(t *testing.T) {
	expr, err := Parse("'x")
	require.NoError(t, err)
	assert.Equal(t, Quoted{Symbol("x")}, expr)

	long, err := Parse("(quote x)")
	require.NoError(t, err)
	assert.Equal(t, expr, long)

	expr, err = Parse("'(1 'b)")
	require.NoError(t, err)
	assert.Equal(t, Quoted{Form{mustNumber(t, "1"), Quoted{Symbol("b")}}}, expr)
}

func TestParseAll(t *testing.T) {
	exprs, err := ParseAll("(define x 1) x 'y")
	require.NoError(t, err)
	assert.Len(t, exprs, 3)
}

func TestMalformedInput(t *testing.T) {
	for _, src := range []string{"", "   ", "(", "(+ 1 2", "((1)", ")", "'", "(quote)", "(quote a b)", "(1 2))"} {
		_, err := Parse(src)
		if assert.Error(t, err, src) {
			assert.True(t, IsKind(err, MalformedInput), "%q: %v", src, err)
		}
	}
}

func TestReadDepth(t *testing.T) {
	ts := newTokenStream(Tokenize("((((((1))))))"), 3)
	_, err := Read(ts)
	assert.True(t, IsKind(err, ResourceExhaustion), "got %v", err)
}

func TestIncomplete(t *testing.T) {
	assert.True(t, Incomplete("(define (f x)"))
	assert.True(t, Incomplete("'"))
	assert.False(t, Incomplete("(f x)"))
	assert.False(t, Incomplete("x"))
	assert.False(t, Incomplete(""))
	assert.False(t, Incomplete("(f))"))
}

func testRead(t *testing.T, input string, output string) {
	t.Helper()
	expr, err := Parse(input)
	if assert.NoError(t, err, input) {
		assert.Equal(t, output, Print(datum(expr)), input)
	}
}

func mustNumber(t *testing.T, s string) Number {
	t.Helper()
	n, ok := matchNumber(s)
	require.True(t, ok, s)
	return n
}
