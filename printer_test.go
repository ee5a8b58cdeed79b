package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	assert.Equal(t, "42", Print(n(t, "42")))
	assert.Equal(t, "-1.5", Print(n(t, "-1.50")))
	assert.Equal(t, `"hi there"`, Print(String(`"hi there"`)))
	assert.Equal(t, "sym", Print(Symbol("sym")))
	assert.Equal(t, "#t", Print(Boolean(true)))
	assert.Equal(t, "#f", Print(Boolean(false)))
	assert.Equal(t, "()", Print(List{}))
	assert.Equal(t, "(1 (2 #t) x)", Print(List{n(t, "1"), List{n(t, "2"), Boolean(true)}, Symbol("x")}))
	assert.Equal(t, "", Print(Unspecified{}))
	assert.Equal(t, "#<procedure sq>", Print(&Procedure{Name: "sq"}))
	assert.Equal(t, "#<procedure lambda>", Print(&Procedure{}))
	assert.Equal(t, "#<procedure car>", Print(stdlib["car"]))
}

func TestPrintQuotedRoundTrip(t *testing.T) {
	for _, src := range []string{"(1 2 3)", "(a (b c) \"s\")", "()", "(quote x)"} {
		val, err := NewInterpreter().EvalString("'" + src)
		if assert.NoError(t, err, src) {
			assert.Equal(t, src, Print(val))
		}
	}
}
