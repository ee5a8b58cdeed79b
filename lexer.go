package main

import "strings"

var delimiterSpacer = strings.NewReplacer("(", " ( ", ")", " ) ", "'", " ' ")

// Tokenize splits source text into lexemes. Parentheses and the quote mark
// are always tokens of their own; everything else is separated by whitespace.
func Tokenize(src string) []string {
	return strings.Fields(delimiterSpacer.Replace(src))
}

// TokenStream is consumed front to back by Read, so nested reads continue
// where the previous one stopped.
type TokenStream struct {
	tokens   []string
	depth    int
	maxDepth int
}

func NewTokenStream(tokens []string) *TokenStream {
	return newTokenStream(tokens, DefaultMaxDepth)
}

func newTokenStream(tokens []string, maxDepth int) *TokenStream {
	return &TokenStream{tokens: tokens, maxDepth: maxDepth}
}

func (ts *TokenStream) Len() int {
	return len(ts.tokens)
}

func (ts *TokenStream) next() (string, error) {
	if len(ts.tokens) == 0 {
		return "", errorf(MalformedInput, "unexpected end of input")
	}
	tok := ts.tokens[0]
	ts.tokens = ts.tokens[1:]
	return tok, nil
}

func (ts *TokenStream) peek() (string, error) {
	if len(ts.tokens) == 0 {
		return "", errorf(MalformedInput, "unexpected end of input")
	}
	return ts.tokens[0], nil
}
