package main

import (
	"github.com/shopspring/decimal"
)

// Read consumes exactly one expression from the front of ts.
func Read(ts *TokenStream) (Expr, error) {
	if ts.maxDepth > 0 && ts.depth >= ts.maxDepth {
		return nil, errorf(ResourceExhaustion, "expression nested deeper than %d levels", ts.maxDepth)
	}
	ts.depth++
	defer func() { ts.depth-- }()

	token, err := ts.next()
	if err != nil {
		return nil, err
	}

	switch {
	case token == "'":
		quoted, err := Read(ts)
		if err != nil {
			return nil, err
		}
		return Quoted{quoted}, nil
	case token == "(":
		return readForm(ts)
	case token == ")":
		return nil, errorf(MalformedInput, "unexpected )")
	case token[0] == '"':
		return String(token), nil
	default:
		return interpretToken(token), nil
	}
}

func readForm(ts *TokenStream) (Expr, error) {
	head, err := ts.peek()
	if err != nil {
		return nil, err
	}

	if head == "quote" {
		ts.next()
		quoted, err := Read(ts)
		if err != nil {
			return nil, err
		}
		if err := expectClose(ts, "quote"); err != nil {
			return nil, err
		}
		return Quoted{quoted}, nil
	}

	form := Form{}
	for {
		tok, err := ts.peek()
		if err != nil {
			return nil, err
		}
		if tok == ")" {
			ts.next()
			return form, nil
		}
		sub, err := Read(ts)
		if err != nil {
			return nil, err
		}
		form = append(form, sub)
	}
}

func expectClose(ts *TokenStream, context string) error {
	tok, err := ts.next()
	if err != nil {
		return err
	}
	if tok != ")" {
		return errorf(MalformedInput, "%s takes exactly one expression, found %s", context, tok)
	}
	return nil
}

func interpretToken(token string) Expr {
	switch token {
	case "#t":
		return Boolean(true)
	case "#f":
		return Boolean(false)
	}
	if n, ok := matchNumber(token); ok {
		return n
	}
	return Symbol(token)
}

func matchNumber(s string) (Number, bool) {
	body := s
	if body[0] == '+' || body[0] == '-' {
		body = body[1:]
	}
	if body == "" {
		return Number{}, false
	}
	if body[0] == '.' {
		body = body[1:]
	}
	if body == "" || body[0] < '0' || body[0] > '9' {
		return Number{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Number{}, false
	}
	return Number{d}, true
}

// Parse reads a single expression from src. Tokens left over after the
// expression are rejected.
func Parse(src string) (Expr, error) {
	ts := newTokenStream(Tokenize(src), DefaultMaxDepth)
	expr, err := Read(ts)
	if err != nil {
		return nil, err
	}
	if ts.Len() != 0 {
		tok, _ := ts.peek()
		return nil, errorf(MalformedInput, "unexpected %s after expression", tok)
	}
	return expr, nil
}

// ParseAll reads every top-level expression in src.
func ParseAll(src string) ([]Expr, error) {
	return parseAll(src, DefaultMaxDepth)
}

func parseAll(src string, maxDepth int) ([]Expr, error) {
	ts := newTokenStream(Tokenize(src), maxDepth)
	if ts.Len() == 0 {
		return nil, errorf(MalformedInput, "no input")
	}
	var exprs []Expr
	for ts.Len() > 0 {
		expr, err := Read(ts)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// Incomplete reports whether src still has open parentheses, or ends in a
// dangling quote mark.
func Incomplete(src string) bool {
	tokens := Tokenize(src)
	depth := 0
	for _, tok := range tokens {
		switch tok {
		case "(":
			depth++
		case ")":
			depth--
		}
	}
	if depth > 0 {
		return true
	}
	return depth == 0 && len(tokens) > 0 && tokens[len(tokens)-1] == "'"
}
