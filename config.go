package main

import (
	"io"
	"log"
)

// DefaultMaxDepth bounds reader and evaluator recursion. Go cannot recover
// from a goroutine stack overflow, so deep input has to be stopped before
// the runtime aborts the process.
const DefaultMaxDepth = 10000

// Config is a function that configures an Interpreter.
type Config func(in *Interpreter)

// WithMaxDepth returns a Config that fails evaluation with
// resource-exhaustion once expressions nest deeper than n. A value of zero or
// less removes the limit.
func WithMaxDepth(n int) Config {
	return func(in *Interpreter) {
		in.maxDepth = n
	}
}

// WithLogger returns a Config that makes the interpreter write debugging
// output to l instead of discarding it.
func WithLogger(l *log.Logger) Config {
	return func(in *Interpreter) {
		in.logger = l
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
