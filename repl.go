package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
)

const (
	quitCommand = ":quit"
	envCommand  = ":env"
)

// LineReader yields one line of input per call. *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// scannerReader reads redirected input without echoing prompts.
type scannerReader struct {
	scanner *bufio.Scanner
}

// maxLineSize caps one line of redirected input.
const maxLineSize = 16 << 20

func newScannerReader(r io.Reader) *scannerReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &scannerReader{scanner}
}

func (s *scannerReader) Prompt(string) (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// REPL is the read-eval-print loop around an Interpreter.
type REPL struct {
	Interp     *Interpreter
	Lines      LineReader
	Out        io.Writer
	Err        io.Writer
	Prompt     string
	ContPrompt string

	// History is appended each accepted entry when non-nil.
	History func(entry string)
}

// Run loops until the input ends or the user types :quit.
func (r *REPL) Run() error {
	for {
		src, err := r.readEntry()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(src)
		switch trimmed {
		case "":
			continue
		case quitCommand:
			return nil
		case envCommand:
			for _, name := range r.Interp.Env().Names() {
				fmt.Fprintln(r.Out, name)
			}
			continue
		}

		if r.History != nil {
			r.History(strings.ReplaceAll(src, "\n", " "))
		}

		val, err := r.Interp.EvalString(src)
		if err != nil {
			fmt.Fprintf(r.Err, "Error: %v\n", err)
			continue
		}
		if out := Print(val); out != "" {
			fmt.Fprintln(r.Out, out)
		}
	}
}

// readEntry keeps reading lines while parentheses are left open.
func (r *REPL) readEntry() (string, error) {
	var b strings.Builder
	for {
		prompt := r.Prompt
		if b.Len() > 0 {
			prompt = r.ContPrompt
		}
		line, err := r.Lines.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) && b.Len() > 0 {
				return b.String(), nil
			}
			return "", err
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !Incomplete(b.String()) {
			return b.String(), nil
		}
	}
}
