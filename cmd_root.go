package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

var (
	rootPrompt   string
	rootHistory  string
	rootMaxDepth int
	rootVerbose  bool
)

// rootCmd starts an interactive session
var rootCmd = &cobra.Command{
	Use:   "goscheme",
	Short: "A small Scheme interpreter",
	Long: `goscheme reads Scheme expressions, evaluates them and prints the results.
Without a subcommand it starts an interactive session; type :quit or send EOF to leave.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		interp := newInterpreter()
		repl := &REPL{
			Interp:     interp,
			Out:        cmd.OutOrStdout(),
			Err:        cmd.ErrOrStderr(),
			Prompt:     rootPrompt,
			ContPrompt: continuationPrompt(rootPrompt),
		}

		if isInputRedirected() {
			repl.Lines = newScannerReader(os.Stdin)
			return repl.Run()
		}

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		histPath := historyPath()
		if histPath != "" {
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()
		}

		repl.Lines = ln
		repl.History = ln.AppendHistory
		return repl.Run()
	},
}

func newInterpreter() *Interpreter {
	configs := []Config{WithMaxDepth(rootMaxDepth)}
	if rootVerbose {
		configs = append(configs, WithLogger(log.New(os.Stderr, "goscheme: ", log.LstdFlags)))
	}
	return NewInterpreter(configs...)
}

func continuationPrompt(prompt string) string {
	cont := make([]byte, len(prompt))
	for i := range cont {
		cont[i] = ' '
	}
	return string(cont)
}

func historyPath() string {
	if rootHistory != "" {
		return rootHistory
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".goscheme_history")
}

func init() {
	rootCmd.PersistentFlags().IntVar(&rootMaxDepth, "max-depth", DefaultMaxDepth,
		"Maximum expression nesting depth before evaluation fails")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false,
		"Log every evaluation to stderr")
	rootCmd.Flags().StringVar(&rootPrompt, "prompt", "scheme> ",
		"Prompt shown before each entry")
	rootCmd.Flags().StringVar(&rootHistory, "history", "",
		"Line history file (default ~/.goscheme_history)")
}
