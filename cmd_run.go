package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file|expression]...",
	Short: "Run scheme code",
	Long:  `Run scheme code supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, err := runReadSources(args)
		if err != nil {
			return err
		}

		interp := newInterpreter()
		for _, src := range sources {
			val, err := interp.EvalString(src)
			if err != nil {
				return err
			}
			if runPrint {
				if out := Print(val); out != "" {
					fmt.Fprintln(cmd.OutOrStdout(), out)
				}
			}
		}
		return nil
	},
}

func runReadSources(args []string) ([]string, error) {
	sources := make([]string, len(args))
	if runExpression {
		copy(sources, args)
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = string(b)
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as scheme expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print the value of each argument to stdout")
}
