package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kse201/interpreter/repl"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  Incomplete expressions continue on the
next line.  Type exit or press Ctrl-D to quit.`,
	Run: func(cmd *cobra.Command, args []string) {
		env, err := newEnv(os.Stdout)
		if err == nil {
			err = repl.RunRepl(env, replPrompt)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", ">> ",
		"Prompt shown before each expression")
}
