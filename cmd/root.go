package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kse201/interpreter/lisp"
	"github.com/kse201/interpreter/parser/rdparser"
)

var (
	rootDebug    bool
	rootMaxDepth int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "monolis",
	Short: "A minimal lisp interpreter",
	Long: `monolis evaluates a small lisp dialect with numbers, symbols, strings,
cons cells, and user defined functions.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if rootDebug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newEnv returns a root environment configured from the command line flags.
func newEnv(stdout io.Writer) (*lisp.Env, error) {
	env := lisp.NewEnv(nil)
	err := lisp.InitializeUserEnv(env,
		lisp.WithReader(rdparser.NewReaderDepth(rootMaxDepth)),
		lisp.WithMaximumDepth(rootMaxDepth),
		lisp.WithStdout(stdout),
		lisp.WithLogger(logrus.NewEntry(logrus.StandardLogger())),
	)
	if err != nil {
		return nil, err
	}
	return env, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Log evaluation traces to stderr")
	rootCmd.PersistentFlags().IntVar(&rootMaxDepth, "max-depth", lisp.DefaultMaxDepth,
		"Maximum nesting depth of expressions and evaluation")
}
