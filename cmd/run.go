package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kse201/interpreter/lisp"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runSources(os.Stdout, args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			if stack := runStackTrace(err); stack != nil && rootDebug {
				stack.DebugPrint(os.Stderr)
			}
			os.Exit(1)
		}
	},
}

// runSources evaluates each source named by args in a single environment,
// stopping at the first error.
func runSources(stdout io.Writer, args []string) error {
	env, err := newEnv(stdout)
	if err != nil {
		return err
	}
	for i, arg := range args {
		name, src, err := runReadSource(i, arg)
		if err != nil {
			return err
		}
		exprs, err := env.Runtime.Reader.Read(name, bytes.NewReader(src))
		if err != nil {
			return err
		}
		for _, expr := range exprs {
			v, err := env.Eval(expr)
			if err != nil {
				return err
			}
			if runPrint {
				fmt.Fprintln(stdout, v)
			}
		}
	}
	return nil
}

func runReadSource(i int, arg string) (name string, src []byte, err error) {
	if runExpression {
		return fmt.Sprintf("<expression %d>", i+1), []byte(arg), nil
	}
	src, err = os.ReadFile(arg)
	if err != nil {
		return "", nil, err
	}
	return arg, src, nil
}

// runStackTrace returns the call stack recorded in err, if any.
func runStackTrace(err error) *lisp.CallStack {
	var lerr *lisp.Error
	if !errors.As(err, &lerr) {
		return nil
	}
	return lerr.Stack
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
