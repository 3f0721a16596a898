package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	expr "github.com/kaeru82433413/simple-expr-parser"
)

// rootCmd evaluates its arguments as expressions, or runs a
// read-evaluate loop over standard input when no arguments are given.
var rootCmd = &cobra.Command{
	Use:   "simple-expr-parser [expression ...]",
	Short: "An exact-rational arithmetic calculator.",
	Long: "A calculator over non-negative integers with +, -, * and / and " +
		"parentheses. Results are exact rationals, and malformed input is " +
		"reported with a caret under the offending character.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		echo, _ := cmd.Flags().GetBool("echo")
		out := cmd.OutOrStdout()
		if len(args) > 0 {
			for _, arg := range args {
				line(out, arg, echo)
			}
			return nil
		}
		in, err := infile(cmd)
		if err != nil {
			return err
		}
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line(out, sc.Text(), echo)
		}
		return sc.Err()
	},
}

// infile opens the input selected by the -in flag, defaulting to stdin.
func infile(cmd *cobra.Command) (io.Reader, error) {
	name, _ := cmd.Flags().GetString("in")
	if name == "" || name == "-" {
		return cmd.InOrStdin(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// line parses and evaluates one input line, writing the result or a
// diagnostic to w. Failures pertain to the line alone and are never
// fatal.
func line(w io.Writer, src string, echo bool) {
	a, err := expr.Parse(src)
	if err != nil {
		log.Debugf("parse %q: %v", src, err)
		fmt.Fprint(w, diagnose(src, err))
		return
	}
	log.Debugf("parsed %q as %v", src, a)
	if echo {
		fmt.Fprintf(w, "%v : ", a)
	}
	r, err := a.Eval()
	if err != nil {
		log.Debugf("eval %q: %v", src, err)
		fmt.Fprint(w, diagnose(src, err))
		return
	}
	fmt.Fprintln(w, r)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("in", "", "input file (default stdin if no args given)")
	rootCmd.Flags().Bool("echo", false, "print parse trees before results")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
