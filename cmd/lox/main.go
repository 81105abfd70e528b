/*
File    : lox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package main wires the lexer/parser/resolve/interp pipeline into the
// CLI entry point. It is grounded on the teacher's main/main.go for the
// REPL-vs-file dispatch, banner/identification strings, and color
// palette, and on aledsdavies-opal/cli/main.go for replacing the
// teacher's hand-rolled --help/--version string comparisons with
// cobra's flag parsing (which also supplies the --no-color flag, an
// orig §6 pure addition).
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/repl"
	"github.com/akashmaji946/lox/report"
	"github.com/akashmaji946/lox/resolve"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "lox >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   ██╗      ██████╗ ██╗  ██╗
   ██║     ██╔═══██╗╚██╗██╔╝
   ██║     ██║   ██║ ╚███╔╝
   ██║     ██║   ██║ ██╔██╗
   ███████╗╚██████╔╝██╔╝ ██╗
   ╚══════╝ ╚═════╝ ╚═╝  ╚═╝
`
)

func main() {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:     "lox [script]",
		Short:   "Lox - a small tree-walking interpreter",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			switch len(args) {
			case 0:
				runRepl()
				return nil
			case 1:
				os.Exit(runFile(args[0]))
				return nil
			default:
				// orig §6: more than one positional argument is a usage
				// error exiting 64, distinct from cobra's default exit 1.
				fmt.Fprintln(os.Stderr, "Usage: lox [script]")
				os.Exit(64)
				return nil
			}
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("Lox %s | License: %s | Author: %s\n", version, license, author))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
}

// runRepl starts the interactive session on stdin/stdout.
func runRepl() {
	r := repl.New(banner, version, author, line, license, prompt)
	r.Start(os.Stdin, os.Stdout)
}

// runFile executes a single script and returns the process exit code
// orig §6 specifies: 65 if any static error occurred, 70 if a runtime
// error occurred, 0 otherwise. A file that cannot be read yields 64.
func runFile(path string) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		return 64
	}

	rep := report.New()

	lex := lexer.NewLexer(string(source))
	tokens := lex.ScanTokens()
	if len(lex.Errors) > 0 {
		rep.LexErrors(os.Stderr, lex.Errors)
		return 65
	}

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		rep.ParseErrors(os.Stderr, p.Errors)
		return 65
	}

	locals, resolveErrs := resolve.New().Resolve(stmts)
	if len(resolveErrs) > 0 {
		rep.ResolveErrors(os.Stderr, resolveErrs)
		return 65
	}

	in := interp.New(locals)
	in.SetWriter(os.Stdout)
	if err := in.Interpret(stmts); err != nil {
		if rerr, ok := err.(*interp.RuntimeError); ok {
			rep.RuntimeError(os.Stderr, rerr)
			return 70
		}
		fmt.Fprintln(os.Stderr, err)
		return 70
	}

	return 0
}
