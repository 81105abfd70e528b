/*
File    : lox/report/reporter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package report formats and tracks diagnostics. It is grounded on the
// teacher's main.go color palette (redColor/yellowColor/cyanColor via
// fatih/color), of which it uses red, but where go-mix keeps
// nothing like a hadError flag at all (errors there are just another
// GoMixObject value returned from Eval), Reporter follows orig §7's
// taxonomy directly: it is a plain struct, not a package-level global,
// so a fresh one can be created per REPL line without any reset dance.
package report

import (
	"fmt"
	"io"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolve"
	"github.com/fatih/color"
)

var (
	errorColor = color.New(color.FgRed)
)

// Reporter accumulates the two sticky flags orig §6/§7 require
// (HadError for any static fault, HadRuntimeError for the one runtime
// fault that can occur per run) and writes the exact diagnostic text
// orig §6 specifies.
type Reporter struct {
	HadError        bool
	HadRuntimeError bool
}

// New returns a Reporter with both flags clear.
func New() *Reporter {
	return &Reporter{}
}

// LexErrors prints each lexer error as "[line N] Error: <msg>" and sets
// HadError.
func (r *Reporter) LexErrors(w io.Writer, errs []lexer.Error) {
	for _, e := range errs {
		r.HadError = true
		errorColor.Fprintf(w, "[line %d] Error: %s\n", e.Line, e.Message)
	}
}

// ParseErrors prints each parser error as either the at-EOF or
// at-token form of orig §6's diagnostic and sets HadError. Resolver
// errors share the exact same presentation, so ResolveErrors below
// formats through the same reportAt helper.
func (r *Reporter) ParseErrors(w io.Writer, errs []parser.ParseError) {
	for _, e := range errs {
		r.HadError = true
		r.reportAt(w, e.Token, e.Message)
	}
}

// ResolveErrors prints each static resolution error using the same
// "Error at" format as a parse error — orig §7 groups lex/parse/resolve
// together as one static-error taxonomy.
func (r *Reporter) ResolveErrors(w io.Writer, errs []resolve.Error) {
	for _, e := range errs {
		r.HadError = true
		r.reportAt(w, e.Token, e.Message)
	}
}

func (r *Reporter) reportAt(w io.Writer, token lexer.Token, message string) {
	if token.Type == lexer.EOF {
		errorColor.Fprintf(w, "[line %d] Error at end: %s\n", token.Line, message)
		return
	}
	errorColor.Fprintf(w, "[line %d] Error at '%s': %s\n", token.Line, token.Lexeme, message)
}

// RuntimeError prints "<msg>\n[line N]" for a failed interpretation and
// sets HadRuntimeError.
func (r *Reporter) RuntimeError(w io.Writer, err *interp.RuntimeError) {
	r.HadRuntimeError = true
	fmt.Fprintf(w, "%s\n[line %d]\n", err.Message, err.Token.Line)
}
