/*
File    : lox/report/reporter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package report

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/parser"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Disable ANSI codes so test assertions can match plain text
	// regardless of the terminal the test runner happens to attach.
	color.NoColor = true
}

func TestReporter_LexErrorsSetsHadErrorAndFormats(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	r.LexErrors(&buf, []lexer.Error{{Line: 3, Message: "Unexpected character."}})
	assert.True(t, r.HadError)
	assert.Equal(t, "[line 3] Error: Unexpected character.\n", buf.String())
}

func TestReporter_ParseErrorAtToken(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	tok := lexer.NewToken(lexer.PLUS, "+", nil, 5)
	r.ParseErrors(&buf, []parser.ParseError{{Token: tok, Message: "Expect expression."}})
	assert.True(t, r.HadError)
	assert.Equal(t, "[line 5] Error at '+': Expect expression.\n", buf.String())
}

func TestReporter_ParseErrorAtEOF(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	tok := lexer.NewToken(lexer.EOF, "", nil, 7)
	r.ParseErrors(&buf, []parser.ParseError{{Token: tok, Message: "Expect ';' after value."}})
	assert.Equal(t, "[line 7] Error at end: Expect ';' after value.\n", buf.String())
}

func TestReporter_RuntimeErrorFormat(t *testing.T) {
	var buf bytes.Buffer
	r := New()
	tok := lexer.NewToken(lexer.MINUS, "-", nil, 2)
	r.RuntimeError(&buf, &interp.RuntimeError{Token: tok, Message: "Operands must be numbers."})
	assert.True(t, r.HadRuntimeError)
	assert.Equal(t, "Operands must be numbers.\n[line 2]\n", buf.String())
}

func TestReporter_FreshInstanceStartsClear(t *testing.T) {
	r := New()
	assert.False(t, r.HadError)
	assert.False(t, r.HadRuntimeError)
}
