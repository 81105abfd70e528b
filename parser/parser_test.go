/*
File    : lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens := lex.ScanTokens()
	require.Empty(t, lex.Errors)
	p := NewParser(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %+v", p.Errors)
	return stmts
}

// exprOnly asserts there is exactly one top-level expression statement
// and returns its expression.
func exprOnly(t *testing.T, stmts []ast.Stmt) ast.Expr {
	t.Helper()
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.Expression)
	require.True(t, ok, "expected an expression statement, got %T", stmts[0])
	return es.Expression
}

func TestParse_Precedence(t *testing.T) {
	// 1 + 2 * 3 must bind as 1 + (2 * 3), not (1 + 2) * 3.
	expr := exprOnly(t, parse(t, "1 + 2 * 3;"))
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator.Type)
	assert.Equal(t, float64(1), bin.Left.(*ast.Literal).Value)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.STAR, rhs.Operator.Type)
}

func TestParse_LeftAssociativity(t *testing.T) {
	// 1 - 2 - 3 must bind as (1 - 2) - 3.
	expr := exprOnly(t, parse(t, "1 - 2 - 3;"))
	outer, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, float64(3), outer.Right.(*ast.Literal).Value)
	inner, ok := outer.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, float64(1), inner.Left.(*ast.Literal).Value)
	assert.Equal(t, float64(2), inner.Right.(*ast.Literal).Value)
}

func TestParse_UnaryRightAssociative(t *testing.T) {
	expr := exprOnly(t, parse(t, "!!true;"))
	outer, ok := expr.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, lexer.BANG, outer.Operator.Type)
	inner, ok := outer.Right.(*ast.Unary)
	require.True(t, ok)
	assert.Equal(t, true, inner.Right.(*ast.Literal).Value)
}

func TestParse_LogicalIsDistinctFromBinary(t *testing.T) {
	expr := exprOnly(t, parse(t, "true or false and true;"))
	or, ok := expr.(*ast.Logical)
	require.True(t, ok)
	assert.Equal(t, lexer.OR, or.Operator.Type)
	_, ok = or.Right.(*ast.Logical)
	require.True(t, ok, "'and' should also parse as Logical, not Binary")
}

func TestParse_AssignmentRightAssociative(t *testing.T) {
	stmts := parse(t, "var a; var b; var c; a = b = c;")
	require.Len(t, stmts, 4)
	es := stmts[3].(*ast.Expression)
	assign, ok := es.Expression.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner, ok := assign.Value.(*ast.Assign)
	require.True(t, ok)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsNonFatal(t *testing.T) {
	lex := lexer.NewLexer("1 + 2 = 3;")
	tokens := lex.ScanTokens()
	p := NewParser(tokens)
	stmts := p.Parse()
	require.True(t, p.HasErrors())
	assert.Equal(t, "Invalid assignment target.", p.Errors[0].Message)
	// Parsing continues: a statement is still produced.
	require.Len(t, stmts, 1)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.Len(t, stmts, 1)
	block, ok := stmts[0].(*ast.Block)
	require.True(t, ok, "for-loop must desugar into a Block")
	require.Len(t, block.Statements, 2)

	_, ok = block.Statements[0].(*ast.Var)
	require.True(t, ok, "first statement must be the initializer")

	loop, ok := block.Statements[1].(*ast.While)
	require.True(t, ok, "second statement must be the While")
	innerBlock, ok := loop.Body.(*ast.Block)
	require.True(t, ok, "loop body must be wrapped to append the increment")
	require.Len(t, innerBlock.Statements, 2)
	_, ok = innerBlock.Statements[1].(*ast.Expression)
	require.True(t, ok, "increment must be appended as an expression statement")
}

func TestParse_ForWithOmittedClauses(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	loop, ok := stmts[0].(*ast.While)
	require.True(t, ok, "omitting init must not introduce a wrapping Block")
	lit, ok := loop.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value, "omitted condition must default to literal true")
}

func TestParse_CallArityCapIsNonFatal(t *testing.T) {
	args := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ","
		}
		args += "1"
	}
	lex := lexer.NewLexer("f(" + args + ");")
	tokens := lex.ScanTokens()
	p := NewParser(tokens)
	stmts := p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0].Message, "255 arguments")
	require.Len(t, stmts, 1, "parsing must still produce the call statement")
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fun add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*ast.Function)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
	require.Len(t, fn.Body, 1)
	_, ok = fn.Body[0].(*ast.Return)
	require.True(t, ok)
}

func TestParse_ClassDeclarationIsMemberless(t *testing.T) {
	stmts := parse(t, "class Empty {}")
	class, ok := stmts[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Empty", class.Name.Lexeme)
}

// TestParse_SynchronizeRecoversAtNextStatement uses go-cmp to assert on
// the full shape of what survives a mid-declaration parse error: the
// broken declaration is dropped, but the statement after the next `;`
// parses normally.
func TestParse_SynchronizeRecoversAtNextStatement(t *testing.T) {
	lex := lexer.NewLexer("var; print 1;")
	tokens := lex.ScanTokens()
	p := NewParser(tokens)
	stmts := p.Parse()
	require.True(t, p.HasErrors())

	want := []ast.Stmt{
		&ast.Print{Expression: &ast.Literal{Value: float64(1)}},
	}
	if diff := cmp.Diff(want, stmts, cmpIgnoreTokenPosition()); diff != "" {
		t.Errorf("recovered statement list mismatch (-want +got):\n%s", diff)
	}
}

// cmpIgnoreTokenPosition ignores Line/Literal on lexer.Token during
// go-cmp comparisons, since tests construct expected tokens without
// bothering to stamp line numbers.
func cmpIgnoreTokenPosition() cmp.Option {
	return cmp.Comparer(func(a, b lexer.Token) bool {
		return a.Type == b.Type && a.Lexeme == b.Lexeme
	})
}
