/*
File    : lox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox/lexer"

// Stmt is the marker interface implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Expression is a bare expression evaluated for its side effects, with
// the result discarded (e.g. a call like `doSomething();`).
type Expression struct {
	Expression Expr
}

// Print evaluates Expression and writes its value to the interpreter's
// output stream.
type Print struct {
	Expression Expr
}

// Var is a variable declaration. Initializer is nil when the source
// wrote `var x;` with no `= expr` — the binding is then created holding
// nil rather than left unbound.
type Var struct {
	Name        lexer.Token
	Initializer Expr
}

// Block is `{ ... }`: a list of statements executed in a fresh child
// environment of whatever environment is current when the block runs.
type Block struct {
	Statements []Stmt
}

// If is `if (Condition) Then [else Else]`. Else is nil when no `else`
// clause was written.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// While is `while (Condition) Body`. `for` loops are desugared into
// this node by the parser (see parser.forStatement) — there is no
// separate For AST node.
type While struct {
	Condition Expr
	Body      Stmt
}

// Function is a function declaration: `fun Name(Params) { Body }`.
type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// Return is `return [Value];`. Value is nil for a bare `return;`.
type Return struct {
	Keyword lexer.Token
	Value   Expr
}

// Class is a class declaration. It intentionally carries nothing beyond
// a name: methods, fields, and inheritance are out of scope, so a class
// is only ever a callable that manufactures empty instances.
type Class struct {
	Name lexer.Token
}

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*Block) stmtNode()      {}
func (*If) stmtNode()         {}
func (*While) stmtNode()      {}
func (*Function) stmtNode()   {}
func (*Return) stmtNode()     {}
func (*Class) stmtNode()      {}
