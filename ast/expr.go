/*
File    : lox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the abstract syntax tree the parser builds and the
// resolver/interpreter walk. Source language: GoMix's double-dispatch
// visitor (parser.NodeVisitor/Accept) is replaced with direct type
// switches in the resolver and interpreter — Go has no need for the
// double-dispatch trick a visitor buys in a language without pattern
// matching on concrete types, and the spec calls this substitution out
// explicitly. Every node that can appear in the resolver's depth side
// table (Variable, Assign) is a pointer type, so ordinary Go pointer
// identity serves as the node identity the side table is keyed on.
package ast

import "github.com/akashmaji946/lox/lexer"

// Expr is the marker interface implemented by every expression node.
type Expr interface {
	exprNode()
}

// Literal is a constant value appearing directly in source: a number,
// string, boolean, or nil. Value holds the decoded Go representation
// (float64, string, bool, or nil) — never a lexer.Token.
type Literal struct {
	Value interface{}
}

// Grouping is a parenthesized expression, kept as its own node (rather
// than discarded) so that an assignment target check and any future
// pretty-printer can tell `(a)` apart from `a`.
type Grouping struct {
	Expression Expr
}

// Unary is a prefix operator application: `-right` or `!right`.
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

// Binary is an infix operator application that always evaluates both
// operands. Logical operators are never represented here — see Logical.
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Logical is `and`/`or`. It is a distinct node from Binary because it
// short-circuits: the right operand is not evaluated unconditionally.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// Variable is a reference to a named binding. Name is the identifier
// token so its lexeme and line are available for error reporting; the
// resolver records this exact node's pointer in its depth side table.
type Variable struct {
	Name lexer.Token
}

// Assign is `name = value`. Like Variable, the resolver keys its depth
// side table on this node's pointer identity.
type Assign struct {
	Name  lexer.Token
	Value Expr
}

// Call is a function/class invocation. Paren is the closing `)` token,
// retained solely so a runtime call error (non-callable callee, wrong
// argument count) can report a line.
type Call struct {
	Callee    Expr
	Paren     lexer.Token
	Arguments []Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}
func (*Call) exprNode()     {}
