/*
File    : lox/resolve/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolve implements the static resolution pass that runs
// between parsing and evaluation. It has no teacher analogue — GoMix
// resolves names purely at evaluation time by walking its scope chain
// (scope.Scope.LookUp) — but its scope-stack shape is grounded on that
// same inside-out chain walk, repurposed from a value map to a
// "defined" flag map.
package resolve

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// Error is a static diagnostic produced during resolution: a redeclared
// local, or a local variable read from inside its own initializer.
type Error struct {
	Token   lexer.Token
	Message string
}

// Locals is the resolver's side table: for every Variable or Assign node
// that refers to a non-global binding, it maps that exact node's
// pointer to the number of enclosing environments to skip to reach the
// declaring frame. A node absent from Locals resolves as global.
type Locals map[ast.Expr]int

// Resolver runs the single pre-evaluation pass over a program's
// statements described in orig §4.3.
type Resolver struct {
	scopes []map[string]bool
	locals Locals
	Errors []Error
}

// New creates a Resolver ready to walk a program's top-level statements.
// The global scope is never pushed onto scopes — it is represented by
// the absence of an entry in Locals.
func New() *Resolver {
	return &Resolver{locals: make(Locals)}
}

// Resolve walks stmts and returns the completed side table together
// with any static errors found along the way.
func (r *Resolver) Resolve(stmts []ast.Stmt) (Locals, []Error) {
	r.resolveStmts(stmts)
	return r.locals, r.Errors
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) inGlobalScope() bool {
	return len(r.scopes) == 0
}

func (r *Resolver) current() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare registers name in the innermost scope with its "defined" flag
// set to false (initializer not yet evaluated). Redeclaring a name
// already present in that same scope is a static error; globals are
// exempt (orig §4.3).
func (r *Resolver) declare(name lexer.Token) {
	if r.inGlobalScope() {
		return
	}
	scope := r.current()
	if _, exists := scope[name.Lexeme]; exists {
		r.Errors = append(r.Errors, Error{Token: name, Message: "Already a variable with this name in this scope."})
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name lexer.Token) {
	if r.inGlobalScope() {
		return
	}
	r.current()[name.Lexeme] = true
}

// resolveLocal scans the scope stack inside-out for name, recording the
// depth at which it is found. An unfound name is left out of the side
// table entirely, meaning "resolve as global" at evaluation time.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Expression:
		r.resolveExpr(s.Expression)
	case *ast.Print:
		r.resolveExpr(s.Expression)
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s)
	case *ast.Return:
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.Class:
		r.declare(s.Name)
		r.define(s.Name)
	}
}

// resolveFunction declares and defines every parameter in a fresh scope
// before resolving the body, so recursive references to the function's
// own name (already declared in the enclosing scope by the caller) and
// to its parameters both resolve correctly.
func (r *Resolver) resolveFunction(fn *ast.Function) {
	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// Nothing to resolve.
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.Variable:
		if !r.inGlobalScope() {
			if defined, ok := r.current()[e.Name.Lexeme]; ok && !defined {
				r.Errors = append(r.Errors, Error{Token: e.Name, Message: "Can't read local variable in its own initializer."})
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	}
}
