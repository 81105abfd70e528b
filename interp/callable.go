/*
File    : lox/interp/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import "github.com/akashmaji946/lox/ast"
import "github.com/akashmaji946/lox/environ"

// Callable is anything that can appear on the left of a call expression:
// a user-defined Function, a NativeFunction, or a Class. Grounded on the
// teacher's builtin.Function (Name/Arity/Fn) shape, split here into two
// concrete types rather than one struct holding a Go func, since a
// user-defined Function additionally closes over an Environment.
type Callable interface {
	Call(in *Interpreter, args []interface{}) (interface{}, error)
	Arity() int
	String() string
}

// Function is a user-defined Lox function. It captures the
// Environment active at its declaration site by pointer, never by
// value copy, so that mutations performed through the closure remain
// visible to the function on every subsequent call (see environ's
// package doc for the full rationale).
type Function struct {
	declaration *ast.Function
	closure     *environ.Environment
}

// NewFunction wraps a parsed function declaration together with the
// environment it closes over.
func NewFunction(declaration *ast.Function, closure *environ.Environment) *Function {
	return &Function{declaration: declaration, closure: closure}
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}

// Call binds each parameter in a fresh environment enclosed by the
// function's closure, then executes the body. A return statement
// unwinds as a *returnSignal, which Call unpacks into a normal result;
// falling off the end of the body yields nil, per orig §4.4.
func (f *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := environ.New(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}
	err := in.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(*returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}

// NativeFunction wraps a Go function as a callable Lox value, for the
// single builtin orig §4.4 allows (clock). Grounded on the teacher's
// std-package functions registered directly into the global scope.
type NativeFunction struct {
	name  string
	arity int
	fn    func(in *Interpreter, args []interface{}) (interface{}, error)
}

// NewNativeFunction wraps fn as a Lox-callable native with a fixed arity.
func NewNativeFunction(name string, arity int, fn func(in *Interpreter, args []interface{}) (interface{}, error)) *NativeFunction {
	return &NativeFunction{name: name, arity: arity, fn: fn}
}

func (n *NativeFunction) Arity() int { return n.arity }

func (n *NativeFunction) String() string { return "<native fn>" }

func (n *NativeFunction) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return n.fn(in, args)
}
