/*
File    : lox/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environ"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/resolve"
)

// RuntimeError is a Lox-level fault raised while executing an already
// well-formed program: an operand of the wrong type, a call to a
// non-callable value, a wrong argument count. It carries the token the
// fault is attributed to so the reporter can format orig §6's
// "<msg>\n[line N]" diagnostic. It is returned as a normal Go error
// value, never panicked, matching the ambient error-handling style
// chosen for this package (see interp's package doc and DESIGN.md).
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// returnSignal is the internal, package-private non-local exit used to
// unwind a `return` statement back out to the enclosing Function.Call.
// It implements error purely so it can travel through the same
// execute/evaluate return channels as a genuine RuntimeError, and
// Function.Call (or Interpret, for a top-level `return`) type-asserts it
// back out before it could ever reach a caller outside this package.
type returnSignal struct {
	value interface{}
}

func (r *returnSignal) Error() string { return "return" }

// Interpreter walks a resolved program and executes it directly,
// grounded on the teacher's eval.Evaluator: a current-environment
// pointer plus a settable io.Writer standing in for GoMix's output
// buffer. Unlike Evaluator, which returns GoMixObject values that can
// themselves represent an error, every evaluation here returns a plain
// Go value paired with an explicit error, and the resolver's Locals
// side table is consulted on every variable reference instead of a
// runtime scope search.
type Interpreter struct {
	globals     *environ.Environment
	environment *environ.Environment
	locals      resolve.Locals
	out         io.Writer
}

// New creates an Interpreter with a fresh global environment seeded
// with the native clock function, ready to run a program that locals
// resolved against.
func New(locals resolve.Locals) *Interpreter {
	if locals == nil {
		locals = make(resolve.Locals)
	}
	globals := environ.New(nil)
	in := &Interpreter{globals: globals, environment: globals, locals: locals, out: os.Stdout}
	registerNatives(globals)
	return in
}

// SetWriter redirects program output (print statements), grounded on
// eval.Evaluator.SetWriter's pattern of making output swappable for
// tests and for the REPL.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.out = w
}

// AddLocals merges a newly resolved side table into the interpreter's
// own. The REPL calls this once per line, since each line is resolved
// independently but all lines share one long-lived Interpreter (and
// therefore one long-lived global environment).
func (in *Interpreter) AddLocals(locals resolve.Locals) {
	for expr, depth := range locals {
		in.locals[expr] = depth
	}
}

// Interpret executes a program's top-level statements in order. It
// stops at the first RuntimeError and returns it; a caller reporting
// diagnostics distinguishes this from a parse/resolve error by type.
// A `return` outside any function ends execution without an error.
func (in *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			if _, ok := err.(*returnSignal); ok {
				return nil
			}
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := in.evaluate(s.Expression)
		return err
	case *ast.Print:
		value, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.out, stringify(value))
		return nil
	case *ast.Var:
		var value interface{}
		if s.Initializer != nil {
			v, err := in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		in.environment.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return in.executeBlock(s.Statements, environ.New(in.environment))
	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil
	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := NewFunction(s, in.environment)
		in.environment.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var value interface{}
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}
	case *ast.Class:
		in.environment.Define(s.Name.Lexeme, NewClass(s.Name.Lexeme))
		return nil
	default:
		return fmt.Errorf("interp: unhandled statement %T", stmt)
	}
}

// executeBlock runs stmts in env, restoring the interpreter's previous
// environment before returning — including when an error or return
// signal unwinds out early, so a failed nested block can never leak
// its scope into the caller.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environ.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, s := range stmts {
		if err := in.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return in.evaluate(e.Expression)
	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	case *ast.Assign:
		value, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if !in.globals.Assign(e.Name.Lexeme, value) {
			return nil, &RuntimeError{Token: e.Name, Message: "Undefined variable '" + e.Name.Lexeme + "'."}
		}
		return value, nil
	case *ast.Logical:
		left, err := in.evaluate(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == lexer.OR {
			if isTruthy(left) {
				return left, nil
			}
		} else if !isTruthy(left) {
			return left, nil
		}
		return in.evaluate(e.Right)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Call:
		return in.evalCall(e)
	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", expr)
	}
}

// lookUpVariable consults the resolver's side table first; a node
// absent from it is a reference to a global, looked up by name instead
// of by depth.
func (in *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	if value, ok := in.globals.Get(name.Lexeme); ok {
		return value, nil
	}
	return nil, &RuntimeError{Token: name, Message: "Undefined variable '" + name.Lexeme + "'."}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (interface{}, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.BANG:
		return !isTruthy(right), nil
	case lexer.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operand must be a number."}
		}
		return -n, nil
	}
	return nil, fmt.Errorf("interp: unreachable unary operator %v", e.Operator.Type)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (interface{}, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS, lexer.SLASH, lexer.STAR,
		lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL:
		ln, lok := left.(float64)
		rn, rok := right.(float64)
		if !lok || !rok {
			return nil, &RuntimeError{Token: e.Operator, Message: "Operands must be numbers."}
		}
		switch e.Operator.Type {
		case lexer.MINUS:
			return ln - rn, nil
		case lexer.SLASH:
			return ln / rn, nil
		case lexer.STAR:
			return ln * rn, nil
		case lexer.GREATER:
			return ln > rn, nil
		case lexer.GREATER_EQUAL:
			return ln >= rn, nil
		case lexer.LESS:
			return ln < rn, nil
		case lexer.LESS_EQUAL:
			return ln <= rn, nil
		}
	case lexer.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, &RuntimeError{Token: e.Operator, Message: "Operands must be two numbers or two strings."}
	case lexer.BANG_EQUAL:
		return !isEqual(left, right), nil
	case lexer.EQUAL_EQUAL:
		return isEqual(left, right), nil
	}
	return nil, fmt.Errorf("interp: unreachable binary operator %v", e.Operator.Type)
}

func (in *Interpreter) evalCall(e *ast.Call) (interface{}, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]interface{}, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	callable, ok := callee.(Callable)
	if !ok {
		return nil, &RuntimeError{Token: e.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != callable.Arity() {
		return nil, &RuntimeError{Token: e.Paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args))}
	}
	return callable.Call(in, args)
}
