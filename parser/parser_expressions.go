/*
File    : lox/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// expression is the entry point of the expression grammar: it is just
// assignment, the lowest-precedence production.
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative: `a = b = c` parses as `a = (b = c)`.
// The left-hand side is parsed as a full logic_or expression first and
// only checked for validity (must reduce to a Variable) after the `=`
// is seen — an invalid target is a non-fatal diagnostic, not a parse
// abort, matching orig §4.2 exactly.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary is right-associative via direct recursion: `!!x` parses as
// `!(!x)`.
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by zero or more call
// suffixes: `f(1)(2)(3)` is three nested Call nodes.
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(lexer.LEFT_PAREN) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var arguments []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arguments = append(arguments, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: arguments}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.FALSE):
		return &ast.Literal{Value: false}
	case p.match(lexer.TRUE):
		return &ast.Literal{Value: true}
	case p.match(lexer.NIL):
		return &ast.Literal{Value: nil}
	case p.match(lexer.NUMBER, lexer.STRING):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(lexer.IDENTIFIER):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.Grouping{Expression: expr}
	}
	panic(p.raise(p.peek(), "Expect expression."))
}
