/*
File    : lox/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// statement dispatches on the current token to the right statement
// production. A bare expression statement is the fallthrough case.
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.Block{Statements: p.block()}
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	return &ast.Print{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.Expression{Expression: expr}
}

// block parses the statements inside `{ ... }`. The opening brace must
// already have been consumed by the caller.
func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition.")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into the
// equivalent while-loop (orig §4.2): a block holding the initializer
// followed by a while-loop whose body is the original body with the
// increment appended. A missing clause is treated as absent (init,
// incr) or literal true (cond).
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expression: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}
