package parser

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/token"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// let <ident> = <expr>
func (p *Parser) parseLetStatement() (*ast.LetStatement, error) {
	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	name := ast.NewIdentifier(p.cur.Literal)
	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	p.nextToken()
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return ast.NewLetStatement(name, value), nil
}

// return <expr>
func (p *Parser) parseReturnStatement() (*ast.ReturnStatement, error) {
	p.nextToken()
	value, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return ast.NewReturnStatement(value), nil
}

func (p *Parser) parseExpressionStatement() (*ast.ExpressionStatement, error) {
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	return ast.NewExpressionStatement(expr), nil
}

// parseBlockStatement expects cur on the opening brace and leaves cur on the
// closing one.
func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	stmts := make([]ast.Statement, 0)
	p.nextToken()
	for !p.curIs(token.RBRACE) {
		if p.curIs(token.EOF) {
			return nil, unexpectedToken(token.RBRACE, p.cur)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.endStatement(token.RBRACE); err != nil {
			return nil, err
		}
	}
	return ast.NewBlockStatement(stmts), nil
}
