package parser

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/token"
)

// parseExpression is the Pratt loop: one prefix expression, then infix
// continuations for as long as the next operator binds tighter than
// precedence. Equal precedence stops the loop, which makes every binary
// operator left-associative.
func (p *Parser) parseExpression(precedence int) (ast.Expression, error) {
	prefix, ok := p.prefixFns[p.cur.Kind]
	if !ok {
		return nil, noPrefixParseFunction(p.cur)
	}
	left, err := prefix()
	if err != nil {
		return nil, err
	}
	for !p.peekIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peek.Kind]
		if !ok {
			return left, nil
		}
		p.nextToken()
		left, err = infix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) parsePrefixExpression() (ast.Expression, error) {
	operator := p.cur.Literal
	p.nextToken()
	right, err := p.parseExpression(precPrefix)
	if err != nil {
		return nil, err
	}
	return ast.NewPrefixExpression(operator, right), nil
}

func (p *Parser) parseInfixExpression(left ast.Expression) (ast.Expression, error) {
	operator := p.cur.Literal
	precedence := p.curPrecedence()
	p.nextToken()
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return ast.NewInfixExpression(operator, left, right), nil
}

func (p *Parser) parseGroupedExpression() (ast.Expression, error) {
	p.nextToken()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return expr, nil
}

// if ( <cond> ) { ... } [ else { ... } ]
func (p *Parser) parseIfExpression() (ast.Expression, error) {
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	p.nextToken()
	cond, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	consequence, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	var alternative *ast.BlockStatement
	if p.peekIs(token.ELSE) {
		p.nextToken()
		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}
		alternative, err = p.parseBlockStatement()
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfExpression(cond, consequence, alternative), nil
}

func (p *Parser) parseCallExpression(callee ast.Expression) (ast.Expression, error) {
	args, err := p.parseExpressionList(token.RPAREN)
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpression(callee, args), nil
}

func (p *Parser) parseIndexExpression(left ast.Expression) (ast.Expression, error) {
	p.nextToken()
	index, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RBRACKET); err != nil {
		return nil, err
	}
	return ast.NewIndexExpression(left, index), nil
}
