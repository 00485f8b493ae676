package parser

import (
	"fmt"
	"strconv"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/token"
)

func (p *Parser) parseIdentifier() (ast.Expression, error) {
	return ast.NewIdentifier(p.cur.Literal), nil
}

func (p *Parser) parseIntegerLiteral() (ast.Expression, error) {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		return nil, &Error{
			Kind:    ErrUnexpectedToken,
			Actual:  p.cur.Kind,
			Literal: p.cur.Literal,
			Detail:  fmt.Sprintf("could not parse %s as integer", p.cur.Literal),
		}
	}
	return ast.NewIntegerLiteral(value), nil
}

func (p *Parser) parseStringLiteral() (ast.Expression, error) {
	return ast.NewStringLiteral(p.cur.Literal), nil
}

func (p *Parser) parseBooleanLiteral() (ast.Expression, error) {
	return ast.NewBooleanLiteral(p.curIs(token.TRUE)), nil
}

func (p *Parser) parseArrayLiteral() (ast.Expression, error) {
	elements, err := p.parseExpressionList(token.RBRACKET)
	if err != nil {
		return nil, err
	}
	return ast.NewArrayLiteral(elements), nil
}

// { <key> : <value>, ... }
func (p *Parser) parseHashLiteral() (ast.Expression, error) {
	pairs := make([]ast.HashPair, 0)
	for !p.peekIs(token.RBRACE) {
		p.nextToken()
		key, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.COLON); err != nil {
			return nil, err
		}
		p.nextToken()
		value, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ast.HashPair{Key: key, Value: value})
		if !p.peekIs(token.RBRACE) {
			if err := p.expectPeek(token.COMMA); err != nil {
				return nil, err
			}
		}
	}
	if err := p.expectPeek(token.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewHashLiteral(pairs), nil
}

// fn ( <params> ) { <body> }
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	params, err := p.parseFunctionParameters()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionLiteral(params, body), nil
}
