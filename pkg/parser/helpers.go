package parser

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/token"
)

// parseExpressionList reads comma separated expressions up to end. cur is
// the opening delimiter on entry and end on exit. Call arguments and array
// elements share it.
func (p *Parser) parseExpressionList(end token.Kind) ([]ast.Expression, error) {
	list := make([]ast.Expression, 0)
	if p.peekIs(end) {
		p.nextToken()
		return list, nil
	}
	p.nextToken()
	expr, err := p.parseExpression(precLowest)
	if err != nil {
		return nil, err
	}
	list = append(list, expr)
	for p.peekIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		expr, err := p.parseExpression(precLowest)
		if err != nil {
			return nil, err
		}
		list = append(list, expr)
	}
	if err := p.expectPeek(end); err != nil {
		return nil, err
	}
	return list, nil
}

// parseFunctionParameters reads identifiers between parentheses. cur is the
// opening parenthesis on entry and the closing one on exit.
func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, error) {
	params := make([]*ast.Identifier, 0)
	if p.peekIs(token.RPAREN) {
		p.nextToken()
		return params, nil
	}
	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	params = append(params, ast.NewIdentifier(p.cur.Literal))
	for p.peekIs(token.COMMA) {
		p.nextToken()
		if err := p.expectPeek(token.IDENT); err != nil {
			return nil, err
		}
		params = append(params, ast.NewIdentifier(p.cur.Literal))
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}
