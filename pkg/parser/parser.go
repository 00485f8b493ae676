// Package parser builds Monkey ASTs from a token stream.
//
// Statements are parsed by recursive descent; expressions use Pratt parsing
// with one prefix handler per token that can start an expression and one
// infix handler per token that can continue one.
package parser

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/lexer"
	"monkey/interpreter-go/pkg/token"
)

// Binding power, lowest first.
const (
	_ int = iota
	precLowest
	precEquals      // == !=
	precLessGreater // < >
	precSum         // + -
	precProduct     // * /
	precPrefix      // -x !x
	precCall        // f(x)
	precIndex       // a[i]
)

var precedences = map[token.Kind]int{
	token.EQ:       precEquals,
	token.NOT_EQ:   precEquals,
	token.LT:       precLessGreater,
	token.GT:       precLessGreater,
	token.PLUS:     precSum,
	token.MINUS:    precSum,
	token.SLASH:    precProduct,
	token.ASTERISK: precProduct,
	token.LPAREN:   precCall,
	token.LBRACKET: precIndex,
}

type (
	prefixParseFn func() (ast.Expression, error)
	infixParseFn  func(ast.Expression) (ast.Expression, error)
)

// Parser consumes tokens from a lexer with one token of lookahead.
type Parser struct {
	l    *lexer.Lexer
	cur  token.Token
	peek token.Token

	prefixFns map[token.Kind]prefixParseFn
	infixFns  map[token.Kind]infixParseFn
}

// New primes the current and peek tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.prefixFns = map[token.Kind]prefixParseFn{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntegerLiteral,
		token.STRING:   p.parseStringLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.BANG:     p.parsePrefixExpression,
		token.MINUS:    p.parsePrefixExpression,
		token.LPAREN:   p.parseGroupedExpression,
		token.IF:       p.parseIfExpression,
		token.FUNCTION: p.parseFunctionLiteral,
		token.LBRACKET: p.parseArrayLiteral,
		token.LBRACE:   p.parseHashLiteral,
	}
	p.infixFns = map[token.Kind]infixParseFn{
		token.PLUS:     p.parseInfixExpression,
		token.MINUS:    p.parseInfixExpression,
		token.SLASH:    p.parseInfixExpression,
		token.ASTERISK: p.parseInfixExpression,
		token.EQ:       p.parseInfixExpression,
		token.NOT_EQ:   p.parseInfixExpression,
		token.LT:       p.parseInfixExpression,
		token.GT:       p.parseInfixExpression,
		token.LPAREN:   p.parseCallExpression,
		token.LBRACKET: p.parseIndexExpression,
	}
	p.nextToken()
	p.nextToken()
	return p
}

// ParseProgram lexes and parses source in one step.
func ParseProgram(source string) (*ast.Program, error) {
	return New(lexer.New(source)).ParseProgram()
}

// ParseProgram parses statements until EOF. It returns the first syntax
// error encountered and no partial tree.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	stmts := make([]ast.Statement, 0)
	for p.cur.Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.endStatement(token.EOF); err != nil {
			return nil, err
		}
	}
	return ast.NewProgram(stmts), nil
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.cur.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peek.Kind == kind }

// expectPeek advances when the peek token has the wanted kind and fails
// otherwise.
func (p *Parser) expectPeek(kind token.Kind) error {
	if !p.peekIs(kind) {
		return unexpectedToken(kind, p.peek)
	}
	p.nextToken()
	return nil
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Kind]; ok {
		return prec
	}
	return precLowest
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return precLowest
}

// endStatement runs with cur on the last token of a statement. It consumes
// the separating semicolon and moves cur to the first token of whatever
// follows. The semicolon may only be left out before the closing token.
func (p *Parser) endStatement(closing token.Kind) error {
	switch {
	case p.peekIs(token.SEMICOLON):
		p.nextToken()
	case p.peekIs(closing), p.peekIs(token.EOF):
		// the closing token is checked by the caller
	default:
		return unexpectedToken(token.SEMICOLON, p.peek)
	}
	p.nextToken()
	return nil
}
