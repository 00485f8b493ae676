// Package printer renders AST nodes back to Monkey source.
//
// Operator expressions are fully parenthesised, so two trees of different
// shape never print the same way and the output always re-parses to the
// tree it came from.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"monkey/interpreter-go/pkg/ast"
)

// Print returns the canonical source form of node.
func Print(node ast.Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

func writeNode(b *strings.Builder, node ast.Node) {
	switch n := node.(type) {
	case nil:
		return
	case *ast.Program:
		writeStatements(b, n.Statements)
	case ast.Statement:
		writeStatement(b, n)
	case ast.Expression:
		writeExpression(b, n)
	default:
		fmt.Fprintf(b, "<%s>", node.NodeType())
	}
}

func writeStatements(b *strings.Builder, stmts []ast.Statement) {
	for i, stmt := range stmts {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeStatement(b, stmt)
	}
}

func writeStatement(b *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		b.WriteString("let ")
		if s.Name != nil {
			b.WriteString(s.Name.Name)
		}
		b.WriteString(" = ")
		writeExpression(b, s.Value)
		b.WriteByte(';')
	case *ast.ReturnStatement:
		b.WriteString("return ")
		writeExpression(b, s.Value)
		b.WriteByte(';')
	case *ast.ExpressionStatement:
		writeExpression(b, s.Expression)
		b.WriteByte(';')
	case *ast.BlockStatement:
		writeBlock(b, s)
	default:
		fmt.Fprintf(b, "<%s>", stmt.NodeType())
	}
}

func writeBlock(b *strings.Builder, block *ast.BlockStatement) {
	if block == nil || len(block.Statements) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	writeStatements(b, block.Statements)
	b.WriteString("\n}")
}

func writeExpression(b *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case nil:
		return
	case *ast.Identifier:
		b.WriteString(e.Name)
	case *ast.IntegerLiteral:
		b.WriteString(strconv.FormatInt(e.Value, 10))
	case *ast.StringLiteral:
		b.WriteByte('"')
		b.WriteString(e.Value)
		b.WriteByte('"')
	case *ast.BooleanLiteral:
		b.WriteString(strconv.FormatBool(e.Value))
	case *ast.ArrayLiteral:
		b.WriteByte('[')
		writeList(b, e.Elements)
		b.WriteByte(']')
	case *ast.HashLiteral:
		b.WriteByte('{')
		for i, pair := range e.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpression(b, pair.Key)
			b.WriteString(": ")
			writeExpression(b, pair.Value)
		}
		b.WriteByte('}')
	case *ast.FunctionLiteral:
		b.WriteString("fn(")
		for i, param := range e.Parameters {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(param.Name)
		}
		b.WriteString(") ")
		writeBlock(b, e.Body)
	case *ast.PrefixExpression:
		b.WriteByte('(')
		b.WriteString(e.Operator)
		writeExpression(b, e.Right)
		b.WriteByte(')')
	case *ast.InfixExpression:
		b.WriteByte('(')
		writeExpression(b, e.Left)
		b.WriteByte(' ')
		b.WriteString(e.Operator)
		b.WriteByte(' ')
		writeExpression(b, e.Right)
		b.WriteByte(')')
	case *ast.IndexExpression:
		b.WriteByte('(')
		writeExpression(b, e.Left)
		b.WriteByte('[')
		writeExpression(b, e.Index)
		b.WriteString("])")
	case *ast.CallExpression:
		writeExpression(b, e.Function)
		b.WriteByte('(')
		writeList(b, e.Arguments)
		b.WriteByte(')')
	case *ast.IfExpression:
		b.WriteString("if (")
		writeExpression(b, e.Condition)
		b.WriteString(") ")
		writeBlock(b, e.Consequence)
		if e.Alternative != nil {
			b.WriteString(" else ")
			writeBlock(b, e.Alternative)
		}
	default:
		fmt.Fprintf(b, "<%s>", expr.NodeType())
	}
}

func writeList(b *strings.Builder, exprs []ast.Expression) {
	for i, expr := range exprs {
		if i > 0 {
			b.WriteString(", ")
		}
		writeExpression(b, expr)
	}
}
