package interpreter

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) runtime.Value {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpression(n.Expression, env)
	case *ast.LetStatement:
		return i.evaluateLetStatement(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case *ast.BlockStatement:
		return i.evaluateBlock(n, env)
	default:
		return runtime.Null
	}
}

// evaluateBlock stops at the first return or error and hands the sentinel
// up unchanged. Only the program and call sites unwrap returns.
func (i *Interpreter) evaluateBlock(block *ast.BlockStatement, env *runtime.Environment) runtime.Value {
	var result runtime.Value = runtime.Null
	if block == nil {
		return result
	}
	for _, stmt := range block.Statements {
		result = i.evaluateStatement(stmt, env)
		switch result.(type) {
		case *runtime.ReturnValue, *runtime.ErrorValue:
			return result
		}
	}
	return result
}

func (i *Interpreter) evaluateLetStatement(stmt *ast.LetStatement, env *runtime.Environment) runtime.Value {
	val := i.evaluateExpression(stmt.Value, env)
	if runtime.IsError(val) {
		return val
	}
	env.Set(stmt.Name.Name, val)
	return runtime.Null
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) runtime.Value {
	val := i.evaluateExpression(stmt.Value, env)
	if runtime.IsError(val) {
		return val
	}
	return &runtime.ReturnValue{Value: val}
}
