package interpreter

import (
	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) runtime.Value {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}
	case *ast.BooleanLiteral:
		return runtime.Bool(n.Value)
	case *ast.Identifier:
		return i.evaluateIdentifier(n, env)
	case *ast.ArrayLiteral:
		elements, errVal := i.evaluateExpressions(n.Elements, env)
		if errVal != nil {
			return errVal
		}
		return &runtime.ArrayValue{Elements: elements}
	case *ast.HashLiteral:
		return i.evaluateHashLiteral(n, env)
	case *ast.FunctionLiteral:
		return &runtime.FunctionValue{Parameters: n.Parameters, Body: n.Body, Env: env}
	case *ast.PrefixExpression:
		right := i.evaluateExpression(n.Right, env)
		if runtime.IsError(right) {
			return right
		}
		return evaluatePrefixOperator(n.Operator, right)
	case *ast.InfixExpression:
		left := i.evaluateExpression(n.Left, env)
		if runtime.IsError(left) {
			return left
		}
		right := i.evaluateExpression(n.Right, env)
		if runtime.IsError(right) {
			return right
		}
		return evaluateInfixOperator(n.Operator, left, right)
	case *ast.IfExpression:
		return i.evaluateIfExpression(n, env)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	case *ast.IndexExpression:
		left := i.evaluateExpression(n.Left, env)
		if runtime.IsError(left) {
			return left
		}
		index := i.evaluateExpression(n.Index, env)
		if runtime.IsError(index) {
			return index
		}
		return evaluateIndex(left, index)
	default:
		return runtime.Null
	}
}

// evaluateIdentifier prefers environment bindings, so a let can shadow a
// built-in.
func (i *Interpreter) evaluateIdentifier(ident *ast.Identifier, env *runtime.Environment) runtime.Value {
	if val, ok := env.Get(ident.Name); ok {
		return val
	}
	if builtin, ok := i.builtins[ident.Name]; ok {
		return builtin
	}
	return runtime.NewError(runtime.ErrIdentifierNotFound, "identifier not found: %s", ident.Name)
}

// evaluateExpressions evaluates left to right and stops at the first error.
func (i *Interpreter) evaluateExpressions(exprs []ast.Expression, env *runtime.Environment) ([]runtime.Value, *runtime.ErrorValue) {
	values := make([]runtime.Value, 0, len(exprs))
	for _, expr := range exprs {
		val := i.evaluateExpression(expr, env)
		if errVal, ok := runtime.AsError(val); ok {
			return nil, errVal
		}
		values = append(values, val)
	}
	return values, nil
}

func (i *Interpreter) evaluateHashLiteral(lit *ast.HashLiteral, env *runtime.Environment) runtime.Value {
	hash := runtime.NewHash()
	for _, pair := range lit.Pairs {
		key := i.evaluateExpression(pair.Key, env)
		if runtime.IsError(key) {
			return key
		}
		hashKey, ok := runtime.HashKeyOf(key)
		if !ok {
			return runtime.NewError(runtime.ErrInvalidHashKey, "unusable as hash key: %s", key.Kind())
		}
		val := i.evaluateExpression(pair.Value, env)
		if runtime.IsError(val) {
			return val
		}
		hash.Set(hashKey, runtime.HashPair{Key: key, Value: val})
	}
	return hash
}

func (i *Interpreter) evaluateIfExpression(expr *ast.IfExpression, env *runtime.Environment) runtime.Value {
	cond := i.evaluateExpression(expr.Condition, env)
	if runtime.IsError(cond) {
		return cond
	}
	if runtime.IsTruthy(cond) {
		return i.evaluateBlock(expr.Consequence, env)
	}
	if expr.Alternative != nil {
		return i.evaluateBlock(expr.Alternative, env)
	}
	return runtime.Null
}

func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression, env *runtime.Environment) runtime.Value {
	callee := i.evaluateExpression(call.Function, env)
	if runtime.IsError(callee) {
		return callee
	}
	args, errVal := i.evaluateExpressions(call.Arguments, env)
	if errVal != nil {
		return errVal
	}
	return i.applyFunction(callee, args)
}

// applyFunction calls a user function in a scope nested under its closure,
// not under the caller, which is what makes scoping lexical. Arity is not
// checked for user functions: extra arguments are dropped and missing
// parameters stay unbound.
func (i *Interpreter) applyFunction(callee runtime.Value, args []runtime.Value) runtime.Value {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		callEnv := runtime.NewEnvironment(fn.Env)
		for idx, param := range fn.Parameters {
			if idx >= len(args) {
				break
			}
			callEnv.Set(param.Name, args[idx])
		}
		result := i.evaluateBlock(fn.Body, callEnv)
		if ret, ok := result.(*runtime.ReturnValue); ok {
			return ret.Value
		}
		return result
	case *runtime.BuiltinValue:
		return fn.Impl(args)
	default:
		return runtime.NewError(runtime.ErrNotAFunction, "not a function: %s", callee.Kind())
	}
}

func evaluateIndex(left, index runtime.Value) runtime.Value {
	switch collection := left.(type) {
	case *runtime.ArrayValue:
		idx, ok := index.(runtime.IntegerValue)
		if !ok {
			return runtime.NewError(runtime.ErrIndexOperatorUnsupported, "index operator not supported: %s", left.Kind())
		}
		if idx.Val < 0 || idx.Val >= int64(len(collection.Elements)) {
			return runtime.Null
		}
		return collection.Elements[idx.Val]
	case *runtime.HashValue:
		key, ok := runtime.HashKeyOf(index)
		if !ok {
			return runtime.NewError(runtime.ErrInvalidHashKey, "unusable as hash key: %s", index.Kind())
		}
		pair, ok := collection.Get(key)
		if !ok {
			return runtime.Null
		}
		return pair.Value
	default:
		return runtime.NewError(runtime.ErrIndexOperatorUnsupported, "index operator not supported: %s", left.Kind())
	}
}
