package interpreter

import (
	"monkey/interpreter-go/pkg/runtime"
)

func evaluatePrefixOperator(operator string, right runtime.Value) runtime.Value {
	switch operator {
	case "!":
		return evaluateBangOperator(right)
	case "-":
		iv, ok := right.(runtime.IntegerValue)
		if !ok {
			return runtime.NewError(runtime.ErrUnknownOperator, "unknown operator: -%s", right.Kind())
		}
		return runtime.IntegerValue{Val: -iv.Val}
	default:
		return runtime.NewError(runtime.ErrUnknownOperator, "unknown operator: %s%s", operator, right.Kind())
	}
}

// evaluateBangOperator never fails: anything that is not false or null
// negates to false.
func evaluateBangOperator(right runtime.Value) runtime.Value {
	switch right {
	case runtime.True:
		return runtime.False
	case runtime.False, runtime.Null:
		return runtime.True
	default:
		return runtime.False
	}
}

// evaluateInfixOperator dispatches on the pair of operand kinds. A kind
// mismatch is only reported once no same-kind rule applies, so two arrays
// give "unknown operator" while an array and an integer give "type mismatch".
func evaluateInfixOperator(operator string, left, right runtime.Value) runtime.Value {
	switch l := left.(type) {
	case runtime.IntegerValue:
		if r, ok := right.(runtime.IntegerValue); ok {
			return evaluateIntegerInfix(operator, l, r)
		}
	case *runtime.BoolValue:
		if r, ok := right.(*runtime.BoolValue); ok {
			return evaluateBooleanInfix(operator, l, r)
		}
	case runtime.StringValue:
		if r, ok := right.(runtime.StringValue); ok {
			return evaluateStringInfix(operator, l, r)
		}
	}
	if left.Kind() != right.Kind() {
		return runtime.NewError(runtime.ErrTypeMismatch, "type mismatch: %s %s %s", left.Kind(), operator, right.Kind())
	}
	return unknownInfixOperator(operator, left, right)
}

func evaluateIntegerInfix(operator string, left, right runtime.IntegerValue) runtime.Value {
	switch operator {
	case "+":
		return runtime.IntegerValue{Val: left.Val + right.Val}
	case "-":
		return runtime.IntegerValue{Val: left.Val - right.Val}
	case "*":
		return runtime.IntegerValue{Val: left.Val * right.Val}
	case "/":
		if right.Val == 0 {
			return runtime.NewError(runtime.ErrDivisionByZero, "division by zero: %d / 0", left.Val)
		}
		return runtime.IntegerValue{Val: left.Val / right.Val}
	case "<":
		return runtime.Bool(left.Val < right.Val)
	case ">":
		return runtime.Bool(left.Val > right.Val)
	case "==":
		return runtime.Bool(left.Val == right.Val)
	case "!=":
		return runtime.Bool(left.Val != right.Val)
	default:
		return unknownInfixOperator(operator, left, right)
	}
}

// Booleans are interned, so pointer identity is value equality.
func evaluateBooleanInfix(operator string, left, right *runtime.BoolValue) runtime.Value {
	switch operator {
	case "==":
		return runtime.Bool(left == right)
	case "!=":
		return runtime.Bool(left != right)
	default:
		return unknownInfixOperator(operator, left, right)
	}
}

func evaluateStringInfix(operator string, left, right runtime.StringValue) runtime.Value {
	if operator != "+" {
		return unknownInfixOperator(operator, left, right)
	}
	return runtime.StringValue{Val: left.Val + right.Val}
}

func unknownInfixOperator(operator string, left, right runtime.Value) *runtime.ErrorValue {
	return runtime.NewError(runtime.ErrUnknownOperator, "unknown operator: %s %s %s", left.Kind(), operator, right.Kind())
}
