package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/printer"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindBool
	KindString
	KindNull
	KindArray
	KindHash
	KindFunction
	KindBuiltin
	KindReturnValue
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindBool:
		return "boolean"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindHash:
		return "hash"
	case KindFunction:
		return "function"
	case KindBuiltin:
		return "builtin"
	case KindReturnValue:
		return "return_value"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
	// Inspect renders the value the way the REPL displays it.
	Inspect() string
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind      { return KindInteger }
func (v IntegerValue) Inspect() string { return strconv.FormatInt(v.Val, 10) }

type BoolValue struct {
	Val bool
}

func (v *BoolValue) Kind() Kind      { return KindBool }
func (v *BoolValue) Inspect() string { return strconv.FormatBool(v.Val) }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind      { return KindString }
func (v StringValue) Inspect() string { return `"` + v.Val + `"` }

type NullValue struct{}

func (*NullValue) Kind() Kind      { return KindNull }
func (*NullValue) Inspect() string { return "null" }

// The boolean and null values are interned so equality on them is pointer
// identity.
var (
	True  = &BoolValue{Val: true}
	False = &BoolValue{Val: false}
	Null  = &NullValue{}
)

// Bool returns the interned boolean for b.
func Bool(b bool) *BoolValue {
	if b {
		return True
	}
	return False
}

// IsTruthy reports whether v selects the consequence of an if. Only null
// and false are falsy; zero, empty strings and empty collections are truthy.
func IsTruthy(v Value) bool {
	switch v {
	case Null, False:
		return false
	default:
		return v != nil
	}
}

//-----------------------------------------------------------------------------
// Collections
//-----------------------------------------------------------------------------

// ArrayValue is never mutated in place; built-ins that change an array
// return a fresh one.
type ArrayValue struct {
	Elements []Value
}

func (v *ArrayValue) Kind() Kind { return KindArray }

func (v *ArrayValue) Inspect() string {
	parts := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		parts[i] = el.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// FunctionValue closes over the environment it was defined in.
type FunctionValue struct {
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

func (v *FunctionValue) Inspect() string {
	return printer.Print(ast.NewFunctionLiteral(v.Parameters, v.Body))
}

// BuiltinFunc receives arguments that have already been evaluated. Misuse
// is reported by returning an *ErrorValue.
type BuiltinFunc func(args []Value) Value

type BuiltinValue struct {
	Name  string
	Arity int // -1 accepts any number of arguments
	Impl  BuiltinFunc
}

func (v *BuiltinValue) Kind() Kind      { return KindBuiltin }
func (v *BuiltinValue) Inspect() string { return "builtin function " + v.Name }

//-----------------------------------------------------------------------------
// Control flow
//-----------------------------------------------------------------------------

// ReturnValue marks a value produced by a return statement while blocks
// unwind. Program evaluation and function calls unwrap it.
type ReturnValue struct {
	Value Value
}

func (v *ReturnValue) Kind() Kind      { return KindReturnValue }
func (v *ReturnValue) Inspect() string { return v.Value.Inspect() }
