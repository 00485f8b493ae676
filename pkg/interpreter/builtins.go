package interpreter

import (
	"fmt"

	"monkey/interpreter-go/pkg/runtime"
)

func (i *Interpreter) newBuiltins() map[string]*runtime.BuiltinValue {
	table := []*runtime.BuiltinValue{
		{Name: "len", Arity: 1, Impl: builtinLen},
		{Name: "first", Arity: 1, Impl: builtinFirst},
		{Name: "last", Arity: 1, Impl: builtinLast},
		{Name: "rest", Arity: 1, Impl: builtinRest},
		{Name: "push", Arity: 2, Impl: builtinPush},
		{Name: "puts", Arity: -1, Impl: i.builtinPuts},
	}
	out := make(map[string]*runtime.BuiltinValue, len(table))
	for _, b := range table {
		out[b.Name] = withArityCheck(b)
	}
	return out
}

// withArityCheck wraps a built-in so the argument count is validated before
// the implementation looks at argument types.
func withArityCheck(b *runtime.BuiltinValue) *runtime.BuiltinValue {
	if b.Arity < 0 {
		return b
	}
	impl := b.Impl
	return &runtime.BuiltinValue{
		Name:  b.Name,
		Arity: b.Arity,
		Impl: func(args []runtime.Value) runtime.Value {
			if len(args) != b.Arity {
				return runtime.NewError(runtime.ErrArgumentWrongNumber, "wrong number of arguments to `%s`: got=%d, want=%d", b.Name, len(args), b.Arity)
			}
			return impl(args)
		},
	}
}

func argumentNotSupported(name string, arg runtime.Value) *runtime.ErrorValue {
	return runtime.NewError(runtime.ErrArgumentNotSupported, "argument to `%s` not supported, got %s", name, arg.Kind())
}

func builtinLen(args []runtime.Value) runtime.Value {
	switch arg := args[0].(type) {
	case runtime.StringValue:
		return runtime.IntegerValue{Val: int64(len(arg.Val))}
	case *runtime.ArrayValue:
		return runtime.IntegerValue{Val: int64(len(arg.Elements))}
	default:
		return argumentNotSupported("len", args[0])
	}
}

func builtinFirst(args []runtime.Value) runtime.Value {
	arr, ok := args[0].(*runtime.ArrayValue)
	if !ok {
		return argumentNotSupported("first", args[0])
	}
	if len(arr.Elements) == 0 {
		return runtime.Null
	}
	return arr.Elements[0]
}

func builtinLast(args []runtime.Value) runtime.Value {
	arr, ok := args[0].(*runtime.ArrayValue)
	if !ok {
		return argumentNotSupported("last", args[0])
	}
	if len(arr.Elements) == 0 {
		return runtime.Null
	}
	return arr.Elements[len(arr.Elements)-1]
}

func builtinRest(args []runtime.Value) runtime.Value {
	arr, ok := args[0].(*runtime.ArrayValue)
	if !ok {
		return argumentNotSupported("rest", args[0])
	}
	if len(arr.Elements) == 0 {
		return runtime.Null
	}
	elements := make([]runtime.Value, len(arr.Elements)-1)
	copy(elements, arr.Elements[1:])
	return &runtime.ArrayValue{Elements: elements}
}

func builtinPush(args []runtime.Value) runtime.Value {
	arr, ok := args[0].(*runtime.ArrayValue)
	if !ok {
		return argumentNotSupported("push", args[0])
	}
	elements := make([]runtime.Value, len(arr.Elements), len(arr.Elements)+1)
	copy(elements, arr.Elements)
	elements = append(elements, args[1])
	return &runtime.ArrayValue{Elements: elements}
}

// builtinPuts prints strings without quotes and everything else through
// Inspect, one argument per line.
func (i *Interpreter) builtinPuts(args []runtime.Value) runtime.Value {
	for _, arg := range args {
		if str, ok := arg.(runtime.StringValue); ok {
			fmt.Fprintln(i.out, str.Val)
			continue
		}
		fmt.Fprintln(i.out, arg.Inspect())
	}
	return runtime.Null
}
