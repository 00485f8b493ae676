package interpreter

import (
	"testing"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/parser"
	"monkey/interpreter-go/pkg/runtime"
)

func mustParse(t testing.TB, source string) *ast.Program {
	t.Helper()
	program, err := parser.ParseProgram(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return program
}

// evalSource parses and evaluates source in a fresh interpreter.
func evalSource(t testing.TB, source string, opts ...Option) runtime.Value {
	t.Helper()
	return New(opts...).EvaluateProgram(mustParse(t, source))
}

func expectInteger(t testing.TB, source string, val runtime.Value, want int64) {
	t.Helper()
	iv, ok := val.(runtime.IntegerValue)
	if !ok {
		t.Fatalf("%q: expected integer %d, got %s (%s)", source, want, val.Kind(), val.Inspect())
	}
	if iv.Val != want {
		t.Fatalf("%q: expected %d, got %d", source, want, iv.Val)
	}
}

func expectError(t testing.TB, source string, val runtime.Value, kind runtime.ErrorKind, message string) {
	t.Helper()
	errVal, ok := runtime.AsError(val)
	if !ok {
		t.Fatalf("%q: expected error %q, got %s (%s)", source, message, val.Kind(), val.Inspect())
	}
	if errVal.ErrKind != kind {
		t.Fatalf("%q: expected error kind %s, got %s", source, kind, errVal.ErrKind)
	}
	if errVal.Message != message {
		t.Fatalf("%q: expected message %q, got %q", source, message, errVal.Message)
	}
}
