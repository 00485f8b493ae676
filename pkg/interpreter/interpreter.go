package interpreter

import (
	"io"
	"os"

	"monkey/interpreter-go/pkg/ast"
	"monkey/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Monkey AST nodes.
type Interpreter struct {
	global   *runtime.Environment
	builtins map[string]*runtime.BuiltinValue
	out      io.Writer
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput sets the writer used by the puts built-in.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		if w != nil {
			i.out = w
		}
	}
}

// New returns an interpreter with an empty global environment.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global: runtime.NewEnvironment(nil),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.builtins = i.newBuiltins()
	return i
}

// GlobalEnvironment returns the interpreter’s global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Builtin looks up a native function by name.
func (i *Interpreter) Builtin(name string) (*runtime.BuiltinValue, bool) {
	b, ok := i.builtins[name]
	return b, ok
}

// EvaluateProgram runs program against the global environment, so bindings
// persist between calls.
func (i *Interpreter) EvaluateProgram(program *ast.Program) runtime.Value {
	return i.Evaluate(program, i.global)
}

// Evaluate walks node in env. It never returns nil, and failures come back
// as *runtime.ErrorValue.
func (i *Interpreter) Evaluate(node ast.Node, env *runtime.Environment) runtime.Value {
	switch n := node.(type) {
	case *ast.Program:
		return i.evaluateProgram(n, env)
	case ast.Statement:
		return i.evaluateStatement(n, env)
	case ast.Expression:
		return i.evaluateExpression(n, env)
	default:
		return runtime.Null
	}
}

func (i *Interpreter) evaluateProgram(program *ast.Program, env *runtime.Environment) runtime.Value {
	var result runtime.Value = runtime.Null
	for _, stmt := range program.Statements {
		result = i.evaluateStatement(stmt, env)
		switch r := result.(type) {
		case *runtime.ReturnValue:
			return r.Value
		case *runtime.ErrorValue:
			return r
		}
	}
	return result
}
