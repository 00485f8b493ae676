package driver

import (
	"bytes"
	"fmt"
	"os"

	"monkey/interpreter-go/pkg/interpreter"
	"monkey/interpreter-go/pkg/parser"
	"monkey/interpreter-go/pkg/runtime"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Session feeds source text through the parser and a single interpreter, so
// bindings made by one Run are visible to the next.
type Session struct {
	interp *interpreter.Interpreter
}

// NewSession creates a session around a fresh interpreter.
func NewSession(opts ...interpreter.Option) *Session {
	return &Session{interp: interpreter.New(opts...)}
}

// Interpreter exposes the underlying interpreter.
func (s *Session) Interpreter() *interpreter.Interpreter {
	return s.interp
}

// Run parses and evaluates src. The error is non-nil only for syntax
// errors, in which case nothing is evaluated. Evaluation failures come back
// as a *runtime.ErrorValue result.
func (s *Session) Run(src string) (runtime.Value, error) {
	program, err := parser.ParseProgram(src)
	if err != nil {
		return nil, err
	}
	return s.interp.EvaluateProgram(program), nil
}

// ReadSource loads a script from disk and drops a leading UTF-8 byte order
// mark.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}
