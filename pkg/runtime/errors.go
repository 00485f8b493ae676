package runtime

import "fmt"

// ErrorKind classifies evaluation failures.
type ErrorKind string

const (
	ErrTypeMismatch             ErrorKind = "type_mismatch"
	ErrUnknownOperator          ErrorKind = "unknown_operator"
	ErrIdentifierNotFound       ErrorKind = "identifier_not_found"
	ErrNotAFunction             ErrorKind = "not_a_function"
	ErrArgumentWrongNumber      ErrorKind = "argument_wrong_number"
	ErrArgumentNotSupported     ErrorKind = "argument_not_supported"
	ErrIndexOperatorUnsupported ErrorKind = "index_operator_not_supported"
	ErrInvalidHashKey           ErrorKind = "invalid_hash_key"
	ErrDivisionByZero           ErrorKind = "division_by_zero"
)

// ErrorValue is an ordinary runtime value. The evaluator threads it through
// the same return channel as every other result and stops at the first one.
type ErrorValue struct {
	ErrKind ErrorKind
	Message string
}

func (v *ErrorValue) Kind() Kind      { return KindError }
func (v *ErrorValue) Inspect() string { return v.Message }

// Error lets hosts surface an evaluation failure as a Go error.
func (v *ErrorValue) Error() string { return v.Message }

// NewError formats an error value of the given kind.
func NewError(kind ErrorKind, format string, args ...any) *ErrorValue {
	return &ErrorValue{ErrKind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsError reports whether v is an error value.
func IsError(v Value) bool {
	_, ok := v.(*ErrorValue)
	return ok
}

// AsError returns v as an error value when it is one.
func AsError(v Value) (*ErrorValue, bool) {
	e, ok := v.(*ErrorValue)
	return e, ok
}
