package value

import "fmt"

// ErrKind enumerates the ExecutionError taxonomy from spec §7. It is
// non-exhaustive by design: HostFunctionError wraps an arbitrary host error.
type ErrKind int

const (
	Parse ErrKind = iota
	NoSuchVariable
	NoSuchFunction
	NoSuchOverload
	NoSuchKey
	NoSuchField
	IndexOutOfBounds
	DivideByZero
	Overflow
	ConversionError
	UnsupportedBinaryOperator
	MaxRecursionDepth
	InvalidArgument
	HostFunctionError
)

func (k ErrKind) String() string {
	switch k {
	case Parse:
		return "Parse"
	case NoSuchVariable:
		return "NoSuchVariable"
	case NoSuchFunction:
		return "NoSuchFunction"
	case NoSuchOverload:
		return "NoSuchOverload"
	case NoSuchKey:
		return "NoSuchKey"
	case NoSuchField:
		return "NoSuchField"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case DivideByZero:
		return "DivideByZero"
	case Overflow:
		return "Overflow"
	case ConversionError:
		return "ConversionError"
	case UnsupportedBinaryOperator:
		return "UnsupportedBinaryOperator"
	case MaxRecursionDepth:
		return "MaxRecursionDepth"
	case InvalidArgument:
		return "InvalidArgument"
	case HostFunctionError:
		return "HostFunctionError"
	}
	return "Unknown"
}

// Err is CEL's error-as-value: it satisfies Value so that it can flow
// through the same plumbing (selection, list construction, comparisons)
// as any other value without the interpreter special-casing errors at every
// call site, mirroring common/types/err.go in the teacher.
type Err struct {
	Code    ErrKind
	Message string
	// NodeID is the AST node id where the error originated, for diagnostics
	// (spec §7: "naming the kind and the offending AST node id"). Zero means
	// unset; the interpreter fills it in as the error propagates upward if
	// it is still zero.
	NodeID int64
	// Inner wraps the host's own error for HostFunctionError.
	Inner error
}

var _ Value = (*Err)(nil)

// NewErrf constructs an *Err with a formatted message.
func NewErrf(kind ErrKind, format string, args ...interface{}) *Err {
	return &Err{Code: kind, Message: fmt.Sprintf(format, args...)}
}

// NewHostErr wraps a host function's own error.
func NewHostErr(err error) *Err {
	return &Err{Code: HostFunctionError, Message: err.Error(), Inner: err}
}

func (e *Err) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Err) Unwrap() error { return e.Inner }

// -- Value interface --

func (e *Err) Kind() Kind        { return KindErr }
func (e *Err) TypeName() string  { return "error" }
func (e *Err) Equal(other Value) bool {
	// Errors are never equal to anything, including another error, matching
	// CEL's propagate-don't-compare treatment of errors.
	return false
}

// IsError reports whether v is an *Err, the idiom used throughout the
// interpreter and standard library instead of a type switch at every site.
func IsError(v Value) bool {
	_, ok := v.(*Err)
	return ok
}

// AsError returns v as *Err and true if it is one.
func AsError(v Value) (*Err, bool) {
	e, ok := v.(*Err)
	return e, ok
}

// WithNodeID returns e with NodeID set if it was previously zero, otherwise
// e unchanged (the innermost node id wins, matching the evaluator walking
// outward after the error is first produced).
func (e *Err) WithNodeID(id int64) *Err {
	if e.NodeID != 0 {
		return e
	}
	return &Err{Code: e.Code, Message: e.Message, NodeID: id, Inner: e.Inner}
}
