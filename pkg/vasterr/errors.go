// Package vasterr defines the error taxonomy shared by every package in
// this module: a closed set of error kinds plus a typed error carrying an
// optional underlying cause, so callers can branch on intent rather than
// message text.
package vasterr

// Kind classifies an error so callers can branch on it programmatically.
type Kind int

const (
	Unspecified Kind = iota
	SyntaxError
	UnknownSymbol
	InvalidSpawn
	MissingComponent
	AlreadyExists
	UnexpectedArguments
	Timeout
	InconsistentSchema
	IOError
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case SyntaxError:
		return "syntax_error"
	case UnknownSymbol:
		return "unknown_symbol"
	case InvalidSpawn:
		return "invalid_spawn"
	case MissingComponent:
		return "missing_component"
	case AlreadyExists:
		return "already_exists"
	case UnexpectedArguments:
		return "unexpected_arguments"
	case Timeout:
		return "timeout"
	case InconsistentSchema:
		return "inconsistent_schema"
	case IOError:
		return "io_error"
	default:
		return "unspecified"
	}
}

// Error is a typed error with a stable Kind and an optional underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Kind.String() + ": " + e.Msg + ": " + e.Err.Error()
	}
	return e.Kind.String() + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error with no underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds an *Error that carries cause as its Unwrap target.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Is reports whether err is a *Error of the given kind.
func Is(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e != nil && e.Kind == kind
}
