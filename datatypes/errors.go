package datatypes

import (
	"errors"
	"fmt"
)

// Dynamic errors raised by datatype operations. The literal layer turns all of
// them into the null literal.
var (
	ErrDivideByZero        = errors.New("division by zero")
	ErrOverOrUnderFlow     = errors.New("numeric overflow or underflow")
	ErrInvalidValueForCast = errors.New("value not representable in target datatype")
	ErrUnsupported         = errors.New("operation not supported")
)

// Registration errors.
var (
	ErrSlotOccupied    = errors.New("fixed datatype slot already occupied")
	ErrNotFixed        = errors.New("datatype identity is not fixed")
	ErrIRIMismatch     = errors.New("datatype IRI does not match fixed identity")
	ErrCyclicHierarchy = errors.New("cyclic datatype hierarchy")
	ErrInvalidStub     = errors.New("numeric stub does not reach a numeric implementation")
)

// ParseError is returned when a lexical form is not valid for a datatype.
type ParseError struct {
	Datatype string
	Lexical  string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid lexical form %q for %s: %v", e.Lexical, e.Datatype, e.Err)
	}
	return fmt.Sprintf("invalid lexical form %q for %s", e.Lexical, e.Datatype)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError returns a *ParseError for dt.
func NewParseError(dt Datatype, lexical string, err error) error {
	return &ParseError{Datatype: dt.IRI(), Lexical: lexical, Err: err}
}

// CastError reports that v could not be converted to the Go type T.
func CastError[T any](v any) error {
	var t T
	return fmt.Errorf("%w: can not convert %T %v to %T", ErrInvalidValueForCast, v, v, t)
}
