package literal

import (
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// TriBool is the result of a predicate that may fail.
type TriBool int8

const (
	TriFalse TriBool = iota
	TriTrue
	// TriError is the result of a predicate on incomparable or invalid operands.
	TriError
)

func triBool(b bool) TriBool {
	if b {
		return TriTrue
	}
	return TriFalse
}

// And is the three-valued conjunction, false wins over an error.
func (b TriBool) And(c TriBool) TriBool {
	switch {
	case b == TriFalse || c == TriFalse:
		return TriFalse
	case b == TriError || c == TriError:
		return TriError
	}
	return TriTrue
}

// Or is the three-valued disjunction, true wins over an error.
func (b TriBool) Or(c TriBool) TriBool {
	switch {
	case b == TriTrue || c == TriTrue:
		return TriTrue
	case b == TriError || c == TriError:
		return TriError
	}
	return TriFalse
}

func (b TriBool) Not() TriBool {
	switch b {
	case TriTrue:
		return TriFalse
	case TriFalse:
		return TriTrue
	}
	return TriError
}

// Literal returns b as an xsd:boolean, null for TriError.
func (b TriBool) Literal() Literal {
	if b == TriError {
		return Literal{}
	}
	return MakeBoolean(b == TriTrue)
}

func (b TriBool) String() string {
	switch b {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	}
	return "error"
}

func (l Literal) sameHandle(other Literal) bool {
	return l.datatype == other.datatype &&
		l.inline == other.inline &&
		l.payload == other.payload &&
		l.node == other.node &&
		l.store == other.store
}

// Compare compares the values of two literals.
//
// Literals of the same datatype are compared by the datatype's comparator. Literals of
// different datatypes are converted to their common datatype first. The result is
// Unordered if either literal is null, no comparator is registered or the datatypes
// have no common datatype.
func (l Literal) Compare(other Literal) datatypes.Ordering {
	if l.IsNull() || other.IsNull() {
		return datatypes.Unordered
	}
	if l.sameHandle(other) {
		return datatypes.Equivalent
	}
	r := Registry()
	if l.datatype == other.datatype {
		c, _ := r.Comparer(l.datatype)
		if c == nil {
			return datatypes.Unordered
		}
		a, ok1 := l.Value()
		b, ok2 := other.Value()
		if !ok1 || !ok2 {
			return datatypes.Unordered
		}
		return c.Compare(a, b)
	}

	cc, ok := r.CommonConversion(l.datatype, other.datatype)
	if !ok {
		return datatypes.Unordered
	}
	c, _ := r.Comparer(cc.Target)
	if c == nil {
		return datatypes.Unordered
	}
	a, ok1 := l.Value()
	b, ok2 := other.Value()
	if !ok1 || !ok2 {
		return datatypes.Unordered
	}
	return c.Compare(cc.LHS.Convert(a), cc.RHS.Convert(b))
}

// CompareWithExtensions is a total order on literals for sorting. Null is smallest.
// Where Compare is not decisive literals of different datatypes are ordered by
// datatype identity, literals of the same datatype by lexical form and language tag.
func (l Literal) CompareWithExtensions(other Literal) datatypes.Ordering {
	switch {
	case l.IsNull() && other.IsNull():
		return datatypes.Equivalent
	case l.IsNull():
		return datatypes.Less
	case other.IsNull():
		return datatypes.Greater
	}
	if o := l.Compare(other); o == datatypes.Less || o == datatypes.Greater {
		return o
	}
	if l.datatype != other.datatype {
		return datatypes.OrderingOf(l.datatype.Compare(other.datatype))
	}
	if c := strings.Compare(l.LexicalForm(), other.LexicalForm()); c != 0 {
		return datatypes.OrderingOf(c)
	}
	return datatypes.OrderingOf(strings.Compare(l.LanguageTag(), other.LanguageTag()))
}

// Order compares two literals with CompareWithExtensions, for use with slices.SortFunc.
func Order(a, b Literal) int {
	return int(a.CompareWithExtensions(b))
}

func (l Literal) predicate(other Literal, f func(datatypes.Ordering) bool) TriBool {
	o := l.Compare(other)
	if o == datatypes.Unordered {
		return TriError
	}
	return triBool(f(o))
}

func (l Literal) Equal(other Literal) TriBool {
	return l.predicate(other, func(o datatypes.Ordering) bool { return o == datatypes.Equivalent })
}

func (l Literal) NotEqual(other Literal) TriBool {
	return l.Equal(other).Not()
}

func (l Literal) Less(other Literal) TriBool {
	return l.predicate(other, func(o datatypes.Ordering) bool { return o == datatypes.Less })
}

func (l Literal) LessOrEqual(other Literal) TriBool {
	return l.predicate(other, func(o datatypes.Ordering) bool { return o != datatypes.Greater })
}

func (l Literal) Greater(other Literal) TriBool {
	return l.predicate(other, func(o datatypes.Ordering) bool { return o == datatypes.Greater })
}

func (l Literal) GreaterOrEqual(other Literal) TriBool {
	return l.predicate(other, func(o datatypes.Ordering) bool { return o != datatypes.Less })
}
