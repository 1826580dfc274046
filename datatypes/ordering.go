package datatypes

import "cmp"

// Ordering is the result of comparing two values.
type Ordering int8

const (
	Less       Ordering = -1
	Equivalent Ordering = 0
	Greater    Ordering = 1
	// Unordered is returned for values that are not comparable.
	Unordered Ordering = 2
)

// OrderingOf converts the result of a three-way comparison.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equivalent
	}
}

// CompareOrdered compares two ordered values. NaNs are unordered.
func CompareOrdered[T cmp.Ordered](a, b T) Ordering {
	if a != a || b != b {
		return Unordered
	}
	return OrderingOf(cmp.Compare(a, b))
}

// Reverse swaps Less and Greater.
func (o Ordering) Reverse() Ordering {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	default:
		return o
	}
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equivalent:
		return "equivalent"
	case Greater:
		return "greater"
	default:
		return "unordered"
	}
}
