// Package overflow provides checked integer arithmetic.
//
// Every function returns the result together with a flag reporting whether the
// operation stayed within the range of T. Division and remainder also report false
// for a zero divisor.
package overflow

// Integer is the set of fixed-width integer types supported by this package.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T Integer]() bool {
	var zero T
	return zero-1 < zero
}

// Add returns a + b.
func Add[T Integer](a, b T) (T, bool) {
	c := a + b
	if IsSigned[T]() {
		return c, (c > a) == (b > 0)
	}
	return c, c >= a
}

// Sub returns a - b.
func Sub[T Integer](a, b T) (T, bool) {
	c := a - b
	if IsSigned[T]() {
		return c, (c < a) == (b > 0)
	}
	return c, b <= a
}

// Mul returns a * b.
func Mul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if IsSigned[T]() {
		// MinValue * -1 wraps to itself
		if (a < 0) == (b < 0) && c < 0 || (a < 0) != (b < 0) && c > 0 {
			return c, false
		}
	}
	return c, c/b == a
}

// Div returns the truncated quotient a / b.
func Div[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	c := a / b
	if IsSigned[T]() && a < 0 && b < 0 && c < 0 {
		return c, false
	}
	return c, true
}

// Mod returns the remainder of a / b with the sign of a.
func Mod[T Integer](a, b T) (T, bool) {
	if b == 0 {
		return 0, false
	}
	if IsSigned[T]() && b == ^T(0) {
		// x % -1 is always 0 and avoids the MinValue % -1 trap
		return 0, true
	}
	return a % b, true
}

// Neg returns -a.
func Neg[T Integer](a T) (T, bool) {
	if !IsSigned[T]() {
		return -a, a == 0
	}
	c := -a
	return c, a == 0 || c != a
}

// Abs returns |a|.
func Abs[T Integer](a T) (T, bool) {
	if IsSigned[T]() && a < 0 {
		return Neg(a)
	}
	return a, true
}
