package xsd

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

var floatRegex = regexp.MustCompile(`^([+-]?(\d+(\.\d*)?|\.\d+)([Ee][+-]?\d+)?|[+-]?INF|NaN)$`)

// Float is xsd:float.
type Float struct{ ieee[float32] }

// Double is xsd:double.
type Double struct{ ieee[float64] }

func (Float) Promotion() datatypes.Edge {
	return datatypes.Edge{
		Target: Double{},
		Convert: func(v datatypes.Value) datatypes.Value {
			return float64(as[float32](v))
		},
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			return float32(as[float64](v)), nil
		},
	}
}

// TryInline stores the IEEE 754 bits.
func (Float) TryInline(v datatypes.Value) (uint64, bool) {
	return uint64(math.Float32bits(as[float32](v))), true
}

func (Float) FromInline(payload uint64) datatypes.Value {
	return math.Float32frombits(uint32(payload))
}

const doubleDroppedBits = 64 - datatypes.InlinedPayloadBits

// TryInline stores the upper bits of the IEEE 754 representation if the lower bits are
// all zero.
func (Double) TryInline(v datatypes.Value) (uint64, bool) {
	bits := math.Float64bits(as[float64](v))
	if bits&(1<<doubleDroppedBits-1) != 0 {
		return 0, false
	}
	return bits >> doubleDroppedBits, true
}

func (Double) FromInline(payload uint64) datatypes.Value {
	return math.Float64frombits(payload << doubleDroppedBits)
}

// ieee implements the floating point datatypes on float32 or float64.
type ieee[T float32 | float64] struct{}

func (ieee[T]) bits() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

func (f ieee[T]) self() datatypes.Datatype {
	if f.bits() == 32 {
		return Float{}
	}
	return Double{}
}

func (f ieee[T]) IRI() string {
	if f.bits() == 32 {
		return datatypes.XSDFloat
	}
	return datatypes.XSDDouble
}

func (f ieee[T]) Parse(lexical string) (datatypes.Value, error) {
	s := collapse(lexical)
	if !floatRegex.MatchString(s) {
		return nil, datatypes.NewParseError(f.self(), lexical, nil)
	}
	switch s {
	case "INF", "+INF":
		return T(math.Inf(1)), nil
	case "-INF":
		return T(math.Inf(-1)), nil
	case "NaN":
		return T(math.NaN()), nil
	}
	x, err := strconv.ParseFloat(s, f.bits())
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, datatypes.NewParseError(f.self(), lexical, err)
	}
	return T(x), nil
}

// Canonical returns the form 1.5E2 with at least one fractional digit.
func (f ieee[T]) Canonical(v datatypes.Value) string {
	x := float64(as[T](v))
	if s, ok := formatSpecialFloat(x); ok {
		return s
	}
	s := strconv.FormatFloat(x, 'E', -1, f.bits())
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, _ := strconv.Atoi(exponent)
	return mantissa + "E" + strconv.Itoa(exp)
}

func (f ieee[T]) Simplified(v datatypes.Value) string {
	x := float64(as[T](v))
	if s, ok := formatSpecialFloat(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'g', -1, f.bits())
}

func formatSpecialFloat(x float64) (string, bool) {
	switch {
	case math.IsNaN(x):
		return "NaN", true
	case math.IsInf(x, 1):
		return "INF", true
	case math.IsInf(x, -1):
		return "-INF", true
	}
	return "", false
}

func (ieee[T]) Compare(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.CompareOrdered(as[T](a), as[T](b))
}

func (ieee[T]) EffectiveBooleanValue(v datatypes.Value) bool {
	x := as[T](v)
	return x == x && x != 0
}

func (ieee[T]) Zero() datatypes.Value {
	return T(0)
}

func (ieee[T]) One() datatypes.Value {
	return T(1)
}

func (f ieee[T]) result(x T) (datatypes.TypedValue, error) {
	return datatypes.TypedValue{Datatype: f.self(), Value: x}, nil
}

func (f ieee[T]) Add(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a) + as[T](b))
}

func (f ieee[T]) Sub(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a) - as[T](b))
}

func (f ieee[T]) Mul(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a) * as[T](b))
}

// Div follows IEEE 754, division by zero yields an infinity or NaN.
func (f ieee[T]) Div(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a) / as[T](b))
}

func (f ieee[T]) Pos(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a))
}

func (f ieee[T]) Neg(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(-as[T](a))
}

func (f ieee[T]) Abs(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(T(math.Abs(float64(as[T](a)))))
}

// Round rounds half values towards positive infinity.
func (f ieee[T]) Round(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	x := float64(as[T](a))
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return f.result(T(x))
	}
	r := math.Floor(x + 0.5)
	if r == 0 && math.Signbit(x) {
		r = math.Copysign(0, -1)
	}
	return f.result(T(r))
}

func (f ieee[T]) Floor(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(T(math.Floor(float64(as[T](a)))))
}

func (f ieee[T]) Ceil(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(T(math.Ceil(float64(as[T](a)))))
}
