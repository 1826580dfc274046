package xsd

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
)

var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// Decimal is xsd:decimal.
type Decimal struct{}

func (Decimal) IRI() string {
	return datatypes.XSDDecimal
}

func (d Decimal) Parse(lexical string) (datatypes.Value, error) {
	s := collapse(lexical)
	if !decimalRegex.MatchString(s) {
		return nil, datatypes.NewParseError(d, lexical, nil)
	}
	v, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, datatypes.NewParseError(d, lexical, err)
	}
	return v, nil
}

// Canonical always contains a decimal point, e.g. "1.0".
func (Decimal) Canonical(v datatypes.Value) string {
	s := formatDecimal(as[*apd.Decimal](v))
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (Decimal) Simplified(v datatypes.Value) string {
	return formatDecimal(as[*apd.Decimal](v))
}

func formatDecimal(d *apd.Decimal) string {
	var r apd.Decimal
	r.Reduce(d)
	if r.IsZero() {
		r.Negative = false
	}
	return r.Text('f')
}

func (Decimal) Compare(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.OrderingOf(as[*apd.Decimal](a).Cmp(as[*apd.Decimal](b)))
}

func (Decimal) EffectiveBooleanValue(v datatypes.Value) bool {
	return !as[*apd.Decimal](v).IsZero()
}

func (Decimal) Promotion() datatypes.Edge {
	return datatypes.Edge{
		Target: Float{},
		Convert: func(v datatypes.Value) datatypes.Value {
			f, _ := as[*apd.Decimal](v).Float64()
			return float32(f)
		},
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			return floatToDecimal(float64(as[float32](v)), 32)
		},
	}
}

// DirectPromotion converts to xsd:double without rounding to float precision first.
func (Decimal) DirectPromotion(target string) (datatypes.Edge, bool) {
	if target != datatypes.XSDDouble {
		return datatypes.Edge{}, false
	}
	return datatypes.Edge{
		Target: Double{},
		Convert: func(v datatypes.Value) datatypes.Value {
			f, _ := as[*apd.Decimal](v).Float64()
			return f
		},
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			return floatToDecimal(as[float64](v), 64)
		},
	}, true
}

func floatToDecimal(f float64, bitSize int) (*apd.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, datatypes.CastError[*apd.Decimal](f)
	}
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'E', -1, bitSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", datatypes.ErrInvalidValueForCast, err)
	}
	return d, nil
}

// truncateDecimal returns the integral part of d.
func truncateDecimal(d *apd.Decimal) (*apd.BigInt, error) {
	if d.Form != apd.Finite {
		return nil, datatypes.CastError[*apd.BigInt](d)
	}
	var integ apd.Decimal
	d.Modf(&integ, nil)
	b, ok := new(apd.BigInt).SetString(integ.Text('f'), 10)
	if !ok {
		return nil, datatypes.CastError[*apd.BigInt](d)
	}
	return b, nil
}

func (Decimal) Zero() datatypes.Value {
	return apd.New(0, 0)
}

func (Decimal) One() datatypes.Value {
	return apd.New(1, 0)
}

type decimalOp func(c *apd.Context, d, x, y *apd.Decimal) (apd.Condition, error)

func decimalBinary(ctx context.Context, op decimalOp, a, b datatypes.Value) (datatypes.TypedValue, error) {
	var res apd.Decimal
	if _, err := op(datatypes.APDContext(ctx), &res, as[*apd.Decimal](a), as[*apd.Decimal](b)); err != nil {
		return datatypes.TypedValue{}, fmt.Errorf("%w: %v", datatypes.ErrOverOrUnderFlow, err)
	}
	return datatypes.TypedValue{Datatype: Decimal{}, Value: &res}, nil
}

func (Decimal) Add(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return decimalBinary(ctx, (*apd.Context).Add, a, b)
}

func (Decimal) Sub(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return decimalBinary(ctx, (*apd.Context).Sub, a, b)
}

func (Decimal) Mul(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return decimalBinary(ctx, (*apd.Context).Mul, a, b)
}

func (Decimal) Div(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	if as[*apd.Decimal](b).IsZero() {
		return datatypes.TypedValue{}, datatypes.ErrDivideByZero
	}
	return decimalBinary(ctx, (*apd.Context).Quo, a, b)
}

func (Decimal) Pos(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return datatypes.TypedValue{Datatype: Decimal{}, Value: a}, nil
}

func (Decimal) Neg(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return datatypes.TypedValue{Datatype: Decimal{}, Value: new(apd.Decimal).Neg(as[*apd.Decimal](a))}, nil
}

func (Decimal) Abs(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return datatypes.TypedValue{Datatype: Decimal{}, Value: new(apd.Decimal).Abs(as[*apd.Decimal](a))}, nil
}

var decimalHalf = apd.New(5, -1)

// Round rounds half values towards positive infinity.
func (d Decimal) Round(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	var res apd.Decimal
	c := datatypes.APDContext(ctx)
	if _, err := c.Add(&res, as[*apd.Decimal](a), decimalHalf); err != nil {
		return datatypes.TypedValue{}, fmt.Errorf("%w: %v", datatypes.ErrOverOrUnderFlow, err)
	}
	return d.Floor(ctx, &res)
}

func (Decimal) Floor(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	var res apd.Decimal
	if _, err := datatypes.APDContext(ctx).Floor(&res, as[*apd.Decimal](a)); err != nil {
		return datatypes.TypedValue{}, fmt.Errorf("%w: %v", datatypes.ErrOverOrUnderFlow, err)
	}
	return datatypes.TypedValue{Datatype: Decimal{}, Value: &res}, nil
}

func (Decimal) Ceil(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	var res apd.Decimal
	if _, err := datatypes.APDContext(ctx).Ceil(&res, as[*apd.Decimal](a)); err != nil {
		return datatypes.TypedValue{}, fmt.Errorf("%w: %v", datatypes.ErrOverOrUnderFlow, err)
	}
	return datatypes.TypedValue{Datatype: Decimal{}, Value: &res}, nil
}

const (
	decimalExponentBits = 10
	decimalExponentMask = 1<<decimalExponentBits - 1
	decimalMinExponent  = -(1 << (decimalExponentBits - 1))
	decimalMaxExponent  = 1<<(decimalExponentBits-1) - 1
)

// TryInline packs a 32-bit unscaled value and a 10-bit exponent.
func (Decimal) TryInline(v datatypes.Value) (uint64, bool) {
	d := as[*apd.Decimal](v)
	if d.Form != apd.Finite || !d.Coeff.IsInt64() {
		return 0, false
	}
	if d.Exponent < decimalMinExponent || d.Exponent > decimalMaxExponent {
		return 0, false
	}
	coeff := d.Coeff.Int64()
	if d.Negative {
		coeff = -coeff
	}
	if coeff < math.MinInt32 || coeff > math.MaxInt32 {
		return 0, false
	}
	return uint64(uint32(int32(coeff)))<<decimalExponentBits | uint64(d.Exponent)&decimalExponentMask, true
}

func (Decimal) FromInline(payload uint64) datatypes.Value {
	coeff := int32(uint32(payload >> decimalExponentBits))
	exp := int32(payload & decimalExponentMask)
	if exp > decimalMaxExponent {
		exp -= 1 << decimalExponentBits
	}
	return apd.New(int64(coeff), exp)
}
