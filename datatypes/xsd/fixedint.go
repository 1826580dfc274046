package xsd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/internal/overflow"
)

// Long is xsd:long.
type Long struct{ fixedInt[int64] }

// Int is xsd:int.
type Int struct{ fixedInt[int32] }

// Short is xsd:short.
type Short struct{ fixedInt[int16] }

// Byte is xsd:byte.
type Byte struct{ fixedInt[int8] }

// UnsignedLong is xsd:unsignedLong.
type UnsignedLong struct{ fixedInt[uint64] }

// UnsignedInt is xsd:unsignedInt.
type UnsignedInt struct{ fixedInt[uint32] }

// UnsignedShort is xsd:unsignedShort.
type UnsignedShort struct{ fixedInt[uint16] }

// UnsignedByte is xsd:unsignedByte.
type UnsignedByte struct{ fixedInt[uint8] }

// fixedInt implements the bounded integer datatypes on the Go integer type T.
// Arithmetic stays in T and fails with datatypes.ErrOverOrUnderFlow when the result
// leaves its range.
type fixedInt[T overflow.Integer] struct{}

type fixedIntInfo struct {
	iri   string
	bits  int
	self  datatypes.Datatype
	super datatypes.Datatype
}

func (fixedInt[T]) info() fixedIntInfo {
	var zero T
	switch any(zero).(type) {
	case int64:
		return fixedIntInfo{datatypes.XSDLong, 64, Long{}, Integer{}}
	case int32:
		return fixedIntInfo{datatypes.XSDInt, 32, Int{}, Long{}}
	case int16:
		return fixedIntInfo{datatypes.XSDShort, 16, Short{}, Int{}}
	case int8:
		return fixedIntInfo{datatypes.XSDByte, 8, Byte{}, Short{}}
	case uint64:
		return fixedIntInfo{datatypes.XSDUnsignedLong, 64, UnsignedLong{}, NonNegativeInteger{}}
	case uint32:
		return fixedIntInfo{datatypes.XSDUnsignedInt, 32, UnsignedInt{}, UnsignedLong{}}
	case uint16:
		return fixedIntInfo{datatypes.XSDUnsignedShort, 16, UnsignedShort{}, UnsignedInt{}}
	case uint8:
		return fixedIntInfo{datatypes.XSDUnsignedByte, 8, UnsignedByte{}, UnsignedShort{}}
	}
	panic(fmt.Sprintf("unsupported integer type %T", zero))
}

func (f fixedInt[T]) IRI() string {
	return f.info().iri
}

func (f fixedInt[T]) Parse(lexical string) (datatypes.Value, error) {
	info := f.info()
	s := collapse(lexical)
	if !integerRegex.MatchString(s) {
		return nil, datatypes.NewParseError(info.self, lexical, nil)
	}
	s = strings.TrimPrefix(s, "+")

	if overflow.IsSigned[T]() {
		i, err := strconv.ParseInt(s, 10, info.bits)
		if err != nil {
			return nil, datatypes.NewParseError(info.self, lexical, err)
		}
		return T(i), nil
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		// -0 is the only negative lexical form of an unsigned zero
		if strings.Trim(rest, "0") != "" {
			return nil, datatypes.NewParseError(info.self, lexical, fmt.Errorf("negative value"))
		}
		return T(0), nil
	}
	u, err := strconv.ParseUint(s, 10, info.bits)
	if err != nil {
		return nil, datatypes.NewParseError(info.self, lexical, err)
	}
	return T(u), nil
}

func (fixedInt[T]) Canonical(v datatypes.Value) string {
	x := as[T](v)
	if overflow.IsSigned[T]() {
		return strconv.FormatInt(int64(x), 10)
	}
	return strconv.FormatUint(uint64(x), 10)
}

func (f fixedInt[T]) Simplified(v datatypes.Value) string {
	return f.Canonical(v)
}

func (fixedInt[T]) Compare(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.CompareOrdered(as[T](a), as[T](b))
}

func (fixedInt[T]) EffectiveBooleanValue(v datatypes.Value) bool {
	return as[T](v) != 0
}

func (f fixedInt[T]) Supertype() datatypes.Edge {
	return datatypes.Edge{
		Target:  f.info().super,
		Convert: widen,
		Inverse: narrow[T],
	}
}

// widen converts a bounded integer to the native value of its supertype.
func widen(v datatypes.Value) datatypes.Value {
	switch x := v.(type) {
	case int64:
		return apd.NewBigInt(x)
	case int32:
		return int64(x)
	case int16:
		return int32(x)
	case int8:
		return int16(x)
	case uint64:
		return new(apd.BigInt).SetUint64(x)
	case uint32:
		return uint64(x)
	case uint16:
		return uint32(x)
	case uint8:
		return uint16(x)
	}
	panic(fmt.Sprintf("unsupported integer type %T", v))
}

// narrow converts the native value of a supertype to T if it is in range.
func narrow[T overflow.Integer](v datatypes.Value) (datatypes.Value, error) {
	switch x := v.(type) {
	case *apd.BigInt:
		if overflow.IsSigned[T]() && x.IsInt64() {
			return fit[T](x.Int64())
		}
		if !overflow.IsSigned[T]() && x.IsUint64() {
			return fit[T](x.Uint64())
		}
	case int64:
		return fit[T](x)
	case int32:
		return fit[T](x)
	case int16:
		return fit[T](x)
	case uint64:
		return fit[T](x)
	case uint32:
		return fit[T](x)
	case uint16:
		return fit[T](x)
	}
	return nil, datatypes.CastError[T](v)
}

func fit[T, S overflow.Integer](s S) (datatypes.Value, error) {
	t := T(s)
	if S(t) != s || (t < 0) != (s < 0) {
		return nil, datatypes.CastError[T](s)
	}
	return t, nil
}

func (fixedInt[T]) Zero() datatypes.Value {
	return T(0)
}

func (fixedInt[T]) One() datatypes.Value {
	return T(1)
}

func (f fixedInt[T]) result(x T, ok bool) (datatypes.TypedValue, error) {
	if !ok {
		return datatypes.TypedValue{}, fmt.Errorf("%w: %s", datatypes.ErrOverOrUnderFlow, f.info().iri)
	}
	return datatypes.TypedValue{Datatype: f.info().self, Value: x}, nil
}

func (f fixedInt[T]) Add(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(overflow.Add(as[T](a), as[T](b)))
}

func (f fixedInt[T]) Sub(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(overflow.Sub(as[T](a), as[T](b)))
}

func (f fixedInt[T]) Mul(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(overflow.Mul(as[T](a), as[T](b)))
}

// Div divides as xsd:decimal.
func (f fixedInt[T]) Div(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return Decimal{}.Div(ctx, f.decimal(as[T](a)), f.decimal(as[T](b)))
}

func (fixedInt[T]) decimal(x T) *apd.Decimal {
	if overflow.IsSigned[T]() {
		return apd.New(int64(x), 0)
	}
	return apd.NewWithBigInt(new(apd.BigInt).SetUint64(uint64(x)), 0)
}

func (f fixedInt[T]) Pos(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a), true)
}

func (f fixedInt[T]) Neg(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(overflow.Neg(as[T](a)))
}

func (f fixedInt[T]) Abs(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(overflow.Abs(as[T](a)))
}

func (f fixedInt[T]) Round(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a), true)
}

func (f fixedInt[T]) Floor(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a), true)
}

func (f fixedInt[T]) Ceil(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return f.result(as[T](a), true)
}

func (fixedInt[T]) TryInline(v datatypes.Value) (uint64, bool) {
	x := as[T](v)
	if overflow.IsSigned[T]() {
		i := int64(x)
		if i < -inlinedSignBit || i >= inlinedSignBit {
			return 0, false
		}
		return packSigned(i), true
	}
	if uint64(x) > datatypes.MaxInlinedPayload {
		return 0, false
	}
	return uint64(x), true
}

func (fixedInt[T]) FromInline(payload uint64) datatypes.Value {
	if overflow.IsSigned[T]() {
		return T(unpackSigned(payload))
	}
	return T(payload)
}
