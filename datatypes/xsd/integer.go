package xsd

import (
	"context"
	"fmt"
	"regexp"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
)

var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

func parseBigInt(dt datatypes.Datatype, lexical string) (*apd.BigInt, error) {
	s := collapse(lexical)
	if !integerRegex.MatchString(s) {
		return nil, datatypes.NewParseError(dt, lexical, nil)
	}
	if s[0] == '+' {
		s = s[1:]
	}
	b, ok := new(apd.BigInt).SetString(s, 10)
	if !ok {
		return nil, datatypes.NewParseError(dt, lexical, nil)
	}
	return b, nil
}

func compareBigInt(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.OrderingOf(as[*apd.BigInt](a).Cmp(as[*apd.BigInt](b)))
}

// Integer is xsd:integer.
type Integer struct{}

func (Integer) IRI() string {
	return datatypes.XSDInteger
}

func (i Integer) Parse(lexical string) (datatypes.Value, error) {
	return parseBigInt(i, lexical)
}

func (Integer) Canonical(v datatypes.Value) string {
	return as[*apd.BigInt](v).String()
}

func (i Integer) Simplified(v datatypes.Value) string {
	return i.Canonical(v)
}

func (Integer) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareBigInt(a, b)
}

func (Integer) EffectiveBooleanValue(v datatypes.Value) bool {
	return as[*apd.BigInt](v).Sign() != 0
}

func (Integer) Supertype() datatypes.Edge {
	return datatypes.Edge{
		Target: Decimal{},
		Convert: func(v datatypes.Value) datatypes.Value {
			return apd.NewWithBigInt(as[*apd.BigInt](v), 0)
		},
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			return truncateDecimal(as[*apd.Decimal](v))
		},
	}
}

func (Integer) Zero() datatypes.Value {
	return apd.NewBigInt(0)
}

func (Integer) One() datatypes.Value {
	return apd.NewBigInt(1)
}

func integerResult(b *apd.BigInt) (datatypes.TypedValue, error) {
	return datatypes.TypedValue{Datatype: Integer{}, Value: b}, nil
}

func (Integer) Add(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(new(apd.BigInt).Add(as[*apd.BigInt](a), as[*apd.BigInt](b)))
}

func (Integer) Sub(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(new(apd.BigInt).Sub(as[*apd.BigInt](a), as[*apd.BigInt](b)))
}

func (Integer) Mul(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(new(apd.BigInt).Mul(as[*apd.BigInt](a), as[*apd.BigInt](b)))
}

// Div divides as xsd:decimal.
func (Integer) Div(ctx context.Context, a, b datatypes.Value) (datatypes.TypedValue, error) {
	return Decimal{}.Div(ctx, apd.NewWithBigInt(as[*apd.BigInt](a), 0), apd.NewWithBigInt(as[*apd.BigInt](b), 0))
}

func (Integer) Pos(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(as[*apd.BigInt](a))
}

func (Integer) Neg(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(new(apd.BigInt).Neg(as[*apd.BigInt](a)))
}

func (Integer) Abs(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(new(apd.BigInt).Abs(as[*apd.BigInt](a)))
}

func (Integer) Round(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(as[*apd.BigInt](a))
}

func (Integer) Floor(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(as[*apd.BigInt](a))
}

func (Integer) Ceil(ctx context.Context, a datatypes.Value) (datatypes.TypedValue, error) {
	return integerResult(as[*apd.BigInt](a))
}

const inlinedSignBit = 1 << (datatypes.InlinedPayloadBits - 1)

var (
	minInlinedInteger = apd.NewBigInt(-inlinedSignBit)
	maxInlinedInteger = apd.NewBigInt(inlinedSignBit - 1)
)

func (Integer) TryInline(v datatypes.Value) (uint64, bool) {
	b := as[*apd.BigInt](v)
	if b.Cmp(minInlinedInteger) < 0 || b.Cmp(maxInlinedInteger) > 0 {
		return 0, false
	}
	return packSigned(b.Int64()), true
}

func (Integer) FromInline(payload uint64) datatypes.Value {
	return apd.NewBigInt(unpackSigned(payload))
}

// packSigned stores a value that fits the payload as two's complement.
func packSigned(i int64) uint64 {
	return uint64(i) & datatypes.MaxInlinedPayload
}

func unpackSigned(payload uint64) int64 {
	const shift = 64 - datatypes.InlinedPayloadBits
	return int64(payload<<shift) >> shift
}

// boundedInteger implements an unbounded subtype of xsd:integer restricted by sign.
// Arithmetic is forwarded to xsd:integer.
type boundedInteger struct {
	iri   string
	super datatypes.Datatype
	valid func(sign int) bool
}

func (b boundedInteger) check(dt datatypes.Datatype, lexical string, v *apd.BigInt) (datatypes.Value, error) {
	if !b.valid(v.Sign()) {
		return nil, datatypes.NewParseError(dt, lexical, fmt.Errorf("value out of range"))
	}
	return v, nil
}

func (b boundedInteger) parse(dt datatypes.Datatype, lexical string) (datatypes.Value, error) {
	v, err := parseBigInt(dt, lexical)
	if err != nil {
		return nil, err
	}
	return b.check(dt, lexical, v)
}

func (b boundedInteger) supertype() datatypes.Edge {
	return datatypes.Edge{
		Target:  b.super,
		Convert: func(v datatypes.Value) datatypes.Value { return v },
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			i := as[*apd.BigInt](v)
			if !b.valid(i.Sign()) {
				return nil, fmt.Errorf("%w: %s is not a valid %s", datatypes.ErrInvalidValueForCast, i, b.iri)
			}
			return i, nil
		},
	}
}

var (
	nonPositive = boundedInteger{iri: datatypes.XSDNonPositiveInteger, super: Integer{}, valid: func(s int) bool { return s <= 0 }}
	negative    = boundedInteger{iri: datatypes.XSDNegativeInteger, super: NonPositiveInteger{}, valid: func(s int) bool { return s < 0 }}
	nonNegative = boundedInteger{iri: datatypes.XSDNonNegativeInteger, super: Integer{}, valid: func(s int) bool { return s >= 0 }}
	positive    = boundedInteger{iri: datatypes.XSDPositiveInteger, super: NonNegativeInteger{}, valid: func(s int) bool { return s > 0 }}
)

// NonPositiveInteger is xsd:nonPositiveInteger.
type NonPositiveInteger struct{ integerStub }

func (NonPositiveInteger) IRI() string { return nonPositive.iri }

func (t NonPositiveInteger) Parse(lexical string) (datatypes.Value, error) {
	return nonPositive.parse(t, lexical)
}

func (NonPositiveInteger) Supertype() datatypes.Edge { return nonPositive.supertype() }

// NegativeInteger is xsd:negativeInteger.
type NegativeInteger struct{ integerStub }

func (NegativeInteger) IRI() string { return negative.iri }

func (t NegativeInteger) Parse(lexical string) (datatypes.Value, error) {
	return negative.parse(t, lexical)
}

func (NegativeInteger) Supertype() datatypes.Edge { return negative.supertype() }

// NonNegativeInteger is xsd:nonNegativeInteger.
type NonNegativeInteger struct{ integerStub }

func (NonNegativeInteger) IRI() string { return nonNegative.iri }

func (t NonNegativeInteger) Parse(lexical string) (datatypes.Value, error) {
	return nonNegative.parse(t, lexical)
}

func (NonNegativeInteger) Supertype() datatypes.Edge { return nonNegative.supertype() }

// PositiveInteger is xsd:positiveInteger.
type PositiveInteger struct{ integerStub }

func (PositiveInteger) IRI() string { return positive.iri }

func (t PositiveInteger) Parse(lexical string) (datatypes.Value, error) {
	return positive.parse(t, lexical)
}

func (PositiveInteger) Supertype() datatypes.Edge { return positive.supertype() }

// integerStub holds the behavior shared by the unbounded integer subtypes.
type integerStub struct{}

func (integerStub) Canonical(v datatypes.Value) string {
	return as[*apd.BigInt](v).String()
}

func (integerStub) Simplified(v datatypes.Value) string {
	return as[*apd.BigInt](v).String()
}

func (integerStub) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareBigInt(a, b)
}

func (integerStub) EffectiveBooleanValue(v datatypes.Value) bool {
	return as[*apd.BigInt](v).Sign() != 0
}

func (integerStub) NumericImplType() datatypes.Datatype {
	return Integer{}
}

func (integerStub) TryInline(v datatypes.Value) (uint64, bool) {
	return Integer{}.TryInline(v)
}

func (integerStub) FromInline(payload uint64) datatypes.Value {
	return Integer{}.FromInline(payload)
}
