// Package datatypes implements the registry of RDF literal datatypes.
//
// A datatype is registered by handing a value implementing the Datatype interface to a
// Registry. Optional capabilities are detected by type assertion at registration time:
//   - Comparer: values can be ordered
//   - EffectiveBooleaner: values have an effective boolean value
//   - NumericImpl: the datatype implements arithmetic
//   - NumericStub: arithmetic is forwarded to a supertype implementing NumericImpl
//   - Inliner: small values can be packed into a fixed-width payload
//   - Subtype: the datatype is derived from a supertype
//   - Promotable: values can be promoted to a wider numeric datatype
//
// From the Subtype and Promotable declarations the registry derives a ConversionTable for
// every datatype. Two conversion tables are enough to find the common type of two
// datatypes, see CommonConversion.
package datatypes

import (
	"context"
)

// Value is the native value of a datatype, for example *apd.Decimal for xsd:decimal.
type Value = any

// Datatype is the contract every registered datatype fulfils.
type Datatype interface {
	// IRI returns the datatype IRI.
	IRI() string
	// Parse converts a lexical form to a value.
	Parse(lexical string) (Value, error)
	// Canonical returns the canonical lexical form of a value.
	Canonical(v Value) string
	// Simplified returns a human friendly lexical form of a value.
	Simplified(v Value) string
}

// Comparer is implemented by datatypes whose values can be compared.
type Comparer interface {
	Compare(a, b Value) Ordering
}

// EffectiveBooleaner is implemented by datatypes with an effective boolean value.
type EffectiveBooleaner interface {
	EffectiveBooleanValue(v Value) bool
}

// InlinedPayloadBits is the number of payload bits available to an Inliner.
const InlinedPayloadBits = 42

// MaxInlinedPayload is the largest payload an Inliner may produce.
const MaxInlinedPayload = 1<<InlinedPayloadBits - 1

// Inliner is implemented by datatypes that can pack small values into a payload of at
// most InlinedPayloadBits bits.
type Inliner interface {
	TryInline(v Value) (payload uint64, ok bool)
	FromInline(payload uint64) Value
}

// Edge is a single step in a datatype hierarchy.
type Edge struct {
	// Target is the datatype converted to.
	Target Datatype
	// Convert converts a value to the target datatype. It must not fail.
	Convert func(Value) Value
	// Inverse converts a target value back. It fails if the value is out of range.
	Inverse func(Value) (Value, error)
}

// Subtype is implemented by datatypes derived from a supertype.
type Subtype interface {
	Supertype() Edge
}

// Promotable is implemented by datatypes whose values can be promoted.
type Promotable interface {
	Promotion() Edge
}

// DirectPromotable is implemented by Promotable datatypes that convert to a datatype
// further down their promotion chain without passing through the steps in between.
// The conversion table uses the direct edge instead of the composed chain.
type DirectPromotable interface {
	DirectPromotion(target string) (Edge, bool)
}

// TypedValue is the result of a numeric operation. The datatype of the result is not
// necessarily the datatype of the operands.
type TypedValue struct {
	Datatype Datatype
	Value    Value
}

// NumericImpl is implemented by datatypes that implement arithmetic themselves.
//
// Operations return one of the dynamic errors on failure. The context carries the
// decimal precision, see WithAPDContext.
type NumericImpl interface {
	Zero() Value
	One() Value

	Add(ctx context.Context, a, b Value) (TypedValue, error)
	Sub(ctx context.Context, a, b Value) (TypedValue, error)
	Mul(ctx context.Context, a, b Value) (TypedValue, error)
	Div(ctx context.Context, a, b Value) (TypedValue, error)

	Pos(ctx context.Context, a Value) (TypedValue, error)
	Neg(ctx context.Context, a Value) (TypedValue, error)
	Abs(ctx context.Context, a Value) (TypedValue, error)
	Round(ctx context.Context, a Value) (TypedValue, error)
	Floor(ctx context.Context, a Value) (TypedValue, error)
	Ceil(ctx context.Context, a Value) (TypedValue, error)
}

// NumericStub is implemented by numeric datatypes without arithmetic of their own.
// Operations are carried out by NumericImplType, which must be a supertype.
type NumericStub interface {
	NumericImplType() Datatype
}

// NumericOps is either an implementation of arithmetic or a stub forwarding a number
// of supertype hops up to one.
type NumericOps struct {
	impl NumericImpl
	hops int
}

// IsStub reports whether arithmetic is forwarded to a supertype.
func (o *NumericOps) IsStub() bool {
	return o.impl == nil
}

// Impl returns the arithmetic implementation, nil for a stub.
func (o *NumericOps) Impl() NumericImpl {
	return o.impl
}

// StubHops returns the number of supertype hops to the implementing ancestor, 0 for an
// implementation.
func (o *NumericOps) StubHops() int {
	return o.hops
}
