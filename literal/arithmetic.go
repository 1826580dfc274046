package literal

import (
	"context"
	"log/slog"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/datatypes/xsd"
)

type (
	binaryFunc = func(context.Context, datatypes.Value, datatypes.Value) (datatypes.TypedValue, error)
	unaryFunc  = func(context.Context, datatypes.Value) (datatypes.TypedValue, error)
	temporalOp = func(a, b datatypes.TypedValue) (datatypes.TypedValue, error)
)

// Add returns l + other. Besides numbers it adds durations to dates and times and
// durations of the same kind to each other.
func (l Literal) Add(ctx context.Context, other Literal) Literal {
	return l.binary(ctx, other, func(n datatypes.NumericImpl) binaryFunc { return n.Add }, xsd.AddTemporal)
}

// Sub returns l - other. Besides numbers it subtracts durations from dates and times,
// instants of the same datatype from each other and durations of the same kind.
func (l Literal) Sub(ctx context.Context, other Literal) Literal {
	return l.binary(ctx, other, func(n datatypes.NumericImpl) binaryFunc { return n.Sub }, xsd.SubTemporal)
}

func (l Literal) Mul(ctx context.Context, other Literal) Literal {
	return l.binary(ctx, other, func(n datatypes.NumericImpl) binaryFunc { return n.Mul }, nil)
}

// Div returns l / other. The quotient of two integral literals is an xsd:decimal.
func (l Literal) Div(ctx context.Context, other Literal) Literal {
	return l.binary(ctx, other, func(n datatypes.NumericImpl) binaryFunc { return n.Div }, nil)
}

func (l Literal) Pos(ctx context.Context) Literal {
	return l.unary(ctx, func(n datatypes.NumericImpl) unaryFunc { return n.Pos })
}

func (l Literal) Neg(ctx context.Context) Literal {
	return l.unary(ctx, func(n datatypes.NumericImpl) unaryFunc { return n.Neg })
}

func (l Literal) Abs(ctx context.Context) Literal {
	return l.unary(ctx, func(n datatypes.NumericImpl) unaryFunc { return n.Abs })
}

// Round rounds half values towards positive infinity.
func (l Literal) Round(ctx context.Context) Literal {
	return l.unary(ctx, func(n datatypes.NumericImpl) unaryFunc { return n.Round })
}

func (l Literal) Floor(ctx context.Context) Literal {
	return l.unary(ctx, func(n datatypes.NumericImpl) unaryFunc { return n.Floor })
}

func (l Literal) Ceil(ctx context.Context) Literal {
	return l.unary(ctx, func(n datatypes.NumericImpl) unaryFunc { return n.Ceil })
}

func (l Literal) binary(
	ctx context.Context,
	other Literal,
	op func(datatypes.NumericImpl) binaryFunc,
	temporal temporalOp,
) Literal {
	if l.IsNull() || other.IsNull() {
		return Literal{}
	}
	r := Registry()
	le, ok1 := r.Entry(l.datatype)
	re, ok2 := r.Entry(other.datatype)
	if !ok1 || !ok2 {
		return Literal{}
	}
	a, ok1 := l.Value()
	b, ok2 := other.Value()
	if !ok1 || !ok2 {
		return Literal{}
	}

	if !le.IsNumeric() || !re.IsNumeric() {
		if temporal == nil || !xsd.IsTemporal(le.Datatype) || !xsd.IsTemporal(re.Datatype) {
			return Literal{}
		}
		tv, err := temporal(
			datatypes.TypedValue{Datatype: le.Datatype, Value: a},
			datatypes.TypedValue{Datatype: re.Datatype, Value: b},
		)
		return l.result(ctx, tv, err)
	}

	if l.datatype == other.datatype && !le.Numeric.IsStub() {
		tv, err := op(le.Numeric.Impl())(ctx, a, b)
		return l.result(ctx, tv, err)
	}
	cc, ok := r.CommonNumericConversion(le, re)
	if !ok {
		return Literal{}
	}
	n, _ := r.Numeric(cc.Target)
	if n == nil || n.IsStub() {
		return Literal{}
	}
	tv, err := op(n.Impl())(ctx, cc.LHS.Convert(a), cc.RHS.Convert(b))
	return l.result(ctx, tv, err)
}

func (l Literal) unary(ctx context.Context, op func(datatypes.NumericImpl) unaryFunc) Literal {
	if l.IsNull() {
		return Literal{}
	}
	r := Registry()
	e, ok := r.Entry(l.datatype)
	if !ok || !e.IsNumeric() {
		return Literal{}
	}
	v, ok := l.Value()
	if !ok {
		return Literal{}
	}
	conv := r.NumericImplConversion(e)
	n, _ := r.Numeric(conv.Target)
	if n == nil || n.IsStub() {
		return Literal{}
	}
	tv, err := op(n.Impl())(ctx, conv.Convert(v))
	return l.result(ctx, tv, err)
}

func (l Literal) result(ctx context.Context, tv datatypes.TypedValue, err error) Literal {
	if err != nil {
		slog.DebugContext(ctx, "operation failed", "datatype", l.datatype, "err", err)
		return Literal{}
	}
	return l.options().typed(tv)
}
