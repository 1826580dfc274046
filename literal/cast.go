package literal

import (
	"context"
	"log/slog"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/datatypes/xsd"
	"github.com/damedic/rdf-toolbox-go/storage"
)

// Cast converts l to the datatype iri. It returns null if l is null or the value is not
// representable in the target datatype. Only xsd:string literals can be cast to a
// datatype that is not registered; the result keeps the lexical form.
func (l Literal) Cast(ctx context.Context, iri string) Literal {
	return l.CastID(ctx, datatypes.IDOf(iri))
}

// CastID is like Cast for a datatype identity.
//
// Any literal can be cast to xsd:string, which yields its simplified lexical form and
// drops a language tag. An xsd:string is cast by parsing it. Casting to xsd:boolean
// yields the effective boolean value, and a boolean cast to a numeric datatype becomes
// its zero or one. Dates and dateTimes are cast into each other and into the partial
// date datatypes. All other casts convert the value to the common datatype of source
// and target and from there down to the target.
func (l Literal) CastID(ctx context.Context, target datatypes.ID) Literal {
	if l.IsNull() || target.IsZero() {
		return Literal{}
	}
	if target == l.datatype {
		return l
	}
	r := Registry()
	o := l.options()
	te, ok := r.Entry(target)
	if !ok {
		if l.datatype != stringID {
			return Literal{}
		}
		u, err := o.intern(target, storage.LiteralView{Datatype: target.IRI(), Lexical: l.LexicalForm()})
		if err != nil {
			slog.ErrorContext(ctx, "failed to store literal", "datatype", target, "err", err)
			return Literal{}
		}
		return u
	}
	switch target {
	case stringID:
		return o.simple(l.SimplifiedLexicalForm())
	case langStringID:
		return Literal{}
	}

	se, ok := r.Entry(l.datatype)
	if !ok {
		return Literal{}
	}
	v, ok := l.Value()
	if !ok {
		return Literal{}
	}

	switch {
	case l.datatype == stringID:
		w, err := te.Datatype.Parse(v.(string))
		if err != nil {
			slog.DebugContext(ctx, "cast failed", "from", l.datatype, "to", target, "err", err)
			return Literal{}
		}
		return o.derive(te, w)
	case target == booleanID:
		if se.EBV == nil {
			return Literal{}
		}
		return o.boolean(se.EBV.EffectiveBooleanValue(v))
	case l.datatype == booleanID && te.IsNumeric():
		conv := r.NumericImplConversion(te)
		ie, _ := r.Entry(conv.Target)
		n := ie.Numeric.Impl()
		w := n.Zero()
		if v.(bool) {
			w = n.One()
		}
		w, err := conv.Inverse(w)
		if err != nil {
			slog.DebugContext(ctx, "cast failed", "from", l.datatype, "to", target, "err", err)
			return Literal{}
		}
		return o.derive(te, w)
	}

	if w, ok := xsd.CastTemporal(l.datatype.IRI(), target.IRI(), v); ok {
		return o.derive(te, w)
	}
	cc, ok := r.CommonConversion(l.datatype, target)
	if !ok {
		return Literal{}
	}
	w, err := cc.RHS.Inverse(cc.LHS.Convert(v))
	if err != nil {
		slog.DebugContext(ctx, "cast failed", "from", l.datatype, "to", target, "err", err)
		return Literal{}
	}
	return o.derive(te, w)
}
