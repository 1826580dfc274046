package literal

// EBV returns the effective boolean value of l. It is TriError for null and for
// datatypes without an effective boolean value.
func (l Literal) EBV() TriBool {
	if l.IsNull() {
		return TriError
	}
	ebv, _ := Registry().EffectiveBooleanValue(l.datatype)
	if ebv == nil {
		return TriError
	}
	v, ok := l.Value()
	if !ok {
		return TriError
	}
	return triBool(ebv.EffectiveBooleanValue(v))
}

// And is the logical conjunction of the effective boolean values. A literal without an
// effective boolean value acts as an error, so false && error is false.
func (l Literal) And(other Literal) Literal {
	if l.IsNull() || other.IsNull() {
		return Literal{}
	}
	return l.EBV().And(other.EBV()).Literal()
}

// Or is the logical disjunction of the effective boolean values, true || error is
// true.
func (l Literal) Or(other Literal) Literal {
	if l.IsNull() || other.IsNull() {
		return Literal{}
	}
	return l.EBV().Or(other.EBV()).Literal()
}

func (l Literal) Not() Literal {
	return l.EBV().Not().Literal()
}
