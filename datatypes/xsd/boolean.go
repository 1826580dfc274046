package xsd

import (
	"fmt"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// Boolean is xsd:boolean.
type Boolean struct{}

func (Boolean) IRI() string {
	return datatypes.XSDBoolean
}

func (b Boolean) Parse(lexical string) (datatypes.Value, error) {
	switch collapse(lexical) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return nil, datatypes.NewParseError(b, lexical, fmt.Errorf("expected true, false, 1 or 0"))
}

func (Boolean) Canonical(v datatypes.Value) string {
	if as[bool](v) {
		return "true"
	}
	return "false"
}

func (b Boolean) Simplified(v datatypes.Value) string {
	return b.Canonical(v)
}

func (Boolean) Compare(a, b datatypes.Value) datatypes.Ordering {
	x, y := as[bool](a), as[bool](b)
	switch {
	case x == y:
		return datatypes.Equivalent
	case !x:
		return datatypes.Less
	default:
		return datatypes.Greater
	}
}

func (Boolean) EffectiveBooleanValue(v datatypes.Value) bool {
	return as[bool](v)
}

func (Boolean) TryInline(v datatypes.Value) (uint64, bool) {
	if as[bool](v) {
		return 1, true
	}
	return 0, true
}

func (Boolean) FromInline(payload uint64) datatypes.Value {
	return payload != 0
}
