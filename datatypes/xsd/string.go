package xsd

import (
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// String is xsd:string.
type String struct{}

func (String) IRI() string {
	return datatypes.XSDString
}

func (String) Parse(lexical string) (datatypes.Value, error) {
	return lexical, nil
}

func (String) Canonical(v datatypes.Value) string {
	return as[string](v)
}

func (String) Simplified(v datatypes.Value) string {
	return as[string](v)
}

func (String) Compare(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.OrderingOf(strings.Compare(as[string](a), as[string](b)))
}

func (String) EffectiveBooleanValue(v datatypes.Value) bool {
	return as[string](v) != ""
}
