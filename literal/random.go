package literal

import (
	"math/rand/v2"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/google/uuid"
)

// MakeStringUUID returns a fresh random UUID as an xsd:string literal.
func MakeStringUUID(opts ...Option) Literal {
	return newOptions(opts).simple(uuid.NewString())
}

// GenerateRandomDouble returns an xsd:double drawn uniformly from [0, 1).
func GenerateRandomDouble(opts ...Option) Literal {
	e, _ := Registry().Entry(datatypes.XSDDoubleID.ID())
	return newOptions(opts).derive(e, rand.Float64())
}
