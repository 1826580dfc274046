// Package ir is the intermediate representation of the built-in datatype definitions.
package ir

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Datatype is a built-in datatype with a fixed identity.
type Datatype struct {
	// Prefix is the namespace prefix, e.g. "xsd".
	Prefix string
	// LocalName is the name within the namespace, e.g. "unsignedByte".
	LocalName string
	// IRI is the namespace followed by the local name.
	IRI string
	// ID is the fixed identity, counting from 1 in definition order.
	ID      int
	Numeric bool
}

// GoName is the name of the IRI constant, e.g. XSDUnsignedByte.
func (d Datatype) GoName() string {
	return strings.ToUpper(d.Prefix) + strcase.ToCamel(d.LocalName)
}

// IDName is the name of the fixed identity constant, e.g. XSDUnsignedByteID.
func (d Datatype) IDName() string {
	return d.GoName() + "ID"
}
