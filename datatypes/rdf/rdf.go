// Package rdf provides the datatypes defined by RDF itself: rdf:langString and
// rdf:XMLLiteral.
package rdf

import (
	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// XMLLiteralIRI is the IRI of rdf:XMLLiteral. It has no fixed identity.
const XMLLiteralIRI = datatypes.RDFNamespace + "XMLLiteral"

// Install registers rdf:langString at its fixed identity and rdf:XMLLiteral as a
// dynamic datatype.
func Install(r *datatypes.Registry) error {
	if err := r.AddFixed(LangString{}, datatypes.RDFLangStringID); err != nil {
		return err
	}
	_, err := r.Add(XMLLiteral{})
	return err
}
