package rdf

import (
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/damedic/rdf-toolbox-go/datatypes"
)

const wrapperElement = "rdf-wrapper"

// XMLLiteral is rdf:XMLLiteral. The lexical form is an XML fragment, its value is the
// parsed fragment wrapped in a synthetic root element.
type XMLLiteral struct{}

func (XMLLiteral) IRI() string {
	return XMLLiteralIRI
}

func (x XMLLiteral) Parse(lexical string) (datatypes.Value, error) {
	doc, err := xmlquery.Parse(strings.NewReader("<" + wrapperElement + ">" + lexical + "</" + wrapperElement + ">"))
	if err != nil {
		return nil, datatypes.NewParseError(x, lexical, err)
	}
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode && n.Data == wrapperElement {
			return n, nil
		}
	}
	return nil, datatypes.NewParseError(x, lexical, fmt.Errorf("no fragment"))
}

// Canonical serializes the fragment with attributes in double quotes and empty
// elements written as start and end tag.
func (XMLLiteral) Canonical(v datatypes.Value) string {
	return v.(*xmlquery.Node).OutputXML(false)
}

func (XMLLiteral) Simplified(v datatypes.Value) string {
	return v.(*xmlquery.Node).OutputXMLWithOptions(xmlquery.WithoutComments())
}

// Compare only decides equality of the canonical forms.
func (x XMLLiteral) Compare(a, b datatypes.Value) datatypes.Ordering {
	if x.Canonical(a) == x.Canonical(b) {
		return datatypes.Equivalent
	}
	return datatypes.Unordered
}
