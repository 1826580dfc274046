// Package generate generates the fixed datatype identity table of package datatypes.
package generate

import (
	"bytes"
	_ "embed"

	"github.com/damedic/rdf-toolbox-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// Definitions are the built-in datatype definitions.
//
//go:embed datatypes.yaml
var Definitions []byte

// Header is the comment at the top of generated files.
const Header = "Code generated by internal/cmd/generate. DO NOT EDIT."

// ParseDefinitions parses the embedded definitions.
func ParseDefinitions() ([]ir.Datatype, error) {
	return ir.Parse(bytes.NewReader(Definitions))
}

var multiLine = Options{Open: "{", Close: "}", Separator: ",", Multi: true}

// FixedFile generates the IRI constants, fixed identities and lookup tables.
func FixedFile(datatypes []ir.Datatype) *File {
	f := NewFile("datatypes")
	f.HeaderComment(Header)

	f.Comment("Well-known datatype IRIs with a fixed identity.")
	f.Const().DefsFunc(func(g *Group) {
		for _, d := range datatypes {
			g.Id(d.GoName()).Op("=").Lit(d.IRI)
		}
	})

	f.Comment("Fixed identities of the well-known datatypes.")
	f.Const().DefsFunc(func(g *Group) {
		for _, d := range datatypes {
			g.Id(d.IDName()).Id("FixedID").Op("=").Lit(d.ID)
		}
	})

	f.Comment("DynamicOffset is the number of registry slots reserved for fixed identities.")
	f.Const().Id("DynamicOffset").Op("=").Lit(len(datatypes))

	f.Comment("fixedIRIs maps a fixed identity (minus one) to its IRI.")
	f.Var().Id("fixedIRIs").Op("=").Index(Id("DynamicOffset")).String().CustomFunc(multiLine, func(g *Group) {
		for _, d := range datatypes {
			g.Id(d.GoName())
		}
	})

	f.Comment("numericFixed reports which fixed identities are numeric datatypes.")
	f.Var().Id("numericFixed").Op("=").Index(Id("DynamicOffset")).Bool().CustomFunc(multiLine, func(g *Group) {
		for _, d := range datatypes {
			if d.Numeric {
				g.Id(d.IDName()).Op("-").Lit(1).Op(":").True()
			}
		}
	})

	return f
}
