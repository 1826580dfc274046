package ir_test

import (
	"strings"
	"testing"

	"github.com/damedic/rdf-toolbox-go/internal/generate/ir"
	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	input := `
namespaces:
  xsd: http://www.w3.org/2001/XMLSchema#
datatypes:
  - name: xsd:gYearMonth
  - name: xsd:unsignedByte
    numeric: true
`
	got, err := ir.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Datatype{
		{Prefix: "xsd", LocalName: "gYearMonth", IRI: "http://www.w3.org/2001/XMLSchema#gYearMonth", ID: 1},
		{Prefix: "xsd", LocalName: "unsignedByte", IRI: "http://www.w3.org/2001/XMLSchema#unsignedByte", ID: 2, Numeric: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
	if got[0].GoName() != "XSDGYearMonth" {
		t.Errorf("GoName() = %s, want XSDGYearMonth", got[0].GoName())
	}
	if got[1].IDName() != "XSDUnsignedByteID" {
		t.Errorf("IDName() = %s, want XSDUnsignedByteID", got[1].IDName())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no datatypes", "namespaces:\n  xsd: x#\n"},
		{"unknown prefix", "datatypes:\n  - name: ex:foo\n"},
		{"not prefixed", "namespaces:\n  xsd: x#\ndatatypes:\n  - name: string\n"},
		{"duplicate", "namespaces:\n  xsd: x#\ndatatypes:\n  - name: xsd:int\n  - name: xsd:int\n"},
		{"unknown field", "namespaces:\n  xsd: x#\ndatatypes:\n  - name: xsd:int\n    fixed: true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := ir.Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Parse() = %v, want error", got)
			}
		})
	}
}
