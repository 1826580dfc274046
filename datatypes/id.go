package datatypes

import (
	"cmp"
	"strconv"
)

//go:generate go run ../internal/cmd/generate -o fixed_gen.go

// Namespaces of the built-in datatypes.
const (
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
)

// FixedID is the identity of a built-in datatype, assigned once and contiguous from 1.
type FixedID uint8

// ID returns the datatype identity for f.
func (f FixedID) ID() ID {
	return ID{fixed: f}
}

// IRI returns the IRI of the fixed datatype, or "" if f is out of range.
func (f FixedID) IRI() string {
	if f == 0 || int(f) > DynamicOffset {
		return ""
	}
	return fixedIRIs[f-1]
}

// IsNumeric reports whether f belongs to one of the built-in numeric datatypes.
func (f FixedID) IsNumeric() bool {
	return f != 0 && int(f) <= DynamicOffset && numericFixed[f-1]
}

func (f FixedID) String() string {
	if iri := f.IRI(); iri != "" {
		return iri
	}
	return "FixedID(" + strconv.Itoa(int(f)) + ")"
}

var fixedByIRI = func() map[string]FixedID {
	m := make(map[string]FixedID, DynamicOffset)
	for i, iri := range fixedIRIs {
		m[iri] = FixedID(i + 1)
	}
	return m
}()

// ID identifies a datatype.
//
// A datatype identity is either fixed (a well-known built-in datatype) or dynamic
// (any other datatype, identified by its IRI). The zero ID identifies no datatype and
// is only carried by the null literal.
type ID struct {
	fixed FixedID
	iri   string
}

// IDOf returns the identity of the datatype with the given IRI.
// Well-known IRIs map to their fixed identity.
func IDOf(iri string) ID {
	if f, ok := fixedByIRI[iri]; ok {
		return f.ID()
	}
	return ID{iri: iri}
}

// IsZero reports whether id identifies no datatype.
func (id ID) IsZero() bool {
	return id.fixed == 0 && id.iri == ""
}

// IsFixed reports whether id is a fixed identity.
func (id ID) IsFixed() bool {
	return id.fixed != 0
}

// Fixed returns the fixed identity of id, if it has one.
func (id ID) Fixed() (FixedID, bool) {
	return id.fixed, id.fixed != 0
}

// IRI returns the datatype IRI.
func (id ID) IRI() string {
	if id.fixed != 0 {
		return id.fixed.IRI()
	}
	return id.iri
}

func (id ID) String() string {
	return id.IRI()
}

// Compare orders identities: the zero ID first, then fixed identities by number,
// then dynamic identities by IRI.
func (id ID) Compare(other ID) int {
	switch {
	case id.IsZero() || other.IsZero():
		return cmp.Compare(boolRank(!id.IsZero()), boolRank(!other.IsZero()))
	case id.fixed != 0 && other.fixed != 0:
		return cmp.Compare(id.fixed, other.fixed)
	case id.fixed != 0:
		return -1
	case other.fixed != 0:
		return 1
	default:
		return cmp.Compare(id.iri, other.iri)
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
