package rdf

import (
	"errors"
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// LangStringValue is the value of rdf:langString.
type LangStringValue struct {
	Lexical string
	// Lang is the language tag, in lower case.
	Lang string
}

// LangString is rdf:langString.
//
// A language tagged string has no lexical space of its own, Parse always fails. Values
// are constructed from a lexical form and a tag.
type LangString struct{}

var errLangTagRequired = errors.New("language tag required")

func (LangString) IRI() string {
	return datatypes.RDFLangString
}

func (l LangString) Parse(lexical string) (datatypes.Value, error) {
	return nil, datatypes.NewParseError(l, lexical, errLangTagRequired)
}

func (LangString) Canonical(v datatypes.Value) string {
	return v.(LangStringValue).Lexical
}

func (LangString) Simplified(v datatypes.Value) string {
	return v.(LangStringValue).Lexical
}

// Compare orders by lexical form, then by language tag.
func (LangString) Compare(a, b datatypes.Value) datatypes.Ordering {
	x, y := a.(LangStringValue), b.(LangStringValue)
	if c := strings.Compare(x.Lexical, y.Lexical); c != 0 {
		return datatypes.OrderingOf(c)
	}
	return datatypes.OrderingOf(strings.Compare(x.Lang, y.Lang))
}

// inlinedTags are the language tags that fit into a literal handle.
// Index 0 is reserved for "not inlined".
var inlinedTags = [...]string{
	"", "en", "de", "fr", "es", "it", "nl", "pt", "ru", "zh", "ja", "ar", "pl", "sv", "ko", "hi",
}

// InlineTag returns the inlined index of a lower case language tag.
func InlineTag(tag string) (uint8, bool) {
	for i := 1; i < len(inlinedTags); i++ {
		if inlinedTags[i] == tag {
			return uint8(i), true
		}
	}
	return 0, false
}

// InlinedTag returns the language tag at an inlined index, "" if the index is unused.
func InlinedTag(i uint8) string {
	if int(i) >= len(inlinedTags) {
		return ""
	}
	return inlinedTags[i]
}
