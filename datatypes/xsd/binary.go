package xsd

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// Binary is the value of xsd:hexBinary and xsd:base64Binary.
type Binary []byte

// compareBinary only detects equality, binary values have no order.
func compareBinary(a, b datatypes.Value) datatypes.Ordering {
	if bytes.Equal(as[Binary](a), as[Binary](b)) {
		return datatypes.Equivalent
	}
	return datatypes.Unordered
}

// HexBinary is xsd:hexBinary.
type HexBinary struct{}

func (HexBinary) IRI() string {
	return datatypes.XSDHexBinary
}

func (h HexBinary) Parse(lexical string) (datatypes.Value, error) {
	b, err := hex.DecodeString(collapse(lexical))
	if err != nil {
		return nil, datatypes.NewParseError(h, lexical, err)
	}
	return Binary(b), nil
}

// Canonical uses upper case digits.
func (HexBinary) Canonical(v datatypes.Value) string {
	return strings.ToUpper(hex.EncodeToString(as[Binary](v)))
}

func (h HexBinary) Simplified(v datatypes.Value) string {
	return h.Canonical(v)
}

func (HexBinary) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareBinary(a, b)
}

// Base64Binary is xsd:base64Binary.
type Base64Binary struct{}

func (Base64Binary) IRI() string {
	return datatypes.XSDBase64Binary
}

func (b64 Base64Binary) Parse(lexical string) (datatypes.Value, error) {
	b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(lexical), ""))
	if err != nil {
		return nil, datatypes.NewParseError(b64, lexical, err)
	}
	return Binary(b), nil
}

func (Base64Binary) Canonical(v datatypes.Value) string {
	return base64.StdEncoding.EncodeToString(as[Binary](v))
}

func (b64 Base64Binary) Simplified(v datatypes.Value) string {
	return b64.Canonical(v)
}

func (Base64Binary) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareBinary(a, b)
}
