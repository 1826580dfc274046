// Package xsd provides the built-in XML Schema datatypes.
//
// Every datatype is a zero-size type implementing datatypes.Datatype and the optional
// capabilities that apply to it. Install registers all of them at their fixed identity.
//
// Native values:
//   - xsd:string: string
//   - xsd:boolean: bool
//   - xsd:integer and its unbounded subtypes: *apd.BigInt
//   - xsd:long, int, short, byte: int64, int32, int16, int8
//   - xsd:unsignedLong, unsignedInt, unsignedShort, unsignedByte: uint64, uint32, uint16, uint8
//   - xsd:decimal: *apd.Decimal
//   - xsd:float, xsd:double: float32, float64
//   - xsd:date, time, dateTime, dateTimeStamp: DateTimeValue
//   - xsd:gYear, gMonth, gDay, gYearMonth, gMonthDay: GregorianValue
//   - xsd:duration, dayTimeDuration, yearMonthDuration: DurationValue
//   - xsd:hexBinary, xsd:base64Binary: Binary
//
// Values of *apd.BigInt and *apd.Decimal are never modified once produced.
package xsd

import (
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// Install registers all built-in XSD datatypes at their fixed identities.
func Install(r *datatypes.Registry) error {
	builtins := []struct {
		dt datatypes.Datatype
		id datatypes.FixedID
	}{
		{String{}, datatypes.XSDStringID},
		{Boolean{}, datatypes.XSDBooleanID},
		{Base64Binary{}, datatypes.XSDBase64BinaryID},
		{HexBinary{}, datatypes.XSDHexBinaryID},
		{Date{}, datatypes.XSDDateID},
		{Time{}, datatypes.XSDTimeID},
		{DateTime{}, datatypes.XSDDateTimeID},
		{DateTimeStamp{}, datatypes.XSDDateTimeStampID},
		{GYear{}, datatypes.XSDGYearID},
		{GMonth{}, datatypes.XSDGMonthID},
		{GDay{}, datatypes.XSDGDayID},
		{GYearMonth{}, datatypes.XSDGYearMonthID},
		{GMonthDay{}, datatypes.XSDGMonthDayID},
		{Duration{}, datatypes.XSDDurationID},
		{DayTimeDuration{}, datatypes.XSDDayTimeDurationID},
		{YearMonthDuration{}, datatypes.XSDYearMonthDurationID},
		{Float{}, datatypes.XSDFloatID},
		{Double{}, datatypes.XSDDoubleID},
		{Decimal{}, datatypes.XSDDecimalID},
		{Integer{}, datatypes.XSDIntegerID},
		{NonPositiveInteger{}, datatypes.XSDNonPositiveIntegerID},
		{Long{}, datatypes.XSDLongID},
		{NonNegativeInteger{}, datatypes.XSDNonNegativeIntegerID},
		{NegativeInteger{}, datatypes.XSDNegativeIntegerID},
		{Int{}, datatypes.XSDIntID},
		{UnsignedLong{}, datatypes.XSDUnsignedLongID},
		{PositiveInteger{}, datatypes.XSDPositiveIntegerID},
		{Short{}, datatypes.XSDShortID},
		{UnsignedInt{}, datatypes.XSDUnsignedIntID},
		{Byte{}, datatypes.XSDByteID},
		{UnsignedShort{}, datatypes.XSDUnsignedShortID},
		{UnsignedByte{}, datatypes.XSDUnsignedByteID},
	}
	for _, b := range builtins {
		if err := r.AddFixed(b.dt, b.id); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry with all built-in XSD datatypes installed.
func NewRegistry() (*datatypes.Registry, error) {
	r := datatypes.NewRegistry()
	if err := Install(r); err != nil {
		return nil, err
	}
	return r, nil
}

// collapse applies the XML Schema "collapse" whitespace facet.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// as asserts the native value of a datatype. A value of the wrong Go type is a
// programming error, so the assertion is allowed to panic.
func as[T any](v datatypes.Value) T {
	return v.(T)
}
