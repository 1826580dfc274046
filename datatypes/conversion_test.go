package datatypes_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/google/go-cmp/cmp"
)

func iris(targets [][]datatypes.ID) [][]string {
	out := make([][]string, len(targets))
	for s, level := range targets {
		for _, id := range level {
			out[s] = append(out[s], id.IRI())
		}
	}
	return out
}

func TestConversionTargets(t *testing.T) {
	numericTail := []string{datatypes.XSDDecimal, datatypes.XSDFloat, datatypes.XSDDouble}
	tests := []struct {
		iri  string
		want [][]string
	}{
		{datatypes.XSDInt, [][]string{
			{datatypes.XSDInt}, {datatypes.XSDLong}, {datatypes.XSDInteger}, numericTail,
		}},
		{datatypes.XSDUnsignedByte, [][]string{
			{datatypes.XSDUnsignedByte}, {datatypes.XSDUnsignedShort}, {datatypes.XSDUnsignedInt},
			{datatypes.XSDUnsignedLong}, {datatypes.XSDNonNegativeInteger}, {datatypes.XSDInteger}, numericTail,
		}},
		{datatypes.XSDNegativeInteger, [][]string{
			{datatypes.XSDNegativeInteger}, {datatypes.XSDNonPositiveInteger}, {datatypes.XSDInteger}, numericTail,
		}},
		{datatypes.XSDFloat, [][]string{{datatypes.XSDFloat, datatypes.XSDDouble}}},
		{datatypes.XSDDouble, [][]string{{datatypes.XSDDouble}}},
		{datatypes.XSDGYear, [][]string{{datatypes.XSDGYear}}},
		{datatypes.XSDDate, [][]string{{datatypes.XSDDate}}},
		{datatypes.XSDDateTimeStamp, [][]string{{datatypes.XSDDateTimeStamp}, {datatypes.XSDDateTime}}},
		{datatypes.XSDDayTimeDuration, [][]string{{datatypes.XSDDayTimeDuration}, {datatypes.XSDDuration}}},
		{datatypes.XSDString, [][]string{{datatypes.XSDString}}},
	}
	r := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.iri, func(t *testing.T) {
			table, ok := r.Conversions(datatypes.IDOf(tt.iri))
			if !ok {
				t.Fatalf("%s not registered", tt.iri)
			}
			if diff := cmp.Diff(tt.want, iris(table.Targets())); diff != "" {
				t.Errorf("Targets() mismatch (-want +got):\n%s", diff)
			}
			if table.SubtypeRank() != len(tt.want) {
				t.Errorf("SubtypeRank() = %d, want %d", table.SubtypeRank(), len(tt.want))
			}
		})
	}
}

func TestConversionComposition(t *testing.T) {
	r := newRegistry(t)
	table, _ := r.Conversions(datatypes.IDOf(datatypes.XSDShort))

	toDouble := table.At(4, 2)
	if got := toDouble.Convert(int16(-7)); got != float64(-7) {
		t.Errorf("short -> double = %v (%T), want -7", got, got)
	}
	toInteger := table.At(3, 0)
	back, err := toInteger.Inverse(apd.NewBigInt(40000))
	if err == nil {
		t.Errorf("integer 40000 -> short = %v, want error", back)
	}
	back, err = toInteger.Inverse(apd.NewBigInt(-123))
	if err != nil || back != int16(-123) {
		t.Errorf("integer -123 -> short = %v, %v", back, err)
	}
}

func TestCommonConversion(t *testing.T) {
	tests := []struct {
		lhs, rhs string
		want     string
	}{
		{datatypes.XSDInt, datatypes.XSDInt, datatypes.XSDInt},
		{datatypes.XSDInt, datatypes.XSDLong, datatypes.XSDLong},
		{datatypes.XSDInt, datatypes.XSDDouble, datatypes.XSDDouble},
		{datatypes.XSDDecimal, datatypes.XSDFloat, datatypes.XSDFloat},
		{datatypes.XSDFloat, datatypes.XSDInteger, datatypes.XSDFloat},
		{datatypes.XSDUnsignedByte, datatypes.XSDByte, datatypes.XSDInteger},
		{datatypes.XSDUnsignedByte, datatypes.XSDUnsignedInt, datatypes.XSDUnsignedInt},
		{datatypes.XSDPositiveInteger, datatypes.XSDInt, datatypes.XSDInteger},
		{datatypes.XSDPositiveInteger, datatypes.XSDNegativeInteger, datatypes.XSDInteger},
		{datatypes.XSDDateTimeStamp, datatypes.XSDDateTime, datatypes.XSDDateTime},
		{datatypes.XSDDate, datatypes.XSDDateTime, ""},
		{datatypes.XSDGYear, datatypes.XSDDate, ""},
		{datatypes.XSDDateTimeStamp, datatypes.XSDDate, ""},
		{datatypes.XSDDayTimeDuration, datatypes.XSDYearMonthDuration, datatypes.XSDDuration},
		{datatypes.XSDString, datatypes.XSDInteger, ""},
		{datatypes.XSDDate, datatypes.XSDDuration, ""},
	}
	r := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.lhs+" "+tt.rhs, func(t *testing.T) {
			lhs, rhs := datatypes.IDOf(tt.lhs), datatypes.IDOf(tt.rhs)
			c, ok := r.CommonConversion(lhs, rhs)
			if ok != (tt.want != "") {
				t.Fatalf("CommonConversion() ok = %v, want %v", ok, tt.want != "")
			}
			if !ok {
				return
			}
			if c.Target.IRI() != tt.want || c.LHS.Target != c.Target || c.RHS.Target != c.Target {
				t.Errorf("CommonConversion() = %v (%v, %v), want %s", c.Target, c.LHS.Target, c.RHS.Target, tt.want)
			}

			swapped, ok := r.CommonConversion(rhs, lhs)
			if !ok || swapped.Target != c.Target {
				t.Errorf("CommonConversion() is not symmetric: %v, %v", swapped.Target, ok)
			}
		})
	}
}

func TestDirectPromotion(t *testing.T) {
	r := newRegistry(t)
	intID, doubleID := datatypes.IDOf(datatypes.XSDInt), datatypes.IDOf(datatypes.XSDDouble)
	c, ok := r.CommonConversion(intID, doubleID)
	if !ok || c.Target != doubleID {
		t.Fatalf("CommonConversion() = %v, %v, want xsd:double", c.Target, ok)
	}
	if got := c.LHS.Convert(int32(16777217)); got != float64(16777217) {
		t.Errorf("int 16777217 -> double = %v, want 16777217", got)
	}

	table, _ := r.Conversions(datatypes.IDOf(datatypes.XSDDecimal))
	toDouble := table.At(0, 2)
	back, err := toDouble.Inverse(float64(123456789))
	if err != nil {
		t.Fatalf("double 123456789 -> decimal: %v", err)
	}
	if got := back.(*apd.Decimal); got.Cmp(apd.New(123456789, 0)) != 0 {
		t.Errorf("double 123456789 -> decimal = %v, want 123456789", got)
	}
	if got := toDouble.Convert(apd.New(1, -1)); got != 0.1 {
		t.Errorf("decimal 0.1 -> double = %v, want 0.1", got)
	}
}

func TestCommonNumericConversion(t *testing.T) {
	tests := []struct {
		lhs, rhs string
		want     string
	}{
		{datatypes.XSDPositiveInteger, datatypes.XSDPositiveInteger, datatypes.XSDInteger},
		{datatypes.XSDNonNegativeInteger, datatypes.XSDNonPositiveInteger, datatypes.XSDInteger},
		{datatypes.XSDPositiveInteger, datatypes.XSDInt, datatypes.XSDInteger},
		{datatypes.XSDNegativeInteger, datatypes.XSDDouble, datatypes.XSDDouble},
		{datatypes.XSDShort, datatypes.XSDShort, datatypes.XSDShort},
		{datatypes.XSDUnsignedShort, datatypes.XSDDecimal, datatypes.XSDDecimal},
	}
	r := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.lhs+" "+tt.rhs, func(t *testing.T) {
			lhs, _ := r.Entry(datatypes.IDOf(tt.lhs))
			rhs, _ := r.Entry(datatypes.IDOf(tt.rhs))
			c, ok := r.CommonNumericConversion(lhs, rhs)
			if !ok || c.Target.IRI() != tt.want {
				t.Fatalf("CommonNumericConversion() = %v, %v, want %s", c.Target, ok, tt.want)
			}
			swapped, ok := r.CommonNumericConversion(rhs, lhs)
			if !ok || swapped.Target != c.Target {
				t.Errorf("CommonNumericConversion() is not symmetric: %v", swapped.Target)
			}
		})
	}
}

func TestNumericImplConversion(t *testing.T) {
	r := newRegistry(t)
	e, _ := r.Entry(datatypes.IDOf(datatypes.XSDNegativeInteger))
	c := r.NumericImplConversion(e)
	if c.Target.IRI() != datatypes.XSDInteger {
		t.Fatalf("NumericImplConversion() target = %v, want xsd:integer", c.Target)
	}
	if _, err := c.Inverse(apd.NewBigInt(1)); err == nil {
		t.Error("integer 1 -> negativeInteger succeeded")
	}
}
