package xsd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/internal/overflow"
)

// DurationValue is the value of xsd:duration and its subtypes. Months and Duration
// never have different signs.
type DurationValue struct {
	Months   int64
	Duration time.Duration
}

// Negate returns -v.
func (v DurationValue) Negate() DurationValue {
	return DurationValue{Months: -v.Months, Duration: -v.Duration}
}

func (v DurationValue) negative() bool {
	return v.Months < 0 || v.Duration < 0
}

var durationRegex = regexp.MustCompile(`^(-)?P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

func parseDuration(dt datatypes.Datatype, lexical string) (DurationValue, error) {
	s := collapse(lexical)
	m := durationRegex.FindStringSubmatch(s)
	if m == nil || strings.HasSuffix(s, "P") || strings.HasSuffix(s, "T") {
		return DurationValue{}, datatypes.NewParseError(dt, lexical, nil)
	}

	var v DurationValue
	ok := true
	addMonths := func(field string, unit int64) {
		if field == "" {
			return
		}
		n, err := strconv.ParseInt(field, 10, 64)
		p, ok1 := overflow.Mul(n, unit)
		sum, ok2 := overflow.Add(v.Months, p)
		v.Months, ok = sum, ok && err == nil && ok1 && ok2
	}
	addTime := func(field string, unit time.Duration) {
		if field == "" {
			return
		}
		n, err := strconv.ParseInt(field, 10, 64)
		p, ok1 := overflow.Mul(time.Duration(n), unit)
		sum, ok2 := overflow.Add(v.Duration, p)
		v.Duration, ok = sum, ok && err == nil && ok1 && ok2
	}

	addMonths(m[2], 12)
	addMonths(m[3], 1)
	addTime(m[4], 24*time.Hour)
	addTime(m[5], time.Hour)
	addTime(m[6], time.Minute)
	whole, frac, _ := strings.Cut(m[7], ".")
	addTime(whole, time.Second)
	if frac != "" {
		addTime(strconv.Itoa(parseFraction("."+frac)), time.Nanosecond)
	}
	if !ok {
		return DurationValue{}, datatypes.NewParseError(dt, lexical, fmt.Errorf("duration out of range"))
	}
	if m[1] == "-" {
		v = v.Negate()
	}
	return v, nil
}

// formatDuration writes the canonical form: months are split into years and months,
// the time part into days, hours, minutes and seconds. Zero components are omitted.
func formatDuration(v DurationValue, zero string) string {
	if v.Months == 0 && v.Duration == 0 {
		return zero
	}
	var b strings.Builder
	if v.negative() {
		b.WriteByte('-')
		v = v.Negate()
	}
	b.WriteByte('P')
	if y := v.Months / 12; y != 0 {
		fmt.Fprintf(&b, "%dY", y)
	}
	if m := v.Months % 12; m != 0 {
		fmt.Fprintf(&b, "%dM", m)
	}
	d := v.Duration
	if days := d / (24 * time.Hour); days != 0 {
		fmt.Fprintf(&b, "%dD", days)
		d -= days * 24 * time.Hour
	}
	if d == 0 {
		return b.String()
	}
	b.WriteByte('T')
	if h := d / time.Hour; h != 0 {
		fmt.Fprintf(&b, "%dH", h)
		d -= h * time.Hour
	}
	if m := d / time.Minute; m != 0 {
		fmt.Fprintf(&b, "%dM", m)
		d -= m * time.Minute
	}
	if d != 0 {
		s := strconv.FormatInt(int64(d/time.Second), 10)
		if ns := d % time.Second; ns != 0 {
			s += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
		}
		b.WriteString(s + "S")
	}
	return b.String()
}

// durationReferences are the dateTimes used to order durations with both a month and
// a time part.
var durationReferences = []time.Time{
	time.Date(1696, 9, 1, 0, 0, 0, 0, time.UTC),
	time.Date(1697, 2, 1, 0, 0, 0, 0, time.UTC),
	time.Date(1903, 3, 1, 0, 0, 0, 0, time.UTC),
	time.Date(1903, 7, 1, 0, 0, 0, 0, time.UTC),
}

// AddTo adds v to t.
func (v DurationValue) AddTo(t time.Time) time.Time {
	return addMonths(t, v.Months).Add(v.Duration)
}

func compareDurations(a, b DurationValue) datatypes.Ordering {
	switch {
	case a.Months == b.Months:
		return datatypes.CompareOrdered(a.Duration, b.Duration)
	case a.Duration == b.Duration:
		return datatypes.CompareOrdered(a.Months, b.Months)
	}
	var result datatypes.Ordering
	for i, ref := range durationReferences {
		o := datatypes.OrderingOf(a.AddTo(ref).Compare(b.AddTo(ref)))
		if i > 0 && o != result {
			return datatypes.Unordered
		}
		result = o
	}
	return result
}

// Duration is xsd:duration.
type Duration struct{}

func (Duration) IRI() string {
	return datatypes.XSDDuration
}

func (d Duration) Parse(lexical string) (datatypes.Value, error) {
	v, err := parseDuration(d, lexical)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (Duration) Canonical(v datatypes.Value) string {
	return formatDuration(as[DurationValue](v), "PT0S")
}

func (d Duration) Simplified(v datatypes.Value) string {
	return d.Canonical(v)
}

func (Duration) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareDurations(as[DurationValue](a), as[DurationValue](b))
}

// DayTimeDuration is xsd:dayTimeDuration.
type DayTimeDuration struct{}

func (DayTimeDuration) IRI() string {
	return datatypes.XSDDayTimeDuration
}

func (d DayTimeDuration) Parse(lexical string) (datatypes.Value, error) {
	v, err := parseDuration(d, lexical)
	if err != nil {
		return nil, err
	}
	if v.Months != 0 || strings.ContainsAny(strings.SplitN(collapse(lexical), "T", 2)[0], "YM") {
		return nil, datatypes.NewParseError(d, lexical, fmt.Errorf("year or month component"))
	}
	return v, nil
}

func (DayTimeDuration) Canonical(v datatypes.Value) string {
	return formatDuration(as[DurationValue](v), "PT0S")
}

func (d DayTimeDuration) Simplified(v datatypes.Value) string {
	return d.Canonical(v)
}

func (DayTimeDuration) Compare(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.CompareOrdered(as[DurationValue](a).Duration, as[DurationValue](b).Duration)
}

// Supertype drops the month part when converting back from xsd:duration.
func (DayTimeDuration) Supertype() datatypes.Edge {
	return datatypes.Edge{
		Target:  Duration{},
		Convert: func(v datatypes.Value) datatypes.Value { return v },
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			return DurationValue{Duration: as[DurationValue](v).Duration}, nil
		},
	}
}

// YearMonthDuration is xsd:yearMonthDuration.
type YearMonthDuration struct{}

func (YearMonthDuration) IRI() string {
	return datatypes.XSDYearMonthDuration
}

func (d YearMonthDuration) Parse(lexical string) (datatypes.Value, error) {
	v, err := parseDuration(d, lexical)
	if err != nil {
		return nil, err
	}
	if strings.ContainsAny(collapse(lexical), "DT") {
		return nil, datatypes.NewParseError(d, lexical, fmt.Errorf("day or time component"))
	}
	return v, nil
}

func (YearMonthDuration) Canonical(v datatypes.Value) string {
	return formatDuration(as[DurationValue](v), "P0M")
}

func (d YearMonthDuration) Simplified(v datatypes.Value) string {
	return d.Canonical(v)
}

func (YearMonthDuration) Compare(a, b datatypes.Value) datatypes.Ordering {
	return datatypes.CompareOrdered(as[DurationValue](a).Months, as[DurationValue](b).Months)
}

// Supertype drops the time part when converting back from xsd:duration.
func (YearMonthDuration) Supertype() datatypes.Edge {
	return datatypes.Edge{
		Target:  Duration{},
		Convert: func(v datatypes.Value) datatypes.Value { return v },
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			return DurationValue{Months: as[DurationValue](v).Months}, nil
		},
	}
}
