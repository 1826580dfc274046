package xsd

import (
	"fmt"
	"regexp"
	"time"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// GregorianValue is the value of the partial date datatypes gYear, gYearMonth, gMonth,
// gMonthDay and gDay. Components a datatype does not carry are zero.
type GregorianValue struct {
	Year, Month, Day int
	// Timezone is only meaningful if HasTimezone is set.
	Timezone    time.Duration
	HasTimezone bool
}

// gregorian describes one of the partial date datatypes.
type gregorian struct {
	regex                     *regexp.Regexp
	hasYear, hasMonth, hasDay bool
}

var (
	gYear      = gregorian{regexp.MustCompile(`^` + yearPattern + timezonePattern + `$`), true, false, false}
	gYearMonth = gregorian{regexp.MustCompile(`^` + yearPattern + `-(\d{2})` + timezonePattern + `$`), true, true, false}
	gMonth     = gregorian{regexp.MustCompile(`^--(\d{2})` + timezonePattern + `$`), false, true, false}
	gMonthDay  = gregorian{regexp.MustCompile(`^--(\d{2})-(\d{2})` + timezonePattern + `$`), false, true, true}
	gDay       = gregorian{regexp.MustCompile(`^---(\d{2})` + timezonePattern + `$`), false, false, true}
)

func (g gregorian) parse(dt datatypes.Datatype, lexical string) (datatypes.Value, error) {
	m := g.regex.FindStringSubmatch(collapse(lexical))
	if m == nil {
		return nil, datatypes.NewParseError(dt, lexical, nil)
	}
	var v GregorianValue
	groups := m[1:]
	next := func() int {
		i := atoi(groups[0])
		groups = groups[1:]
		return i
	}
	if g.hasYear {
		v.Year = next()
	}
	if g.hasMonth {
		v.Month = next()
	}
	if g.hasDay {
		v.Day = next()
	}
	// the remaining group is the timezone
	_, err := g.date(v).build()
	if err != nil {
		return nil, datatypes.NewParseError(dt, lexical, err)
	}
	loc, hasTZ, err := parseTimezone(groups[0])
	if err != nil {
		return nil, datatypes.NewParseError(dt, lexical, err)
	}
	if hasTZ {
		_, offset := time.Date(2000, 1, 1, 0, 0, 0, 0, loc).Zone()
		v.Timezone = time.Duration(offset) * time.Second
		v.HasTimezone = true
	}
	return v, nil
}

// date fills the missing components of v from the reference date.
func (g gregorian) date(v GregorianValue) dateTimeParts {
	p := dateTimeParts{year: referenceYear, month: referenceMonth, day: 1}
	if g.hasYear {
		p.year, p.month = v.Year, 1
	}
	if g.hasMonth {
		p.month = v.Month
	}
	if g.hasDay {
		p.day = v.Day
	}
	return p
}

func (g gregorian) toDate(v datatypes.Value) datatypes.Value {
	x := as[GregorianValue](v)
	p := g.date(x)
	loc := time.UTC
	if x.HasTimezone && x.Timezone != 0 {
		loc = time.FixedZone("", int(x.Timezone/time.Second))
	}
	return DateTimeValue{
		Time:        time.Date(p.year, time.Month(p.month), p.day, 0, 0, 0, 0, loc),
		HasTimezone: x.HasTimezone,
	}
}

func (g gregorian) fromDate(x DateTimeValue) GregorianValue {
	var r GregorianValue
	if g.hasYear {
		r.Year = x.Time.Year()
	}
	if g.hasMonth {
		r.Month = int(x.Time.Month())
	}
	if g.hasDay {
		r.Day = x.Time.Day()
	}
	r.Timezone, r.HasTimezone = x.Timezone()
	return r
}

var gregorians = map[string]gregorian{
	datatypes.XSDGYear:      gYear,
	datatypes.XSDGYearMonth: gYearMonth,
	datatypes.XSDGMonth:     gMonth,
	datatypes.XSDGMonthDay:  gMonthDay,
	datatypes.XSDGDay:       gDay,
}

// CastTemporal casts between the date and time datatypes: dateTime and date convert
// into each other and into the partial date datatypes. The datatypes are not ordered
// against each other, so these casts are not derived from conversion edges. It
// reports false if the pair is not such a cast or v is not representable in target.
func CastTemporal(source, target string, v datatypes.Value) (datatypes.Value, bool) {
	switch source {
	case datatypes.XSDDateTime, datatypes.XSDDateTimeStamp, datatypes.XSDDate:
	default:
		return nil, false
	}
	x, ok := v.(DateTimeValue)
	if !ok {
		return nil, false
	}
	switch target {
	case datatypes.XSDDate:
		return truncateToDate(x), true
	case datatypes.XSDDateTime:
		return x, true
	case datatypes.XSDDateTimeStamp:
		return x, x.HasTimezone
	}
	g, ok := gregorians[target]
	if !ok {
		return nil, false
	}
	return g.fromDate(x), true
}

func (g gregorian) format(v datatypes.Value) string {
	x := as[GregorianValue](v)
	var s string
	switch {
	case g.hasYear && g.hasMonth:
		s = fmt.Sprintf("%s-%02d", formatYear(x.Year), x.Month)
	case g.hasYear:
		s = formatYear(x.Year)
	case g.hasMonth && g.hasDay:
		s = fmt.Sprintf("--%02d-%02d", x.Month, x.Day)
	case g.hasMonth:
		s = fmt.Sprintf("--%02d", x.Month)
	default:
		s = fmt.Sprintf("---%02d", x.Day)
	}
	return s + formatTimezone(as[DateTimeValue](g.toDate(v)))
}

func (g gregorian) compare(a, b datatypes.Value) datatypes.Ordering {
	return compareInstants(as[DateTimeValue](g.toDate(a)), as[DateTimeValue](g.toDate(b)))
}

// GYear is xsd:gYear.
type GYear struct{}

func (GYear) IRI() string                                     { return datatypes.XSDGYear }
func (t GYear) Parse(lexical string) (datatypes.Value, error) { return gYear.parse(t, lexical) }
func (GYear) Canonical(v datatypes.Value) string              { return gYear.format(v) }
func (GYear) Simplified(v datatypes.Value) string             { return gYear.format(v) }
func (GYear) Compare(a, b datatypes.Value) datatypes.Ordering { return gYear.compare(a, b) }

// GYearMonth is xsd:gYearMonth.
type GYearMonth struct{}

func (GYearMonth) IRI() string                                     { return datatypes.XSDGYearMonth }
func (t GYearMonth) Parse(lexical string) (datatypes.Value, error) { return gYearMonth.parse(t, lexical) }
func (GYearMonth) Canonical(v datatypes.Value) string              { return gYearMonth.format(v) }
func (GYearMonth) Simplified(v datatypes.Value) string             { return gYearMonth.format(v) }
func (GYearMonth) Compare(a, b datatypes.Value) datatypes.Ordering { return gYearMonth.compare(a, b) }

// GMonth is xsd:gMonth.
type GMonth struct{}

func (GMonth) IRI() string                                     { return datatypes.XSDGMonth }
func (t GMonth) Parse(lexical string) (datatypes.Value, error) { return gMonth.parse(t, lexical) }
func (GMonth) Canonical(v datatypes.Value) string              { return gMonth.format(v) }
func (GMonth) Simplified(v datatypes.Value) string             { return gMonth.format(v) }
func (GMonth) Compare(a, b datatypes.Value) datatypes.Ordering { return gMonth.compare(a, b) }

// GMonthDay is xsd:gMonthDay.
type GMonthDay struct{}

func (GMonthDay) IRI() string                                     { return datatypes.XSDGMonthDay }
func (t GMonthDay) Parse(lexical string) (datatypes.Value, error) { return gMonthDay.parse(t, lexical) }
func (GMonthDay) Canonical(v datatypes.Value) string              { return gMonthDay.format(v) }
func (GMonthDay) Simplified(v datatypes.Value) string             { return gMonthDay.format(v) }
func (GMonthDay) Compare(a, b datatypes.Value) datatypes.Ordering { return gMonthDay.compare(a, b) }

// GDay is xsd:gDay.
type GDay struct{}

func (GDay) IRI() string                                     { return datatypes.XSDGDay }
func (t GDay) Parse(lexical string) (datatypes.Value, error) { return gDay.parse(t, lexical) }
func (GDay) Canonical(v datatypes.Value) string              { return gDay.format(v) }
func (GDay) Simplified(v datatypes.Value) string             { return gDay.format(v) }
func (GDay) Compare(a, b datatypes.Value) datatypes.Ordering { return gDay.compare(a, b) }
