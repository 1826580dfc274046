package xsd

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/damedic/rdf-toolbox-go/datatypes"
)

// DateTimeValue is the value of xsd:dateTime, xsd:dateTimeStamp, xsd:date and xsd:time.
//
// Values without a timezone are stored in UTC. Dates are stored at midnight, times on
// the reference date 1972-12-31.
type DateTimeValue struct {
	Time        time.Time
	HasTimezone bool
}

// Timezone returns the offset from UTC.
func (v DateTimeValue) Timezone() (time.Duration, bool) {
	if !v.HasTimezone {
		return 0, false
	}
	_, offset := v.Time.Zone()
	return time.Duration(offset) * time.Second, true
}

const (
	yearPattern     = `(-?\d{4,})`
	timezonePattern = `(Z|[+-]\d{2}:\d{2})?`
	clockPattern    = `(\d{2}):(\d{2}):(\d{2})(\.\d+)?`
)

var (
	dateTimeRegex = regexp.MustCompile(`^` + yearPattern + `-(\d{2})-(\d{2})T` + clockPattern + timezonePattern + `$`)
	dateRegex     = regexp.MustCompile(`^` + yearPattern + `-(\d{2})-(\d{2})` + timezonePattern + `$`)
	timeRegex     = regexp.MustCompile(`^` + clockPattern + timezonePattern + `$`)
)

// referenceYear, referenceMonth and referenceDay fill the components a value does
// not carry.
const (
	referenceYear  = 1972
	referenceMonth = 12
	referenceDay   = 31
)

// MaxTimezoneOffset bounds timezone offsets and the indeterminacy of comparing values
// with and without a timezone.
const MaxTimezoneOffset = 14 * time.Hour

type dateTimeParts struct {
	year, month, day     int
	hour, minute, second int
	nanosecond           int
	timezone             string
}

func atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}

func parseFraction(s string) int {
	if s == "" {
		return 0
	}
	digits := s[1:]
	if len(digits) > 9 {
		digits = digits[:9]
	}
	return atoi(digits + strings.Repeat("0", 9-len(digits)))
}

func parseTimezone(tz string) (*time.Location, bool, error) {
	switch tz {
	case "":
		return time.UTC, false, nil
	case "Z":
		return time.UTC, true, nil
	}
	hours, minutes := atoi(tz[1:3]), atoi(tz[4:6])
	offset := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if minutes > 59 || offset > MaxTimezoneOffset {
		return nil, false, fmt.Errorf("timezone %s out of range", tz)
	}
	if tz[0] == '-' {
		offset = -offset
	}
	if offset == 0 {
		return time.UTC, true, nil
	}
	return time.FixedZone("", int(offset/time.Second)), true, nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func (p dateTimeParts) build() (DateTimeValue, error) {
	if p.month < 1 || p.month > 12 {
		return DateTimeValue{}, fmt.Errorf("month %d out of range", p.month)
	}
	if p.day < 1 || p.day > daysIn(p.year, p.month) {
		return DateTimeValue{}, fmt.Errorf("day %d out of range", p.day)
	}
	endOfDay := p.hour == 24 && p.minute == 0 && p.second == 0 && p.nanosecond == 0
	if p.hour > 23 && !endOfDay || p.minute > 59 || p.second > 59 {
		return DateTimeValue{}, fmt.Errorf("time %02d:%02d:%02d out of range", p.hour, p.minute, p.second)
	}
	loc, hasTZ, err := parseTimezone(p.timezone)
	if err != nil {
		return DateTimeValue{}, err
	}
	t := time.Date(p.year, time.Month(p.month), p.day, p.hour, p.minute, p.second, p.nanosecond, loc)
	return DateTimeValue{Time: t, HasTimezone: hasTZ}, nil
}

func parseDateTime(dt datatypes.Datatype, lexical string) (DateTimeValue, error) {
	m := dateTimeRegex.FindStringSubmatch(collapse(lexical))
	if m == nil {
		return DateTimeValue{}, datatypes.NewParseError(dt, lexical, nil)
	}
	v, err := dateTimeParts{
		year: atoi(m[1]), month: atoi(m[2]), day: atoi(m[3]),
		hour: atoi(m[4]), minute: atoi(m[5]), second: atoi(m[6]),
		nanosecond: parseFraction(m[7]),
		timezone:   m[8],
	}.build()
	if err != nil {
		return DateTimeValue{}, datatypes.NewParseError(dt, lexical, err)
	}
	return v, nil
}

func formatYear(year int) string {
	if year < 0 {
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(t.Year()), t.Month(), t.Day())
}

func formatClock(t time.Time) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", ns), "0")
	}
	return s
}

func formatTimezone(v DateTimeValue) string {
	offset, ok := v.Timezone()
	if !ok {
		return ""
	}
	if offset == 0 {
		return "Z"
	}
	sign := '+'
	if offset < 0 {
		sign, offset = '-', -offset
	}
	return fmt.Sprintf("%c%02d:%02d", sign, int(offset/time.Hour), int(offset%time.Hour/time.Minute))
}

func compareDateTime(a, b datatypes.Value) datatypes.Ordering {
	return compareInstants(as[DateTimeValue](a), as[DateTimeValue](b))
}

// compareInstants orders two values on the time line. A value without timezone may be
// anywhere within MaxTimezoneOffset of its UTC reading, so it is unordered relative to
// a value with timezone that close.
func compareInstants(a, b DateTimeValue) datatypes.Ordering {
	if a.HasTimezone == b.HasTimezone {
		return datatypes.OrderingOf(a.Time.Compare(b.Time))
	}
	if !a.HasTimezone {
		return compareInstants(b, a).Reverse()
	}
	switch {
	case a.Time.Before(b.Time.Add(-MaxTimezoneOffset)):
		return datatypes.Less
	case a.Time.After(b.Time.Add(MaxTimezoneOffset)):
		return datatypes.Greater
	}
	return datatypes.Unordered
}

// DateTime is xsd:dateTime.
type DateTime struct{}

func (DateTime) IRI() string {
	return datatypes.XSDDateTime
}

func (d DateTime) Parse(lexical string) (datatypes.Value, error) {
	return parseDateTime(d, lexical)
}

// Canonical keeps the timezone offset.
func (DateTime) Canonical(v datatypes.Value) string {
	x := as[DateTimeValue](v)
	return formatDate(x.Time) + "T" + formatClock(x.Time) + formatTimezone(x)
}

func (d DateTime) Simplified(v datatypes.Value) string {
	return d.Canonical(v)
}

func (DateTime) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareDateTime(a, b)
}

// DateTimeStamp is xsd:dateTimeStamp, a dateTime with required timezone.
type DateTimeStamp struct{}

func (DateTimeStamp) IRI() string {
	return datatypes.XSDDateTimeStamp
}

func (d DateTimeStamp) Parse(lexical string) (datatypes.Value, error) {
	v, err := parseDateTime(d, lexical)
	if err != nil {
		return nil, err
	}
	if !v.HasTimezone {
		return nil, datatypes.NewParseError(d, lexical, fmt.Errorf("missing timezone"))
	}
	return v, nil
}

func (DateTimeStamp) Canonical(v datatypes.Value) string {
	return DateTime{}.Canonical(v)
}

func (DateTimeStamp) Simplified(v datatypes.Value) string {
	return DateTime{}.Simplified(v)
}

func (DateTimeStamp) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareDateTime(a, b)
}

func (DateTimeStamp) Supertype() datatypes.Edge {
	return datatypes.Edge{
		Target:  DateTime{},
		Convert: func(v datatypes.Value) datatypes.Value { return v },
		Inverse: func(v datatypes.Value) (datatypes.Value, error) {
			if !as[DateTimeValue](v).HasTimezone {
				return nil, fmt.Errorf("%w: dateTime without timezone", datatypes.ErrInvalidValueForCast)
			}
			return v, nil
		},
	}
}

// Date is xsd:date.
type Date struct{}

func (Date) IRI() string {
	return datatypes.XSDDate
}

func (d Date) Parse(lexical string) (datatypes.Value, error) {
	m := dateRegex.FindStringSubmatch(collapse(lexical))
	if m == nil {
		return nil, datatypes.NewParseError(d, lexical, nil)
	}
	v, err := dateTimeParts{year: atoi(m[1]), month: atoi(m[2]), day: atoi(m[3]), timezone: m[4]}.build()
	if err != nil {
		return nil, datatypes.NewParseError(d, lexical, err)
	}
	return v, nil
}

// Canonical keeps the timezone of the date.
func (Date) Canonical(v datatypes.Value) string {
	x := as[DateTimeValue](v)
	return formatDate(x.Time) + formatTimezone(x)
}

func (d Date) Simplified(v datatypes.Value) string {
	return d.Canonical(v)
}

func (Date) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareDateTime(a, b)
}

func truncateToDate(v DateTimeValue) DateTimeValue {
	t := v.Time
	return DateTimeValue{
		Time:        time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()),
		HasTimezone: v.HasTimezone,
	}
}

// Time is xsd:time.
type Time struct{}

func (Time) IRI() string {
	return datatypes.XSDTime
}

func (d Time) Parse(lexical string) (datatypes.Value, error) {
	m := timeRegex.FindStringSubmatch(collapse(lexical))
	if m == nil {
		return nil, datatypes.NewParseError(d, lexical, nil)
	}
	v, err := dateTimeParts{
		year: referenceYear, month: referenceMonth, day: referenceDay,
		hour: atoi(m[1]), minute: atoi(m[2]), second: atoi(m[3]),
		nanosecond: parseFraction(m[4]),
		timezone:   m[5],
	}.build()
	if err != nil {
		return nil, datatypes.NewParseError(d, lexical, err)
	}
	if v.Time.Day() != referenceDay {
		// 24:00:00 is the start of the next day
		v.Time = v.Time.AddDate(0, 0, -1)
	}
	return v, nil
}

// Canonical keeps the timezone offset.
func (Time) Canonical(v datatypes.Value) string {
	x := as[DateTimeValue](v)
	return formatClock(x.Time) + formatTimezone(x)
}

func (d Time) Simplified(v datatypes.Value) string {
	return d.Canonical(v)
}

func (Time) Compare(a, b datatypes.Value) datatypes.Ordering {
	return compareDateTime(a, b)
}
