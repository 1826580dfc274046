package xsd

import (
	"fmt"
	"time"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/internal/overflow"
)

// IsTemporal reports whether dt is one of the datatypes supported by AddTemporal and
// SubTemporal.
func IsTemporal(dt datatypes.Datatype) bool {
	return isInstant(dt) || isDuration(dt)
}

func isInstant(dt datatypes.Datatype) bool {
	switch dt.(type) {
	case DateTime, DateTimeStamp, Date, Time:
		return true
	}
	return false
}

func isDuration(dt datatypes.Datatype) bool {
	switch dt.(type) {
	case Duration, DayTimeDuration, YearMonthDuration:
		return true
	}
	return false
}

// AddTemporal adds a duration to a date or time, or two durations of the same kind.
func AddTemporal(a, b datatypes.TypedValue) (datatypes.TypedValue, error) {
	switch {
	case isInstant(a.Datatype) && isDuration(b.Datatype):
		return addToInstant(a.Datatype, as[DateTimeValue](a.Value), as[DurationValue](b.Value))
	case isDuration(a.Datatype) && isInstant(b.Datatype):
		return addToInstant(b.Datatype, as[DateTimeValue](b.Value), as[DurationValue](a.Value))
	case isDuration(a.Datatype) && isDuration(b.Datatype):
		return addDurations(a.Datatype, b.Datatype, as[DurationValue](a.Value), as[DurationValue](b.Value))
	}
	return datatypes.TypedValue{}, unsupportedTemporal("+", a, b)
}

// SubTemporal subtracts a duration from a date or time, two durations of the same kind,
// or two values of the same date or time datatype. The difference of two dates or times
// is an xsd:dayTimeDuration.
func SubTemporal(a, b datatypes.TypedValue) (datatypes.TypedValue, error) {
	switch {
	case isInstant(a.Datatype) && isDuration(b.Datatype):
		return addToInstant(a.Datatype, as[DateTimeValue](a.Value), as[DurationValue](b.Value).Negate())
	case isDuration(a.Datatype) && isDuration(b.Datatype):
		return addDurations(a.Datatype, b.Datatype, as[DurationValue](a.Value), as[DurationValue](b.Value).Negate())
	case isInstant(a.Datatype) && a.Datatype.IRI() == b.Datatype.IRI():
		d := as[DateTimeValue](a.Value).Time.Sub(as[DateTimeValue](b.Value).Time)
		return datatypes.TypedValue{Datatype: DayTimeDuration{}, Value: DurationValue{Duration: d}}, nil
	}
	return datatypes.TypedValue{}, unsupportedTemporal("-", a, b)
}

func unsupportedTemporal(op string, a, b datatypes.TypedValue) error {
	return fmt.Errorf("%w: %s %s %s", datatypes.ErrUnsupported, a.Datatype.IRI(), op, b.Datatype.IRI())
}

func addToInstant(dt datatypes.Datatype, v DateTimeValue, d DurationValue) (datatypes.TypedValue, error) {
	switch dt.(type) {
	case Time:
		if d.Months != 0 {
			return datatypes.TypedValue{}, fmt.Errorf("%w: time plus months", datatypes.ErrUnsupported)
		}
		t := v.Time.Add(d.Duration)
		clock := t.Sub(startOfDay(t))
		v.Time = time.Date(referenceYear, referenceMonth, referenceDay, 0, 0, 0, 0, t.Location()).Add(clock)
	case Date:
		v = truncateToDate(DateTimeValue{Time: d.AddTo(v.Time), HasTimezone: v.HasTimezone})
	default:
		v.Time = d.AddTo(v.Time)
	}
	return datatypes.TypedValue{Datatype: dt, Value: v}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func addDurations(adt, bdt datatypes.Datatype, a, b DurationValue) (datatypes.TypedValue, error) {
	switch {
	case adt.IRI() != bdt.IRI():
		return datatypes.TypedValue{}, fmt.Errorf("%w: %s and %s", datatypes.ErrUnsupported, adt.IRI(), bdt.IRI())
	case adt.IRI() == datatypes.XSDDuration:
		// a general duration may change sign between its parts
		return datatypes.TypedValue{}, fmt.Errorf("%w: arithmetic on %s", datatypes.ErrUnsupported, adt.IRI())
	}
	months, ok1 := overflow.Add(a.Months, b.Months)
	d, ok2 := overflow.Add(a.Duration, b.Duration)
	if !ok1 || !ok2 {
		return datatypes.TypedValue{}, datatypes.ErrOverOrUnderFlow
	}
	return datatypes.TypedValue{Datatype: adt, Value: DurationValue{Months: months, Duration: d}}, nil
}

// addMonths adds months to t. The day is clamped to the last day of the resulting
// month, so 2000-01-31 plus one month is 2000-02-29.
func addMonths(t time.Time, months int64) time.Time {
	y, m, d := t.Date()
	total := int64(y)*12 + int64(m-1) + months
	year, month := total/12, total%12
	if month < 0 {
		year, month = year-1, month+12
	}
	if last := daysIn(int(year), int(month)+1); d > last {
		d = last
	}
	return time.Date(int(year), time.Month(month+1), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
