package literal

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/datatypes/xsd"
)

type evaluationTimeKey struct{}

// WithEvaluationTime fixes the instant returned by Now.
func WithEvaluationTime(ctx context.Context, t time.Time) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, evaluationTimeKey{}, t)
}

func evaluationTime(ctx context.Context) time.Time {
	if ctx != nil {
		if t, ok := ctx.Value(evaluationTimeKey{}).(time.Time); ok {
			return t
		}
	}
	return time.Now()
}

// Now returns the current instant as an xsd:dateTime with timezone.
func Now(ctx context.Context, opts ...Option) Literal {
	e, _ := Registry().Entry(datatypes.XSDDateTimeID.ID())
	return newOptions(opts).derive(e, xsd.DateTimeValue{Time: evaluationTime(ctx), HasTimezone: true})
}

// dateTimeArg returns the value of an xsd:dateTime, xsd:dateTimeStamp, xsd:date or
// xsd:time literal.
func (l Literal) dateTimeArg(withDate, withTime bool) (xsd.DateTimeValue, bool) {
	switch f, _ := l.datatype.Fixed(); f {
	case datatypes.XSDDateTimeID, datatypes.XSDDateTimeStampID:
	case datatypes.XSDDateID:
		if !withDate {
			return xsd.DateTimeValue{}, false
		}
	case datatypes.XSDTimeID:
		if !withTime {
			return xsd.DateTimeValue{}, false
		}
	default:
		return xsd.DateTimeValue{}, false
	}
	return ValueAs[xsd.DateTimeValue](l)
}

func (l Literal) dateTimeComponent(withDate, withTime bool, f func(time.Time) int) Literal {
	v, ok := l.dateTimeArg(withDate, withTime)
	if !ok {
		return Literal{}
	}
	return l.options().integer(int64(f(v.Time)))
}

func (l Literal) Year() Literal {
	return l.dateTimeComponent(true, false, time.Time.Year)
}

func (l Literal) Month() Literal {
	return l.dateTimeComponent(true, false, func(t time.Time) int { return int(t.Month()) })
}

func (l Literal) Day() Literal {
	return l.dateTimeComponent(true, false, time.Time.Day)
}

func (l Literal) Hours() Literal {
	return l.dateTimeComponent(false, true, time.Time.Hour)
}

func (l Literal) Minutes() Literal {
	return l.dateTimeComponent(false, true, time.Time.Minute)
}

// Seconds returns the seconds including fractional seconds as xsd:decimal.
func (l Literal) Seconds() Literal {
	v, ok := l.dateTimeArg(false, true)
	if !ok {
		return Literal{}
	}
	nanos := int64(v.Time.Second())*int64(time.Second) + int64(v.Time.Nanosecond())
	e, _ := Registry().Entry(datatypes.XSDDecimalID.ID())
	return l.options().derive(e, apd.New(nanos, -9))
}

// Timezone returns the timezone offset as xsd:dayTimeDuration, null if the value has
// no timezone.
func (l Literal) Timezone() Literal {
	v, ok := l.dateTimeArg(true, true)
	if !ok {
		return Literal{}
	}
	offset, ok := v.Timezone()
	if !ok {
		return Literal{}
	}
	e, _ := Registry().Entry(datatypes.XSDDayTimeDurationID.ID())
	return l.options().derive(e, xsd.DurationValue{Duration: offset})
}

// TZ returns the timezone as written in a lexical form, "Z" or "+05:00", and the empty
// string if the value has no timezone.
func (l Literal) TZ() Literal {
	v, ok := l.dateTimeArg(true, true)
	if !ok {
		return Literal{}
	}
	offset, ok := v.Timezone()
	switch {
	case !ok:
		return l.options().simple("")
	case offset == 0:
		return l.options().simple("Z")
	}
	sign := '+'
	if offset < 0 {
		sign, offset = '-', -offset
	}
	return l.options().simple(fmt.Sprintf("%c%02d:%02d", sign, int(offset/time.Hour), int(offset%time.Hour/time.Minute)))
}
