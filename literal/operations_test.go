package literal_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/literal"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestArithmetic(t *testing.T) {
	ctx := context.Background()
	type op func(a, b literal.Literal) literal.Literal
	var (
		add op = func(a, b literal.Literal) literal.Literal { return a.Add(ctx, b) }
		sub op = func(a, b literal.Literal) literal.Literal { return a.Sub(ctx, b) }
		mul op = func(a, b literal.Literal) literal.Literal { return a.Mul(ctx, b) }
		div op = func(a, b literal.Literal) literal.Literal { return a.Div(ctx, b) }
	)
	tests := []struct {
		name     string
		op       op
		a, b     string
		wantNull bool
	}{
		{"short plus int", add, typed("1", datatypes.XSDShort), typed("2", datatypes.XSDInt), false},
		{"int plus double", add, typed("1", datatypes.XSDInt), typed("0.5", datatypes.XSDDouble), false},
		{"positive integers", add, typed("1", datatypes.XSDPositiveInteger), typed("2", datatypes.XSDPositiveInteger), false},
		{"decimal plus float", add, typed("1.5", datatypes.XSDDecimal), typed("1", datatypes.XSDFloat), false},
		{"integer division", div, typed("1", datatypes.XSDInteger), typed("4", datatypes.XSDInteger), false},
		{"division by zero", div, typed("1", datatypes.XSDInteger), typed("0", datatypes.XSDInteger), true},
		{"int overflow", mul, typed("2147483647", datatypes.XSDInt), typed("2", datatypes.XSDInt), true},
		{"string operand", add, typed("1", datatypes.XSDString), typed("2", datatypes.XSDInt), true},
		{"dateTime plus duration", add, typed("2020-01-31T12:00:00Z", datatypes.XSDDateTime), typed("P1D", datatypes.XSDDayTimeDuration), false},
		{"date difference", sub, typed("2020-03-01", datatypes.XSDDate), typed("2020-02-29", datatypes.XSDDate), false},
		{"date times duration", mul, typed("2020-03-01", datatypes.XSDDate), typed("P1D", datatypes.XSDDayTimeDuration), true},
	}
	want := map[string]string{
		"short plus int":         typed("3", datatypes.XSDInt),
		"int plus double":        typed("1.5E0", datatypes.XSDDouble),
		"positive integers":      typed("3", datatypes.XSDInteger),
		"decimal plus float":     typed("2.5E0", datatypes.XSDFloat),
		"integer division":       typed("0.25", datatypes.XSDDecimal),
		"dateTime plus duration": typed("2020-02-01T12:00:00Z", datatypes.XSDDateTime),
		"date difference":        typed("P1D", datatypes.XSDDayTimeDuration),
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(parse(t, tt.a), parse(t, tt.b))
			if tt.wantNull {
				if !got.IsNull() {
					t.Errorf("got %v, want null", got)
				}
				return
			}
			if got.String() != want[tt.name] {
				t.Errorf("got %v, want %v", got, want[tt.name])
			}
		})
	}
}

func TestUnary(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		got  func() literal.Literal
		want string
	}{
		{"neg short", func() literal.Literal { return parse(t, typed("7", datatypes.XSDShort)).Neg(ctx) }, typed("-7", datatypes.XSDShort)},
		{"abs negativeInteger", func() literal.Literal { return parse(t, typed("-7", datatypes.XSDNegativeInteger)).Abs(ctx) }, typed("7", datatypes.XSDInteger)},
		{"round decimal", func() literal.Literal { return parse(t, typed("2.5", datatypes.XSDDecimal)).Round(ctx) }, typed("3.0", datatypes.XSDDecimal)},
		{"floor double", func() literal.Literal { return parse(t, typed("-1.5", datatypes.XSDDouble)).Floor(ctx) }, typed("-2.0E0", datatypes.XSDDouble)},
		{"ceil float", func() literal.Literal { return parse(t, typed("1.25", datatypes.XSDFloat)).Ceil(ctx) }, typed("2.0E0", datatypes.XSDFloat)},
		{"neg string", func() literal.Literal { return literal.MakeSimple("1").Neg(ctx) }, "null"},
		{"neg byte min", func() literal.Literal { return parse(t, typed("-128", datatypes.XSDByte)).Neg(ctx) }, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got(); got.String() != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCast(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want string
	}{
		{typed("1.9", datatypes.XSDDouble), datatypes.XSDInteger, typed("1", datatypes.XSDInteger)},
		{typed("3.7", datatypes.XSDDecimal), datatypes.XSDInt, typed("3", datatypes.XSDInt)},
		{typed("-1", datatypes.XSDInt), datatypes.XSDUnsignedInt, "null"},
		{typed("1.5", datatypes.XSDDouble), datatypes.XSDString, `"1.5"`},
		{typed("2020-05-17T10:00:00Z", datatypes.XSDDateTime), datatypes.XSDDate, typed("2020-05-17Z", datatypes.XSDDate)},
		{typed("2020-05-17", datatypes.XSDDate), datatypes.XSDGYear, typed("2020", datatypes.XSDGYear)},
		{typed("2020-05-17", datatypes.XSDDate), datatypes.XSDDateTime, typed("2020-05-17T00:00:00", datatypes.XSDDateTime)},
		{typed("2020-05-17T10:00:00+02:00", datatypes.XSDDateTime), datatypes.XSDGMonthDay, typed("--05-17+02:00", datatypes.XSDGMonthDay)},
		{typed("2020-05-17", datatypes.XSDDate), datatypes.XSDDateTimeStamp, "null"},
		{typed("2020", datatypes.XSDGYear), datatypes.XSDDate, "null"},
		{typed("1.23456789E8", datatypes.XSDDouble), datatypes.XSDDecimal, typed("123456789.0", datatypes.XSDDecimal)},
		{`"abc"`, "http://example.org/unknown", `"abc"^^<http://example.org/unknown>`},
		{`"abc"@en`, "http://example.org/unknown", "null"},
		{typed("false", datatypes.XSDBoolean), datatypes.XSDPositiveInteger, "null"},
		{typed("true", datatypes.XSDBoolean), datatypes.XSDDouble, typed("1.0E0", datatypes.XSDDouble)},
		{typed("0.0", datatypes.XSDDecimal), datatypes.XSDBoolean, typed("false", datatypes.XSDBoolean)},
		{`"42"`, datatypes.XSDByte, typed("42", datatypes.XSDByte)},
		{`"x"`, datatypes.XSDByte, "null"},
		{`"chat"@fr`, datatypes.XSDString, `"chat"`},
		{`"chat"`, datatypes.RDFLangString, "null"},
		{typed("P1Y", datatypes.XSDYearMonthDuration), datatypes.XSDDuration, typed("P1Y", datatypes.XSDDuration)},
		{typed("1", datatypes.XSDInt), "http://example.org/unknown", "null"},
		{typed("2020", datatypes.XSDGYear), datatypes.XSDInt, "null"},
	}
	for _, tt := range tests {
		t.Run(tt.from+" "+tt.to, func(t *testing.T) {
			got := parse(t, tt.from).Cast(context.Background(), tt.to)
			if got.String() != tt.want {
				t.Errorf("Cast() = %v, want %v", got, tt.want)
			}
		})
	}
	if !literal.MakeNull().Cast(context.Background(), datatypes.XSDString).IsNull() {
		t.Error("Cast() of null is not null")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want datatypes.Ordering
	}{
		{typed("1", datatypes.XSDInt), typed("1.0", datatypes.XSDDecimal), datatypes.Equivalent},
		{typed("2", datatypes.XSDByte), typed("1", datatypes.XSDUnsignedByte), datatypes.Greater},
		{typed("1", datatypes.XSDInteger), typed("NaN", datatypes.XSDDouble), datatypes.Unordered},
		{typed("2020-01-01", datatypes.XSDDate), typed("2020-01-01T00:00:01", datatypes.XSDDateTime), datatypes.Unordered},
		{typed("2020-01-01", datatypes.XSDDate), typed("2020-01-01T00:00:00", datatypes.XSDDateTime), datatypes.Unordered},
		{typed("2020", datatypes.XSDGYear), typed("2020-01-01", datatypes.XSDDate), datatypes.Unordered},
		{typed("1.6777217E7", datatypes.XSDDouble), typed("16777217", datatypes.XSDInt), datatypes.Equivalent},
		{typed("16777217", datatypes.XSDInteger), typed("1.6777216E7", datatypes.XSDDouble), datatypes.Greater},
		{`"a"`, `"b"`, datatypes.Less},
		{`"a"@en`, `"a"@en`, datatypes.Equivalent},
		{`"a"@en`, `"a"@de`, datatypes.Greater},
		{`"a"`, `"a"@en`, datatypes.Unordered},
		{typed("true", datatypes.XSDBoolean), typed("false", datatypes.XSDBoolean), datatypes.Greater},
		{typed("P1D", datatypes.XSDDayTimeDuration), typed("PT24H", datatypes.XSDDayTimeDuration), datatypes.Equivalent},
	}
	for _, tt := range tests {
		t.Run(tt.a+" "+tt.b, func(t *testing.T) {
			a, b := parse(t, tt.a), parse(t, tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
			if got := b.Compare(a); got != tt.want.Reverse() {
				t.Errorf("reversed Compare() = %v, want %v", got, tt.want.Reverse())
			}
		})
	}
	if got := literal.MakeNull().Compare(literal.MakeNull()); got != datatypes.Unordered {
		t.Errorf("Compare() of null = %v, want unordered", got)
	}
}

func TestSortOrder(t *testing.T) {
	want := []string{
		"null",
		`"a"`,
		`"b"`,
		`"a"@en`,
		typed("1", datatypes.XSDInteger),
		typed("2", datatypes.XSDInt),
		typed("1.0E1", datatypes.XSDDouble),
	}
	ls := make([]literal.Literal, len(want))
	for i, s := range want {
		ls[len(want)-1-i] = parse(t, s)
	}
	slices.SortStableFunc(ls, literal.Order)
	got := make([]string, len(ls))
	for i, l := range ls {
		got[i] = l.String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sort order mismatch (-want +got):\n%s", diff)
	}
}

func TestPredicates(t *testing.T) {
	one := parse(t, typed("1", datatypes.XSDInt))
	two := parse(t, typed("2.0", datatypes.XSDDecimal))
	str := literal.MakeSimple("1")
	tests := []struct {
		name string
		got  literal.TriBool
		want literal.TriBool
	}{
		{"equal", one.Equal(one), literal.TriTrue},
		{"not equal", one.NotEqual(two), literal.TriTrue},
		{"less", one.Less(two), literal.TriTrue},
		{"less or equal", two.LessOrEqual(one), literal.TriFalse},
		{"greater", two.Greater(one), literal.TriTrue},
		{"greater or equal", one.GreaterOrEqual(one), literal.TriTrue},
		{"incomparable", one.Equal(str), literal.TriError},
		{"incomparable not equal", one.NotEqual(str), literal.TriError},
		{"null", one.Less(literal.MakeNull()), literal.TriError},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLogic(t *testing.T) {
	yes, no := literal.MakeBoolean(true), literal.MakeBoolean(false)
	str := literal.MakeSimple("x")
	date := parse(t, typed("2020-01-01", datatypes.XSDDate))
	tests := []struct {
		name string
		got  literal.Literal
		want string
	}{
		{"and", yes.And(no), typed("false", datatypes.XSDBoolean)},
		{"or", yes.Or(no), typed("true", datatypes.XSDBoolean)},
		{"not", no.Not(), typed("true", datatypes.XSDBoolean)},
		{"string ebv", str.And(yes), typed("true", datatypes.XSDBoolean)},
		{"false and error", no.And(date), typed("false", datatypes.XSDBoolean)},
		{"true or error", yes.Or(date), typed("true", datatypes.XSDBoolean)},
		{"true and error", yes.And(date), "null"},
		{"null", yes.And(literal.MakeNull()), "null"},
		{"not error", date.Not(), "null"},
	}
	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestStringFunctions(t *testing.T) {
	s := literal.MakeSimple
	en := func(lexical string) literal.Literal { return mustLang(t, lexical, "en") }
	boolean := func(b string) string { return typed(b, datatypes.XSDBoolean) }
	integer := func(n string) literal.Literal { return parse(t, typed(n, datatypes.XSDInteger)) }
	tests := []struct {
		name string
		got  literal.Literal
		want string
	}{
		{"strlen", s("chat").StrLen(), typed("4", datatypes.XSDInteger)},
		{"strlen multibyte", en("Grüße").StrLen(), typed("5", datatypes.XSDInteger)},
		{"strlen number", integer("1").StrLen(), "null"},
		{"substr", s("motor car").Substr(integer("6")), `" car"`},
		{"substr length", en("metadata").Substr(integer("4"), integer("3")), `"ada"@en`},
		{"substr rounded", s("12345").Substr(parse(t, typed("1.5", datatypes.XSDDecimal)), parse(t, typed("2.6", datatypes.XSDDouble))), `"234"`},
		{"ucase", en("chat").UCase(), `"CHAT"@en`},
		{"lcase", s("BAR").LCase(), `"bar"`},
		{"strstarts", s("foobar").StrStarts(s("foo")), boolean("true")},
		{"strends", en("foobar").StrEnds(s("bar")), boolean("true")},
		{"contains", s("foobar").Contains(s("baz")), boolean("false")},
		{"contains incompatible", s("foobar").Contains(en("foo")), "null"},
		{"strbefore", en("abc").StrBefore(s("b")), `"a"@en`},
		{"strbefore missing", en("abc").StrBefore(s("z")), `""`},
		{"strafter", s("abc").StrAfter(s("b")), `"c"`},
		{"encode for uri", s("Los Angeles/é").EncodeForURI(), `"Los%20Angeles%2F%C3%A9"`},
		{"concat", literal.Concat(en("foo"), en("bar")), `"foobar"@en`},
		{"concat mixed", literal.Concat(en("foo"), s("bar")), `"foobar"`},
		{"concat empty", literal.Concat(), `""`},
		{"langmatches", s("de-CH").LangMatches(s("de")), boolean("true")},
		{"langmatches star", s("").LangMatches(s("*")), boolean("false")},
		{"regex", s("Alice").Regex(s("^ali"), s("i")), boolean("true")},
		{"regex quoted", s("a.c").Regex(s("."), s("q")), boolean("true")},
		{"regex invalid flag", s("abc").Regex(s("a"), s("z")), "null"},
		{"replace", s("abcd").Replace(s("(b)(c)"), s("$2$1")), `"acbd"`},
		{"replace dollar", en("abc").Replace(s("b"), s(`\$`)), `"a$c"@en`},
		{"replace empty match", s("abc").Replace(s("x*"), s("y")), "null"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestHashes(t *testing.T) {
	abc := literal.MakeSimple("abc")
	tests := []struct {
		name string
		got  literal.Literal
		want string
	}{
		{"md5", abc.MD5(), "900150983cd24fb0d6963f7d28e17f72"},
		{"sha1", abc.SHA1(), "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"sha256", abc.SHA256(), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}
	for _, tt := range tests {
		if tt.got.LexicalForm() != tt.want || tt.got.Datatype() != datatypes.XSDString {
			t.Errorf("%s = %v, want %s", tt.name, tt.got, tt.want)
		}
	}
	if got := abc.SHA384().LexicalForm(); len(got) != 96 {
		t.Errorf("SHA384() length = %d, want 96", len(got))
	}
	if got := abc.SHA512().LexicalForm(); len(got) != 128 {
		t.Errorf("SHA512() length = %d, want 128", len(got))
	}
	if !mustLang(t, "abc", "en").MD5().IsNull() {
		t.Error("MD5() of a language tagged literal is not null")
	}
}

func TestDateFunctions(t *testing.T) {
	dt := parse(t, typed("2011-01-10T14:45:13.815-05:00", datatypes.XSDDateTime))
	date := parse(t, typed("2011-01-10", datatypes.XSDDate))
	clock := parse(t, typed("10:00:00Z", datatypes.XSDTime))
	tests := []struct {
		name string
		got  literal.Literal
		want string
	}{
		{"year", dt.Year(), typed("2011", datatypes.XSDInteger)},
		{"month", dt.Month(), typed("1", datatypes.XSDInteger)},
		{"day", dt.Day(), typed("10", datatypes.XSDInteger)},
		{"hours", dt.Hours(), typed("14", datatypes.XSDInteger)},
		{"minutes", dt.Minutes(), typed("45", datatypes.XSDInteger)},
		{"seconds", dt.Seconds(), typed("13.815", datatypes.XSDDecimal)},
		{"timezone", dt.Timezone(), typed("-PT5H", datatypes.XSDDayTimeDuration)},
		{"tz", dt.TZ(), `"-05:00"`},
		{"date timezone", date.Timezone(), "null"},
		{"date tz", date.TZ(), `""`},
		{"date hours", date.Hours(), "null"},
		{"time year", clock.Year(), "null"},
		{"time tz", clock.TZ(), `"Z"`},
		{"string year", literal.MakeSimple("2011").Year(), "null"},
	}
	for _, tt := range tests {
		if tt.got.String() != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestNow(t *testing.T) {
	at := time.Date(2024, 2, 29, 8, 30, 0, 0, time.UTC)
	ctx := literal.WithEvaluationTime(context.Background(), at)
	got := literal.Now(ctx)
	if want := typed("2024-02-29T08:30:00Z", datatypes.XSDDateTime); got.String() != want {
		t.Errorf("Now() = %v, want %v", got, want)
	}
	if literal.Now(context.Background()).IsNull() {
		t.Error("Now() is null")
	}
}

func TestRandom(t *testing.T) {
	id := literal.MakeStringUUID()
	if _, err := uuid.Parse(id.LexicalForm()); err != nil || id.Datatype() != datatypes.XSDString {
		t.Errorf("MakeStringUUID() = %v: %v", id, err)
	}
	if id.LexicalForm() == literal.MakeStringUUID().LexicalForm() {
		t.Error("MakeStringUUID() repeated")
	}
	for range 100 {
		r, ok := literal.ValueAs[float64](literal.GenerateRandomDouble())
		if !ok || r < 0 || r >= 1 {
			t.Fatalf("GenerateRandomDouble() = %v, %v", r, ok)
		}
	}
}

func TestNullContagion(t *testing.T) {
	ctx := context.Background()
	null := literal.MakeNull()
	one := parse(t, typed("1", datatypes.XSDInt))
	results := map[string]literal.Literal{
		"add":      one.Add(ctx, null),
		"sub":      null.Sub(ctx, one),
		"neg":      null.Neg(ctx),
		"cast":     null.Cast(ctx, datatypes.XSDInt),
		"strlen":   null.StrLen(),
		"concat":   literal.Concat(literal.MakeSimple("a"), null),
		"contains": literal.MakeSimple("a").Contains(null),
		"year":     null.Year(),
		"md5":      null.MD5(),
		"and":      null.And(one),
		"not":      null.Not(),
	}
	for name, got := range results {
		if !got.IsNull() {
			t.Errorf("%s = %v, want null", name, got)
		}
	}
	if got := null.LexicalForm(); got != "" {
		t.Errorf("LexicalForm() = %q, want empty", got)
	}
	if _, ok := null.Value(); ok {
		t.Error("Value() of null found")
	}
}
