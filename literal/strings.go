package literal

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stringArg returns the lexical form and language tag of an xsd:string or
// rdf:langString literal.
func (l Literal) stringArg() (lexical, lang string, ok bool) {
	switch l.datatype {
	case stringID:
		return l.LexicalForm(), "", true
	case langStringID:
		return l.LexicalForm(), l.LanguageTag(), true
	}
	return "", "", false
}

// simpleArg returns the lexical form of an xsd:string literal.
func (l Literal) simpleArg() (string, bool) {
	if l.datatype != stringID {
		return "", false
	}
	return l.LexicalForm(), true
}

// compatibleArgs returns the string arguments of a two argument string function. The
// second argument must not carry a language tag different from the first.
func (l Literal) compatibleArgs(other Literal) (a, b, lang string, ok bool) {
	a, lang, ok1 := l.stringArg()
	b, otherLang, ok2 := other.stringArg()
	if !ok1 || !ok2 || otherLang != "" && otherLang != lang {
		return "", "", "", false
	}
	return a, b, lang, true
}

// stringLike returns an rdf:langString if lang is set, an xsd:string otherwise.
func (o options) stringLike(lexical, lang string) Literal {
	if lang == "" {
		return o.simple(lexical)
	}
	l, err := o.langTagged(lexical, lang)
	if err != nil {
		return Literal{}
	}
	return l
}

func (o options) integer(n int64) Literal {
	e, _ := Registry().Entry(datatypes.XSDIntegerID.ID())
	return o.derive(e, apd.NewBigInt(n))
}

// StrLen returns the number of characters of a string literal as xsd:integer.
func (l Literal) StrLen() Literal {
	s, _, ok := l.stringArg()
	if !ok {
		return Literal{}
	}
	return l.options().integer(int64(utf8.RuneCountInString(s)))
}

func (l Literal) doubleArg() (float64, bool) {
	return ValueAs[float64](l.CastID(context.Background(), doubleID))
}

// Substr returns the characters of a string literal starting at the 1-based position
// start, optionally limited to length characters. Positions are rounded.
func (l Literal) Substr(start Literal, length ...Literal) Literal {
	s, lang, ok := l.stringArg()
	if !ok || len(length) > 1 {
		return Literal{}
	}
	from, ok := start.doubleArg()
	if !ok {
		return Literal{}
	}
	from = math.Floor(from + 0.5)
	to := math.Inf(1)
	if len(length) == 1 {
		n, ok := length[0].doubleArg()
		if !ok {
			return Literal{}
		}
		to = from + math.Floor(n+0.5)
	}
	var b strings.Builder
	pos := 1.0
	for _, r := range s {
		if pos >= from && pos < to {
			b.WriteRune(r)
		}
		pos++
	}
	return l.options().stringLike(b.String(), lang)
}

// UCase converts a string literal to upper case, using the casing rules of its
// language.
func (l Literal) UCase() Literal {
	s, lang, ok := l.stringArg()
	if !ok {
		return Literal{}
	}
	return l.options().stringLike(cases.Upper(language.Make(lang)).String(s), lang)
}

// LCase converts a string literal to lower case, using the casing rules of its
// language.
func (l Literal) LCase() Literal {
	s, lang, ok := l.stringArg()
	if !ok {
		return Literal{}
	}
	return l.options().stringLike(cases.Lower(language.Make(lang)).String(s), lang)
}

func (l Literal) stringPredicate(other Literal, f func(a, b string) bool) Literal {
	a, b, _, ok := l.compatibleArgs(other)
	if !ok {
		return Literal{}
	}
	return l.options().boolean(f(a, b))
}

func (l Literal) StrStarts(prefix Literal) Literal {
	return l.stringPredicate(prefix, strings.HasPrefix)
}

func (l Literal) StrEnds(suffix Literal) Literal {
	return l.stringPredicate(suffix, strings.HasSuffix)
}

func (l Literal) Contains(substr Literal) Literal {
	return l.stringPredicate(substr, strings.Contains)
}

// StrBefore returns the part of l before the first occurrence of sep. If sep does not
// occur the result is the empty xsd:string.
func (l Literal) StrBefore(sep Literal) Literal {
	a, b, lang, ok := l.compatibleArgs(sep)
	if !ok {
		return Literal{}
	}
	before, _, found := strings.Cut(a, b)
	if !found {
		return l.options().simple("")
	}
	return l.options().stringLike(before, lang)
}

// StrAfter returns the part of l after the first occurrence of sep. If sep does not
// occur the result is the empty xsd:string.
func (l Literal) StrAfter(sep Literal) Literal {
	a, b, lang, ok := l.compatibleArgs(sep)
	if !ok {
		return Literal{}
	}
	_, after, found := strings.Cut(a, b)
	if !found {
		return l.options().simple("")
	}
	return l.options().stringLike(after, lang)
}

// EncodeForURI percent-encodes all characters of a string literal except the
// unreserved characters of RFC 3986.
func (l Literal) EncodeForURI() Literal {
	s, _, ok := l.stringArg()
	if !ok {
		return Literal{}
	}
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || strings.IndexByte("-._~", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0xF])
	}
	return l.options().simple(b.String())
}

// Concat concatenates string literals. The result keeps the language tag if all
// arguments share it.
func Concat(args ...Literal) Literal {
	var (
		b    strings.Builder
		lang string
	)
	for i, arg := range args {
		s, l, ok := arg.stringArg()
		if !ok {
			return Literal{}
		}
		if i == 0 {
			lang = l
		} else if l != lang {
			lang = ""
		}
		b.WriteString(s)
	}
	o := newOptions(nil)
	if len(args) > 0 {
		o = args[0].options()
	}
	return o.stringLike(b.String(), lang)
}

// LangMatches reports whether the language tag l matches the language range by basic
// filtering. The range "*" matches every non-empty tag.
func (l Literal) LangMatches(languageRange Literal) Literal {
	tag, ok1 := l.simpleArg()
	r, ok2 := languageRange.simpleArg()
	if !ok1 || !ok2 {
		return Literal{}
	}
	var match bool
	switch {
	case r == "*":
		match = tag != ""
	case r == "":
		match = tag == ""
	default:
		tag, r = strings.ToLower(tag), strings.ToLower(r)
		match = tag == r || strings.HasPrefix(tag, r+"-")
	}
	return l.options().boolean(match)
}

// compilePattern compiles an XPath regular expression with the flags s, m, i, x and q.
func compilePattern(pattern, flags string) (*regexp.Regexp, error) {
	var prefix string
	for _, f := range flags {
		switch f {
		case 's', 'm', 'i':
			prefix += string(f)
		case 'x':
			pattern = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, pattern)
		case 'q':
			pattern = regexp.QuoteMeta(pattern)
		default:
			return nil, fmt.Errorf("invalid regular expression flag %q", f)
		}
	}
	if prefix != "" {
		pattern = "(?" + prefix + ")" + pattern
	}
	return regexp.Compile(pattern)
}

func flagsArg(flags []Literal) (string, bool) {
	switch len(flags) {
	case 0:
		return "", true
	case 1:
		return flags[0].simpleArg()
	}
	return "", false
}

// Regex reports whether a string literal matches the pattern.
func (l Literal) Regex(pattern Literal, flags ...Literal) Literal {
	s, _, ok1 := l.stringArg()
	p, ok2 := pattern.simpleArg()
	f, ok3 := flagsArg(flags)
	if !ok1 || !ok2 || !ok3 {
		return Literal{}
	}
	re, err := compilePattern(p, f)
	if err != nil {
		return Literal{}
	}
	return l.options().boolean(re.MatchString(s))
}

// expandTemplate converts an XPath replacement string to a regexp template.
func expandTemplate(repl string) string {
	var b strings.Builder
	for i := 0; i < len(repl); i++ {
		c := repl[i]
		switch {
		case c == '\\' && i+1 < len(repl):
			i++
			if repl[i] == '$' {
				b.WriteString("$$")
			} else {
				b.WriteByte(repl[i])
			}
		case c == '$' && i+1 < len(repl) && '0' <= repl[i+1] && repl[i+1] <= '9':
			i++
			b.WriteString("${")
			b.WriteByte(repl[i])
			b.WriteString("}")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Replace replaces all matches of the pattern. The replacement refers to groups with
// $1 to $9, \$ is a literal dollar sign. A pattern matching the empty string is an
// error.
func (l Literal) Replace(pattern, replacement Literal, flags ...Literal) Literal {
	s, lang, ok1 := l.stringArg()
	p, ok2 := pattern.simpleArg()
	repl, ok3 := replacement.simpleArg()
	f, ok4 := flagsArg(flags)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Literal{}
	}
	re, err := compilePattern(p, f)
	if err != nil || re.MatchString("") {
		return Literal{}
	}
	return l.options().stringLike(re.ReplaceAllString(s, expandTemplate(repl)), lang)
}
