// Package ntriples parses RDF literal terms in N-Triples syntax.
//
// Besides the N-Triples forms "lexical", "lexical"@lang and "lexical"^^<iri> the
// Turtle shorthands true, false, integers, decimals and doubles are accepted, and a
// datatype may be given as a prefixed name with one of the prefixes xsd: or rdf:.
package ntriples

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/literal"
)

// Lexer tokenizes literal terms and the operators of expressions built from them.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:[^"\\\n\r]|\\.)*"`},
	{Name: "IRI", Pattern: `<[^<>"{}|^` + "`" + `\\\x00-\x20]*>`},
	{Name: "LangTag", Pattern: `@[a-zA-Z]+(?:-[a-zA-Z0-9]+)*`},
	{Name: "Double", Pattern: `(?:\d+\.\d*|\.\d+|\d+)[eE][+-]?\d+`},
	{Name: "Decimal", Pattern: `\d*\.\d+`},
	{Name: "Integer", Pattern: `\d+`},
	{Name: "PName", Pattern: `[A-Za-z][A-Za-z0-9_-]*:[A-Za-z0-9_-]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Operator", Pattern: `\^\^|&&|\|\||!=|<=|>=|[-+*/=<>!(),]`},
})

// Options returns the parser options every grammar built on Lexer needs.
func Options() []participle.Option {
	return []participle.Option{
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Map(unquoteString, "String"),
		participle.Map(unquoteIRI, "IRI"),
		participle.Map(func(t lexer.Token) (lexer.Token, error) {
			t.Value = strings.TrimPrefix(t.Value, "@")
			return t, nil
		}, "LangTag"),
	}
}

// Term is a literal term without sign.
type Term struct {
	Pos lexer.Position

	Quoted  *Quoted `  @@`
	Boolean *string `| @("true" | "false")`
	Double  *string `| @Double`
	Decimal *string `| @Decimal`
	Integer *string `| @Integer`
}

// Quoted is a quoted lexical form with an optional language tag or datatype.
type Quoted struct {
	Lexical  string `@String`
	Lang     string `( @LangTag`
	Datatype string `| "^^" @(IRI | PName) )?`
}

// Prefixes are the namespaces usable as prefixed names.
var Prefixes = map[string]string{
	"xsd": datatypes.XSDNamespace,
	"rdf": datatypes.RDFNamespace,
}

// ExpandIRI resolves a prefixed name. Anything without a known prefix is returned
// unchanged.
func ExpandIRI(name string) string {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return name
	}
	if ns, known := Prefixes[prefix]; known {
		return ns + local
	}
	return name
}

// IsNumber reports whether t is an integer, decimal or double shorthand.
func (t *Term) IsNumber() bool {
	return t.Double != nil || t.Decimal != nil || t.Integer != nil
}

// Literal builds the literal denoted by t. The sign, "+" "-" or "", is only allowed
// for numbers.
func (t *Term) Literal(sign string, opts ...literal.Option) (literal.Literal, error) {
	if sign != "" && !t.IsNumber() {
		return literal.Literal{}, fmt.Errorf("%s: sign before non-numeric term", t.Pos)
	}
	switch {
	case t.Quoted != nil:
		return t.Quoted.literal(opts)
	case t.Boolean != nil:
		return literal.MakeBoolean(*t.Boolean == "true", opts...), nil
	case t.Double != nil:
		return literal.MakeTyped(sign+*t.Double, datatypes.XSDDouble, opts...)
	case t.Decimal != nil:
		return literal.MakeTyped(sign+*t.Decimal, datatypes.XSDDecimal, opts...)
	case t.Integer != nil:
		return literal.MakeTyped(sign+*t.Integer, datatypes.XSDInteger, opts...)
	}
	return literal.Literal{}, fmt.Errorf("%s: empty term", t.Pos)
}

func (q *Quoted) literal(opts []literal.Option) (literal.Literal, error) {
	switch {
	case q.Lang != "":
		return literal.MakeLangTagged(q.Lexical, q.Lang, opts...)
	case q.Datatype != "":
		return literal.MakeTyped(q.Lexical, ExpandIRI(q.Datatype), opts...)
	}
	return literal.MakeSimple(q.Lexical, opts...), nil
}

type signedTerm struct {
	Sign string `@("+" | "-")?`
	Term *Term  `@@`
}

var termParser = participle.MustBuild[signedTerm](Options()...)

// ParseLiteral parses a single literal term.
func ParseLiteral(text string, opts ...literal.Option) (literal.Literal, error) {
	st, err := termParser.ParseString("", text)
	if err != nil {
		return literal.Literal{}, fmt.Errorf("parse literal %q: %w", text, err)
	}
	return st.Term.Literal(st.Sign, opts...)
}

func unquoteString(t lexer.Token) (lexer.Token, error) {
	s, err := unescape(t.Value[1:len(t.Value)-1], true)
	if err != nil {
		return t, participle.Errorf(t.Pos, "%s", err)
	}
	t.Value = s
	return t, nil
}

func unquoteIRI(t lexer.Token) (lexer.Token, error) {
	s, err := unescape(t.Value[1:len(t.Value)-1], false)
	if err != nil {
		return t, participle.Errorf(t.Pos, "%s", err)
	}
	t.Value = s
	return t, nil
}

var echars = map[byte]byte{
	't': '\t', 'b': '\b', 'n': '\n', 'r': '\r', 'f': '\f', '"': '"', '\'': '\'', '\\': '\\',
}

// unescape resolves UCHAR escapes and, if echar is set, the ECHAR escapes of string
// literals.
func unescape(s string, echar bool) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 == len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		i++
		c := s[i]
		switch {
		case c == 'u' || c == 'U':
			n := 4
			if c == 'U' {
				n = 8
			}
			if i+n >= len(s) {
				return "", fmt.Errorf("short escape \\%c", c)
			}
			code, err := strconv.ParseUint(s[i+1:i+1+n], 16, 32)
			if err != nil || !utf8.ValidRune(rune(code)) {
				return "", fmt.Errorf("invalid escape \\%c%s", c, s[i+1:i+1+n])
			}
			b.WriteRune(rune(code))
			i += n
		case echar && echars[c] != 0:
			b.WriteByte(echars[c])
		default:
			return "", fmt.Errorf("invalid escape \\%c", c)
		}
	}
	return b.String(), nil
}
