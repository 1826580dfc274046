// Package literal implements RDF literals on top of the datatype registry.
//
// A Literal is an immutable value. It either carries a small value inline or refers to
// a node interned in a storage.Storage backend. All value reading operations behave the
// same for both representations.
//
// Once a Literal exists no operation on it fails with an error: casts, comparisons,
// arithmetic and functions signal failure by returning the null Literal, and every
// operation with a null operand returns null. Errors are only returned when a literal
// is constructed from malformed input.
package literal

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/datatypes/rdf"
	"github.com/damedic/rdf-toolbox-go/datatypes/xsd"
	"github.com/damedic/rdf-toolbox-go/storage"
	"golang.org/x/text/language"
)

// ErrUnknownDatatype is returned when constructing a literal from a native value of a
// datatype that is not registered.
var ErrUnknownDatatype = errors.New("unknown datatype")

var (
	stringID     = datatypes.XSDStringID.ID()
	langStringID = datatypes.RDFLangStringID.ID()
	booleanID    = datatypes.XSDBooleanID.ID()
	doubleID     = datatypes.XSDDoubleID.ID()
)

var registry = sync.OnceValue(func() *datatypes.Registry {
	r, err := xsd.NewRegistry()
	if err == nil {
		err = rdf.Install(r)
	}
	if err != nil {
		panic(fmt.Sprintf("literal: install built-in datatypes: %v", err))
	}
	return r
})

// Registry returns the process-wide datatype registry, created with all built-in
// datatypes on first use.
func Registry() *datatypes.Registry {
	return registry()
}

// Register adds dt to the process-wide registry. A datatype already registered under
// the same IRI is replaced.
func Register(dt datatypes.Datatype) (datatypes.ID, error) {
	return Registry().Add(dt)
}

// Literal is an RDF literal. The zero value is the null Literal.
type Literal struct {
	datatype datatypes.ID
	inline   bool
	payload  uint64
	node     storage.NodeID
	// lang is the inlined language tag of an rdf:langString, 0 if not inlined.
	lang  uint8
	store storage.Storage
}

// Option configures the construction of a literal.
type Option func(*options)

type options struct {
	store    storage.Storage
	noInline bool
}

// WithStorage interns non-inlined values in s instead of storage.Default().
func WithStorage(s storage.Storage) Option {
	return func(o *options) {
		o.store = s
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = storage.Default()
	}
	return o
}

// options returns the construction options for literals derived from l.
func (l Literal) options() options {
	if l.store != nil {
		return options{store: l.store}
	}
	return options{store: storage.Default()}
}

func (o options) intern(id datatypes.ID, view storage.LiteralView) (Literal, error) {
	node, err := o.store.FindOrMakeID(view)
	if err != nil {
		return Literal{}, fmt.Errorf("intern literal: %w", err)
	}
	return Literal{datatype: id, node: node, store: o.store}, nil
}

func (o options) fromValue(e *datatypes.Entry, v datatypes.Value) (Literal, error) {
	if lv, ok := v.(rdf.LangStringValue); ok && e.ID == langStringID {
		return o.langTagged(lv.Lexical, lv.Lang)
	}
	if !o.noInline && e.Inliner != nil {
		if payload, ok := e.Inliner.TryInline(v); ok && payload <= datatypes.MaxInlinedPayload {
			return Literal{datatype: e.ID, inline: true, payload: payload}, nil
		}
	}
	view := storage.LiteralView{Datatype: e.ID.IRI(), Lexical: e.Datatype.Canonical(v)}
	if o.store.HasSpecializedStorageFor(view.Datatype) {
		view.Boxed = v
	}
	return o.intern(e.ID, view)
}

func (o options) langTagged(lexical, lang string) (Literal, error) {
	l, err := o.intern(langStringID, storage.LiteralView{Datatype: datatypes.RDFLangString, Lexical: lexical, Lang: lang})
	if err != nil {
		return Literal{}, err
	}
	l.lang, _ = rdf.InlineTag(lang)
	return l, nil
}

// derive builds a literal from a value produced by an operation. Failures yield null.
func (o options) derive(e *datatypes.Entry, v datatypes.Value) Literal {
	l, err := o.fromValue(e, v)
	if err != nil {
		slog.Error("failed to store literal", "datatype", e.ID, "err", err)
		return Literal{}
	}
	return l
}

func (o options) typed(tv datatypes.TypedValue) Literal {
	e, ok := Registry().Entry(datatypes.IDOf(tv.Datatype.IRI()))
	if !ok {
		return Literal{}
	}
	return o.derive(e, tv.Value)
}

func (o options) simple(lexical string) Literal {
	l, err := o.intern(stringID, storage.LiteralView{Datatype: datatypes.XSDString, Lexical: lexical})
	if err != nil {
		slog.Error("failed to store literal", "datatype", stringID, "err", err)
		return Literal{}
	}
	return l
}

// MakeNull returns the null Literal.
func MakeNull() Literal {
	return Literal{}
}

// MakeSimple returns an xsd:string literal.
func MakeSimple(lexical string, opts ...Option) Literal {
	return newOptions(opts).simple(lexical)
}

// MakeLangTagged returns an rdf:langString literal. The language tag must be a
// well-formed BCP 47 tag, it is stored in lower case.
func MakeLangTagged(lexical, tag string, opts ...Option) (Literal, error) {
	lang, err := normalizeLangTag(tag)
	if err != nil {
		return Literal{}, err
	}
	return newOptions(opts).langTagged(lexical, lang)
}

func normalizeLangTag(tag string) (string, error) {
	if tag == "" {
		return "", fmt.Errorf("empty language tag")
	}
	if _, err := language.Parse(tag); err != nil {
		var unknown language.ValueError
		if !errors.As(err, &unknown) {
			return "", fmt.Errorf("invalid language tag %q: %w", tag, err)
		}
	}
	return strings.ToLower(tag), nil
}

// MakeTyped parses lexical as a value of the datatype iri.
//
// Literals of datatypes that are not registered are kept by their lexical form; they
// can be compared for identity and cast to xsd:string but support no other operation.
func MakeTyped(lexical, iri string, opts ...Option) (Literal, error) {
	if iri == "" {
		return Literal{}, fmt.Errorf("empty datatype IRI")
	}
	id := datatypes.IDOf(iri)
	o := newOptions(opts)
	e, ok := Registry().Entry(id)
	if !ok {
		return o.intern(id, storage.LiteralView{Datatype: iri, Lexical: lexical})
	}
	v, err := e.Datatype.Parse(lexical)
	if err != nil {
		return Literal{}, err
	}
	return o.fromValue(e, v)
}

// MakeTypedFromValue returns a literal of the registered datatype dt holding the
// native value v. It fails with datatypes.ErrInvalidValueForCast if v is not a native
// value of dt.
func MakeTypedFromValue(dt datatypes.Datatype, v datatypes.Value, opts ...Option) (Literal, error) {
	e, ok := Registry().Entry(datatypes.IDOf(dt.IRI()))
	if !ok {
		return Literal{}, fmt.Errorf("%w: %s", ErrUnknownDatatype, dt.IRI())
	}
	if err := checkValue(e, v); err != nil {
		return Literal{}, err
	}
	return newOptions(opts).fromValue(e, v)
}

// checkValue formats v with the datatype of e. Datatypes assert the Go type of the
// values they are given and panic on a mismatch.
func checkValue(e *datatypes.Entry, v datatypes.Value) (err error) {
	if v == nil {
		return fmt.Errorf("%w: nil value for %s", datatypes.ErrInvalidValueForCast, e.ID)
	}
	defer func() {
		if recover() != nil {
			err = fmt.Errorf("%w: %T is not a value of %s", datatypes.ErrInvalidValueForCast, v, e.ID)
		}
	}()
	e.Datatype.Canonical(v)
	return nil
}

// MakeBoolean returns an xsd:boolean literal.
func MakeBoolean(b bool, opts ...Option) Literal {
	return newOptions(opts).boolean(b)
}

func (o options) boolean(b bool) Literal {
	e, _ := Registry().Entry(booleanID)
	return o.derive(e, b)
}

// IsNull reports whether l is the null Literal.
func (l Literal) IsNull() bool {
	return l.datatype.IsZero()
}

// IsInlined reports whether the value of l is carried inline.
func (l Literal) IsInlined() bool {
	return l.inline
}

// IsNumeric reports whether l is of a numeric datatype.
func (l Literal) IsNumeric() bool {
	n, _ := Registry().Numeric(l.datatype)
	return n != nil
}

// Datatype returns the datatype IRI, "" for null.
func (l Literal) Datatype() string {
	return l.datatype.IRI()
}

// DatatypeID returns the datatype identity.
func (l Literal) DatatypeID() datatypes.ID {
	return l.datatype
}

func (l Literal) view() (storage.LiteralView, bool) {
	if l.inline || l.store == nil {
		return storage.LiteralView{}, false
	}
	v, err := l.store.LiteralBackend(l.node)
	if err != nil {
		slog.Error("failed to read literal", "node", l.node, "err", err)
		return storage.LiteralView{}, false
	}
	return v, true
}

// Value returns the native value of l. It reports false for null and for literals of
// datatypes that are not registered.
func (l Literal) Value() (datatypes.Value, bool) {
	if l.IsNull() {
		return nil, false
	}
	e, ok := Registry().Entry(l.datatype)
	if !ok {
		return nil, false
	}
	if l.inline {
		if e.Inliner == nil {
			return nil, false
		}
		return e.Inliner.FromInline(l.payload), true
	}
	view, ok := l.view()
	if !ok {
		return nil, false
	}
	switch {
	case l.datatype == langStringID:
		return rdf.LangStringValue{Lexical: view.Lexical, Lang: view.Lang}, true
	case view.Boxed != nil:
		return view.Boxed, true
	}
	v, err := e.Datatype.Parse(view.Lexical)
	if err != nil {
		slog.Error("stored lexical form does not parse", "datatype", l.datatype, "lexical", view.Lexical, "err", err)
		return nil, false
	}
	return v, true
}

// ValueAs returns the native value of l as a T.
func ValueAs[T any](l Literal) (T, bool) {
	v, ok := l.Value()
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// LexicalForm returns the lexical form of l, "" for null.
func (l Literal) LexicalForm() string {
	if l.IsNull() {
		return ""
	}
	if l.inline {
		e, ok := Registry().Entry(l.datatype)
		if !ok || e.Inliner == nil {
			return ""
		}
		return e.Datatype.Canonical(e.Inliner.FromInline(l.payload))
	}
	view, _ := l.view()
	return view.Lexical
}

// SimplifiedLexicalForm returns the human friendly lexical form of l, for example
// "1.5" instead of "1.5E0" for an xsd:double.
func (l Literal) SimplifiedLexicalForm() string {
	dt, ok := Registry().Datatype(l.datatype)
	if !ok {
		return l.LexicalForm()
	}
	v, ok := l.Value()
	if !ok {
		return l.LexicalForm()
	}
	return dt.Simplified(v)
}

// LanguageTag returns the language tag of an rdf:langString literal, "" otherwise.
func (l Literal) LanguageTag() string {
	if l.lang != 0 {
		return rdf.InlinedTag(l.lang)
	}
	if l.datatype != langStringID {
		return ""
	}
	view, _ := l.view()
	return view.Lang
}

var ntriplesEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// String returns l in N-Triples syntax, "null" for the null Literal.
func (l Literal) String() string {
	if l.IsNull() {
		return "null"
	}
	quoted := `"` + ntriplesEscaper.Replace(l.LexicalForm()) + `"`
	switch l.datatype {
	case stringID:
		return quoted
	case langStringID:
		return quoted + "@" + l.LanguageTag()
	}
	return quoted + "^^<" + l.datatype.IRI() + ">"
}
