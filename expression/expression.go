// Package expression evaluates expressions over RDF literals.
//
// The syntax follows the expression language of SPARQL filters: literal terms in
// N-Triples or Turtle shorthand syntax, the operators || && = != < <= > >= + - * / and
// unary ! - +, parentheses, and calls of functions such as STRLEN("abc"). A call whose
// name is a datatype IRI or prefixed name casts its single argument, as in
// xsd:int("5").
//
// Evaluation follows the literal package: failed operations yield the null literal.
// Errors are only returned for malformed expressions and unknown functions or
// operators.
package expression

import (
	"context"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/damedic/rdf-toolbox-go/literal"
	"github.com/damedic/rdf-toolbox-go/ntriples"
)

// Expression is a parsed expression. Expressions are created with Parse or
// MustParse.
type Expression struct {
	tree *orExpr
	text string
}

// String returns the text the expression was parsed from.
func (e Expression) String() string {
	return e.text
}

var parser = participle.MustBuild[orExpr](ntriples.Options()...)

// Parse parses an expression.
//
// Example:
//
//	expr, err := expression.Parse(`STRLEN("chat") + 1`)
//	if err != nil {
//	    // Handle error
//	}
func Parse(expr string) (Expression, error) {
	tree, err := parser.ParseString("", expr)
	if err != nil {
		return Expression{}, fmt.Errorf("parse expression: %w", err)
	}
	return Expression{tree: tree, text: expr}, nil
}

// MustParse is like Parse but panics if the expression cannot be parsed.
func MustParse(expr string) Expression {
	e, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return e
}

// Evaluate evaluates the expression. Literals written in the expression and results
// of functions creating new literals are constructed with opts.
func Evaluate(ctx context.Context, expr Expression, opts ...literal.Option) (literal.Literal, error) {
	if expr.tree == nil {
		return literal.Literal{}, fmt.Errorf("empty expression")
	}
	return expr.tree.eval(evalContext{ctx, opts})
}

// Binary applies a binary operator.
func Binary(ctx context.Context, op string, a, b literal.Literal) (literal.Literal, error) {
	f, ok := binaryOperators[op]
	if !ok {
		return literal.Literal{}, fmt.Errorf("unknown operator %q", op)
	}
	return f(ctx, a, b), nil
}

// Operators returns the binary operators accepted by Binary.
func Operators() []string {
	return []string{"||", "&&", "=", "!=", "<", "<=", ">", ">=", "+", "-", "*", "/"}
}

var binaryOperators = map[string]func(ctx context.Context, a, b literal.Literal) literal.Literal{
	"||": func(_ context.Context, a, b literal.Literal) literal.Literal { return a.Or(b) },
	"&&": func(_ context.Context, a, b literal.Literal) literal.Literal { return a.And(b) },
	"=":  func(_ context.Context, a, b literal.Literal) literal.Literal { return a.Equal(b).Literal() },
	"!=": func(_ context.Context, a, b literal.Literal) literal.Literal { return a.NotEqual(b).Literal() },
	"<":  func(_ context.Context, a, b literal.Literal) literal.Literal { return a.Less(b).Literal() },
	"<=": func(_ context.Context, a, b literal.Literal) literal.Literal { return a.LessOrEqual(b).Literal() },
	">":  func(_ context.Context, a, b literal.Literal) literal.Literal { return a.Greater(b).Literal() },
	">=": func(_ context.Context, a, b literal.Literal) literal.Literal { return a.GreaterOrEqual(b).Literal() },
	"+":  func(ctx context.Context, a, b literal.Literal) literal.Literal { return a.Add(ctx, b) },
	"-":  func(ctx context.Context, a, b literal.Literal) literal.Literal { return a.Sub(ctx, b) },
	"*":  func(ctx context.Context, a, b literal.Literal) literal.Literal { return a.Mul(ctx, b) },
	"/":  func(ctx context.Context, a, b literal.Literal) literal.Literal { return a.Div(ctx, b) },
}

func (ctx evalContext) fold(operands []literal.Literal, ops []string) (literal.Literal, error) {
	acc := operands[0]
	for i, op := range ops {
		var err error
		acc, err = Binary(ctx, op, acc, operands[i+1])
		if err != nil {
			return literal.Literal{}, err
		}
	}
	return acc, nil
}

type evalContext struct {
	context.Context
	opts []literal.Option
}

type orExpr struct {
	Operands []*andExpr `@@ ( "||" @@ )*`
}

func (e *orExpr) eval(ctx evalContext) (literal.Literal, error) {
	operands := make([]literal.Literal, len(e.Operands))
	for i, o := range e.Operands {
		v, err := o.eval(ctx)
		if err != nil {
			return literal.Literal{}, err
		}
		operands[i] = v
	}
	return ctx.fold(operands, repeat("||", len(operands)-1))
}

type andExpr struct {
	Operands []*relExpr `@@ ( "&&" @@ )*`
}

func (e *andExpr) eval(ctx evalContext) (literal.Literal, error) {
	operands := make([]literal.Literal, len(e.Operands))
	for i, o := range e.Operands {
		v, err := o.eval(ctx)
		if err != nil {
			return literal.Literal{}, err
		}
		operands[i] = v
	}
	return ctx.fold(operands, repeat("&&", len(operands)-1))
}

func repeat(op string, n int) []string {
	ops := make([]string, n)
	for i := range ops {
		ops[i] = op
	}
	return ops
}

type relExpr struct {
	Left  *addExpr `@@`
	Op    string   `( @("=" | "!=" | "<=" | ">=" | "<" | ">")`
	Right *addExpr `  @@ )?`
}

func (e *relExpr) eval(ctx evalContext) (literal.Literal, error) {
	left, err := e.Left.eval(ctx)
	if err != nil || e.Right == nil {
		return left, err
	}
	right, err := e.Right.eval(ctx)
	if err != nil {
		return literal.Literal{}, err
	}
	return Binary(ctx, e.Op, left, right)
}

type addExpr struct {
	Left *mulExpr `@@`
	Rest []*addOp `@@*`
}

type addOp struct {
	Op    string   `@("+" | "-")`
	Right *mulExpr `@@`
}

func (e *addExpr) eval(ctx evalContext) (literal.Literal, error) {
	operands := make([]literal.Literal, 0, len(e.Rest)+1)
	ops := make([]string, 0, len(e.Rest))
	v, err := e.Left.eval(ctx)
	if err != nil {
		return literal.Literal{}, err
	}
	operands = append(operands, v)
	for _, r := range e.Rest {
		v, err := r.Right.eval(ctx)
		if err != nil {
			return literal.Literal{}, err
		}
		operands = append(operands, v)
		ops = append(ops, r.Op)
	}
	return ctx.fold(operands, ops)
}

type mulExpr struct {
	Left *unaryExpr `@@`
	Rest []*mulOp   `@@*`
}

type mulOp struct {
	Op    string     `@("*" | "/")`
	Right *unaryExpr `@@`
}

func (e *mulExpr) eval(ctx evalContext) (literal.Literal, error) {
	operands := make([]literal.Literal, 0, len(e.Rest)+1)
	ops := make([]string, 0, len(e.Rest))
	v, err := e.Left.eval(ctx)
	if err != nil {
		return literal.Literal{}, err
	}
	operands = append(operands, v)
	for _, r := range e.Rest {
		v, err := r.Right.eval(ctx)
		if err != nil {
			return literal.Literal{}, err
		}
		operands = append(operands, v)
		ops = append(ops, r.Op)
	}
	return ctx.fold(operands, ops)
}

type unaryExpr struct {
	Op      string   `@("!" | "-" | "+")?`
	Primary *primary `@@`
}

func (e *unaryExpr) eval(ctx evalContext) (literal.Literal, error) {
	if t := e.Primary.Term; t != nil && t.IsNumber() && e.Op != "!" {
		// signed numbers are a single term
		return t.Literal(e.Op, ctx.opts...)
	}
	v, err := e.Primary.eval(ctx)
	if err != nil {
		return literal.Literal{}, err
	}
	switch e.Op {
	case "!":
		return v.Not(), nil
	case "-":
		return v.Neg(ctx), nil
	case "+":
		return v.Pos(ctx), nil
	}
	return v, nil
}

type primary struct {
	Term  *ntriples.Term `  @@`
	Call  *call          `| @@`
	Group *orExpr        `| "(" @@ ")"`
}

func (p *primary) eval(ctx evalContext) (literal.Literal, error) {
	switch {
	case p.Term != nil:
		return p.Term.Literal("", ctx.opts...)
	case p.Call != nil:
		return p.Call.eval(ctx)
	}
	return p.Group.eval(ctx)
}

type call struct {
	Name string    `@(Ident | PName | IRI) "("`
	Args []*orExpr `( @@ ( "," @@ )* )? ")"`
}

func (c *call) eval(ctx evalContext) (literal.Literal, error) {
	args := make([]literal.Literal, len(c.Args))
	for i, a := range c.Args {
		v, err := a.eval(ctx)
		if err != nil {
			return literal.Literal{}, err
		}
		args[i] = v
	}
	return Call(ctx, c.Name, args, ctx.opts...)
}

// Call calls the function name. Names are case insensitive. A name containing a colon
// is a datatype, calling it casts the argument.
func Call(ctx context.Context, name string, args []literal.Literal, opts ...literal.Option) (literal.Literal, error) {
	if strings.Contains(name, ":") {
		if len(args) != 1 {
			return literal.Literal{}, fmt.Errorf("cast to %s: expected 1 parameter, got %d", name, len(args))
		}
		return args[0].Cast(ctx, ntriples.ExpandIRI(name)), nil
	}
	fn, ok := getFunction(ctx, name)
	if !ok {
		return literal.Literal{}, fmt.Errorf("unknown function %s", name)
	}
	res, err := fn(ctx, args, opts)
	if err != nil {
		return literal.Literal{}, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}
