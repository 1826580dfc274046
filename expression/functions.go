package expression

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/literal"
)

// Functions maps upper case function names to their implementation.
type Functions map[string]Function

// Function implements a function. Literals it creates are constructed with opts.
type Function = func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error)

type functionsKey struct{}

// WithFunctions installs the given functions into the context, in addition to the
// built-in functions.
func WithFunctions(ctx context.Context, functions Functions) context.Context {
	all := getFunctions(ctx)
	for name, fn := range functions {
		all[strings.ToUpper(name)] = fn
	}
	return context.WithValue(ctx, functionsKey{}, all)
}

func getFunctions(ctx context.Context) Functions {
	fns, ok := ctx.Value(functionsKey{}).(Functions)
	if !ok {
		return maps.Clone(defaultFunctions)
	}
	return maps.Clone(fns)
}

func getFunction(ctx context.Context, name string) (Function, bool) {
	if fns, ok := ctx.Value(functionsKey{}).(Functions); ok {
		fn, ok := fns[strings.ToUpper(name)]
		return fn, ok
	}
	fn, ok := defaultFunctions[strings.ToUpper(name)]
	return fn, ok
}

// FunctionNames returns the sorted names of the functions available in ctx.
func FunctionNames(ctx context.Context) []string {
	return slices.Sorted(maps.Keys(getFunctions(ctx)))
}

func arity(args []literal.Literal, lo, hi int) error {
	switch {
	case lo == hi && len(args) != lo:
		return fmt.Errorf("expected %d parameters, got %d", lo, len(args))
	case len(args) < lo:
		return fmt.Errorf("expected at least %d parameters, got %d", lo, len(args))
	case len(args) > hi:
		return fmt.Errorf("expected at most %d parameters, got %d", hi, len(args))
	}
	return nil
}

func nullary(f func(ctx context.Context, opts []literal.Option) literal.Literal) Function {
	return func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 0, 0); err != nil {
			return literal.Literal{}, err
		}
		return f(ctx, opts), nil
	}
}

func unary(f func(literal.Literal) literal.Literal) Function {
	return func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 1, 1); err != nil {
			return literal.Literal{}, err
		}
		return f(args[0]), nil
	}
}

func numeric(f func(literal.Literal, context.Context) literal.Literal) Function {
	return func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 1, 1); err != nil {
			return literal.Literal{}, err
		}
		return f(args[0], ctx), nil
	}
}

func binary(f func(literal.Literal, literal.Literal) literal.Literal) Function {
	return func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 2, 2); err != nil {
			return literal.Literal{}, err
		}
		return f(args[0], args[1]), nil
	}
}

// optional wraps a function with n fixed parameters and optional trailing ones.
func optional(n, maxOptional int, f func(fixed, rest []literal.Literal) literal.Literal) Function {
	return func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, n, n+maxOptional); err != nil {
			return literal.Literal{}, err
		}
		return f(args[:n], args[n:]), nil
	}
}

var defaultFunctions = Functions{
	// Terms
	"STR": func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 1, 1); err != nil {
			return literal.Literal{}, err
		}
		return args[0].Cast(ctx, datatypes.XSDString), nil
	},
	"LANG": func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 1, 1); err != nil {
			return literal.Literal{}, err
		}
		if args[0].IsNull() {
			return literal.Literal{}, nil
		}
		return literal.MakeSimple(args[0].LanguageTag(), opts...), nil
	},
	"STRLANG": func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 2, 2); err != nil {
			return literal.Literal{}, err
		}
		if args[0].Datatype() != datatypes.XSDString || args[1].Datatype() != datatypes.XSDString {
			return literal.Literal{}, nil
		}
		l, err := literal.MakeLangTagged(args[0].LexicalForm(), args[1].LexicalForm(), opts...)
		if err != nil {
			return literal.Literal{}, nil
		}
		return l, nil
	},
	"ISNUMERIC": func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if err := arity(args, 1, 1); err != nil {
			return literal.Literal{}, err
		}
		if args[0].IsNull() {
			return literal.Literal{}, nil
		}
		return literal.MakeBoolean(args[0].IsNumeric(), opts...), nil
	},

	// Numbers
	"ABS":   numeric(literal.Literal.Abs),
	"ROUND": numeric(literal.Literal.Round),
	"FLOOR": numeric(literal.Literal.Floor),
	"CEIL":  numeric(literal.Literal.Ceil),
	"RAND": nullary(func(_ context.Context, opts []literal.Option) literal.Literal {
		return literal.GenerateRandomDouble(opts...)
	}),

	// Strings
	"STRLEN": unary(literal.Literal.StrLen),
	"SUBSTR": optional(2, 1, func(fixed, rest []literal.Literal) literal.Literal {
		return fixed[0].Substr(fixed[1], rest...)
	}),
	"UCASE":          unary(literal.Literal.UCase),
	"LCASE":          unary(literal.Literal.LCase),
	"STRSTARTS":      binary(literal.Literal.StrStarts),
	"STRENDS":        binary(literal.Literal.StrEnds),
	"CONTAINS":       binary(literal.Literal.Contains),
	"STRBEFORE":      binary(literal.Literal.StrBefore),
	"STRAFTER":       binary(literal.Literal.StrAfter),
	"ENCODE_FOR_URI": unary(literal.Literal.EncodeForURI),
	"CONCAT": func(ctx context.Context, args []literal.Literal, opts []literal.Option) (literal.Literal, error) {
		if len(args) == 0 {
			return literal.MakeSimple("", opts...), nil
		}
		return literal.Concat(args...), nil
	},
	"LANGMATCHES": binary(literal.Literal.LangMatches),
	"REGEX": optional(2, 1, func(fixed, rest []literal.Literal) literal.Literal {
		return fixed[0].Regex(fixed[1], rest...)
	}),
	"REPLACE": optional(3, 1, func(fixed, rest []literal.Literal) literal.Literal {
		return fixed[0].Replace(fixed[1], fixed[2], rest...)
	}),
	"STRUUID": nullary(func(_ context.Context, opts []literal.Option) literal.Literal {
		return literal.MakeStringUUID(opts...)
	}),

	// Hashes
	"MD5":    unary(literal.Literal.MD5),
	"SHA1":   unary(literal.Literal.SHA1),
	"SHA256": unary(literal.Literal.SHA256),
	"SHA384": unary(literal.Literal.SHA384),
	"SHA512": unary(literal.Literal.SHA512),

	// Dates and times
	"NOW": nullary(func(ctx context.Context, opts []literal.Option) literal.Literal {
		return literal.Now(ctx, opts...)
	}),
	"YEAR":     unary(literal.Literal.Year),
	"MONTH":    unary(literal.Literal.Month),
	"DAY":      unary(literal.Literal.Day),
	"HOURS":    unary(literal.Literal.Hours),
	"MINUTES":  unary(literal.Literal.Minutes),
	"SECONDS":  unary(literal.Literal.Seconds),
	"TIMEZONE": unary(literal.Literal.Timezone),
	"TZ":       unary(literal.Literal.TZ),
}
