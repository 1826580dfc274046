package datatypes

import (
	"context"

	"github.com/cockroachdb/apd/v3"
)

type apdContextKey struct{}

// WithAPDContext sets the apd.Context for xsd:decimal operations.
//
// The apd.Context controls the precision and rounding behavior of decimal arithmetic.
// By default DefaultAPDContext is used, which keeps 34 significant decimal digits
// (roughly Decimal128).
//
// Example:
//
//	// Set precision to 10 digits
//	ctx := datatypes.WithAPDContext(context.Background(), apd.BaseContext.WithPrecision(10))
//	sum := a.Add(ctx, b)
func WithAPDContext(
	ctx context.Context,
	apdContext *apd.Context,
) context.Context {
	return context.WithValue(ctx, apdContextKey{}, apdContext)
}

// DefaultDecimalPrecision is the number of significant digits kept by DefaultAPDContext.
const DefaultDecimalPrecision uint32 = 34

// DefaultAPDContext is the default precision context for decimal operations.
var DefaultAPDContext = apd.BaseContext.WithPrecision(DefaultDecimalPrecision)

// APDContext returns the apd.Context set with WithAPDContext or DefaultAPDContext.
func APDContext(ctx context.Context) *apd.Context {
	if ctx != nil {
		if apdContext, ok := ctx.Value(apdContextKey{}).(*apd.Context); ok && apdContext != nil {
			return apdContext
		}
	}
	return DefaultAPDContext
}
