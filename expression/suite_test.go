package expression_test

import (
	"context"
	"testing"

	"github.com/damedic/rdf-toolbox-go/expression"
	"github.com/damedic/rdf-toolbox-go/testdata"
)

func TestSuite(t *testing.T) {
	groups, err := testdata.Expressions()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, group := range groups {
		t.Run(group.Name, func(t *testing.T) {
			for _, tt := range group.Tests {
				t.Run(tt.Expression, func(t *testing.T) {
					expr, err := expression.Parse(tt.Expression)
					if err != nil {
						t.Fatal(err)
					}
					got, err := expression.Evaluate(ctx, expr)
					if tt.Invalid {
						if err == nil {
							t.Fatalf("Evaluate() = %v, want error", got)
						}
						return
					}
					if err != nil {
						t.Fatal(err)
					}
					if got.String() != tt.Result {
						t.Errorf("Evaluate() = %v, want %v", got, tt.Result)
					}
				})
			}
		})
	}
}
