package rest_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/rest"
	"github.com/google/go-cmp/cmp"
)

func newTestClient(t *testing.T) *rest.Client {
	t.Helper()
	ts := httptest.NewServer(&rest.Server{})
	t.Cleanup(ts.Close)

	client, err := rest.NewClient(ts.URL)
	if err != nil {
		t.Fatal(err)
	}
	client.Client = ts.Client()
	return client
}

func ptr(s string) *string { return &s }

func TestClientOperations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() (*string, error)
		want *string
	}{
		{
			name: "cast",
			call: func() (*string, error) { return client.Cast(ctx, `"42"`, "xsd:int") },
			want: ptr(`"42"^^<http://www.w3.org/2001/XMLSchema#int>`),
		},
		{
			name: "cast to null",
			call: func() (*string, error) { return client.Cast(ctx, `"x"`, "xsd:int") },
			want: nil,
		},
		{
			name: "arithmetic",
			call: func() (*string, error) { return client.Arithmetic(ctx, "*", "1.5", "2") },
			want: ptr(`"3.0"^^<http://www.w3.org/2001/XMLSchema#decimal>`),
		},
		{
			name: "function",
			call: func() (*string, error) { return client.Function(ctx, "UCASE", `"chat"@en`) },
			want: ptr(`"CHAT"@en`),
		},
		{
			name: "evaluate",
			call: func() (*string, error) { return client.Evaluate(ctx, `CONCAT("a", "b") = "ab"`) },
			want: ptr(`"true"^^<http://www.w3.org/2001/XMLSchema#boolean>`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.call()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClientCompare(t *testing.T) {
	client := newTestClient(t)
	got, err := client.Compare(context.Background(), `"2"^^xsd:short`, "1.5e0")
	if err != nil {
		t.Fatal(err)
	}
	want := rest.CompareResponse{Ordering: "greater", Order: 1}
	if got != want {
		t.Errorf("Compare() = %v, want %v", got, want)
	}
}

func TestClientDatatypes(t *testing.T) {
	client := newTestClient(t)
	got, err := client.Datatypes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	var short *rest.Datatype
	for i := range got {
		if got[i].IRI == datatypes.XSDShort {
			short = &got[i]
		}
	}
	if short == nil {
		t.Fatalf("Datatypes() does not contain %s", datatypes.XSDShort)
	}
	want := rest.Datatype{
		IRI:        datatypes.XSDShort,
		Fixed:      true,
		Numeric:    true,
		Comparable: true,
		Inlinable:  true,
		Supertypes: [][]string{
			{datatypes.XSDInt},
			{datatypes.XSDLong},
			{datatypes.XSDInteger},
			{datatypes.XSDDecimal, datatypes.XSDFloat, datatypes.XSDDouble},
		},
	}
	if diff := cmp.Diff(want, *short); diff != "" {
		t.Errorf("Datatypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestClientErrors(t *testing.T) {
	client := newTestClient(t)
	_, err := client.Evaluate(context.Background(), "1 +")

	var respErr *rest.ResponseError
	if !errors.As(err, &respErr) {
		t.Fatalf("Evaluate() error = %v, want *rest.ResponseError", err)
	}
	if respErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", respErr.StatusCode, http.StatusBadRequest)
	}
	if respErr.Message == "" {
		t.Error("Message is empty")
	}

	if _, err := (&rest.Client{}).Evaluate(context.Background(), "1"); err == nil {
		t.Error("Evaluate() without base URL succeeded")
	}
}
