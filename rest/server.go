// Package rest provides an HTTP JSON API for RDF literal operations.
//
// Literal terms are exchanged in N-Triples syntax, the Turtle shorthands for
// booleans and numbers are accepted in requests. A null result is returned as JSON
// null.
//
// Currently, installed patterns are:
//   - cast: "POST /cast" with {"term", "datatype"}
//   - compare: "POST /compare" with {"lhs", "rhs"}
//   - arithmetic and other binary operators: "POST /arithmetic" with {"op", "lhs", "rhs"}
//   - functions: "POST /function" with {"name", "args"}
//   - expressions: "POST /evaluate" with {"expression"}
//   - registered datatypes: "GET /datatypes"
//
// Malformed requests are answered with status 400 and a body {"error": "..."}.
//
// If you do not want the handlers installed at the root, use something like
//
//	mux.Handle("/path/", http.StripPrefix("/path", server))
package rest

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/rdf-toolbox-go/datatypes"
	"github.com/damedic/rdf-toolbox-go/expression"
	"github.com/damedic/rdf-toolbox-go/literal"
	"github.com/damedic/rdf-toolbox-go/ntriples"
	"github.com/damedic/rdf-toolbox-go/storage"
)

var (
	defaultServerDecimalPrecision uint32 = 34
	defaultServerMaxBodyBytes     int64  = 1 << 20
)

// Server serves the literal operations over HTTP.
type Server struct {
	// Storage interns the literals of requests and results.
	// Defaults to storage.Default().
	Storage storage.Storage
	// DecimalPrecision is the number of significant digits of decimal division.
	// Defaults to 34.
	DecimalPrecision uint32
	// MaxBodyBytes limits the size of request bodies.
	// Defaults to 1 MiB.
	MaxBodyBytes int64

	// internal fields
	muxMu sync.Mutex
	mux   *http.ServeMux
}

func (s *Server) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	if s.mux == nil {
		s.registerRoutes()
	}
	s.mux.ServeHTTP(writer, request)
}

func (s *Server) registerRoutes() {
	s.muxMu.Lock()
	defer s.muxMu.Unlock()

	// double check, mux might have been set in the background while waiting
	if s.mux != nil {
		return
	}

	mux := http.NewServeMux()
	mux.Handle("POST /cast", http.HandlerFunc(s.handleCast))
	mux.Handle("POST /compare", http.HandlerFunc(s.handleCompare))
	mux.Handle("POST /arithmetic", http.HandlerFunc(s.handleArithmetic))
	mux.Handle("POST /function", http.HandlerFunc(s.handleFunction))
	mux.Handle("POST /evaluate", http.HandlerFunc(s.handleEvaluate))
	mux.Handle("GET /datatypes", http.HandlerFunc(s.handleDatatypes))
	s.mux = mux
}

// CastRequest is the body of "POST /cast".
type CastRequest struct {
	Term     string `json:"term"`
	Datatype string `json:"datatype"`
}

// CompareRequest is the body of "POST /compare".
type CompareRequest struct {
	LHS string `json:"lhs"`
	RHS string `json:"rhs"`
}

// CompareResponse is the result of "POST /compare". Ordering is the partial order
// used by filters, Order the total sort order as -1, 0 or 1.
type CompareResponse struct {
	Ordering string `json:"ordering"`
	Order    int    `json:"order"`
}

// ArithmeticRequest is the body of "POST /arithmetic".
type ArithmeticRequest struct {
	Op  string `json:"op"`
	LHS string `json:"lhs"`
	RHS string `json:"rhs"`
}

// FunctionRequest is the body of "POST /function".
type FunctionRequest struct {
	Name string   `json:"name"`
	Args []string `json:"args"`
}

// EvaluateRequest is the body of "POST /evaluate".
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// Result is the response of all operations yielding a literal. Result is nil for the
// null literal.
type Result struct {
	Result *string `json:"result"`
}

// Datatype describes a registered datatype in "GET /datatypes".
type Datatype struct {
	IRI        string `json:"iri"`
	Fixed      bool   `json:"fixed"`
	Numeric    bool   `json:"numeric"`
	Comparable bool   `json:"comparable"`
	Inlinable  bool   `json:"inlinable"`
	// Supertypes lists the conversion targets by subtype rank.
	Supertypes [][]string `json:"supertypes,omitempty"`
}

// ErrorResponse is the body of failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) context(r *http.Request) context.Context {
	precision := cmp.Or(s.DecimalPrecision, defaultServerDecimalPrecision)
	return datatypes.WithAPDContext(r.Context(), apd.BaseContext.WithPrecision(precision))
}

func (s *Server) options() []literal.Option {
	if s.Storage == nil {
		return nil
	}
	return []literal.Option{literal.WithStorage(s.Storage)}
}

func (s *Server) term(text string) (literal.Literal, error) {
	return ntriples.ParseLiteral(text, s.options()...)
}

func (s *Server) handleCast(w http.ResponseWriter, r *http.Request) {
	var req CastRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Datatype == "" {
		returnErr(w, fmt.Errorf("missing datatype"))
		return
	}
	l, err := s.term(req.Term)
	if err != nil {
		returnErr(w, err)
		return
	}
	returnLiteral(w, l.Cast(s.context(r), ntriples.ExpandIRI(req.Datatype)))
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !s.decode(w, r, &req) {
		return
	}
	lhs, err := s.term(req.LHS)
	if err != nil {
		returnErr(w, err)
		return
	}
	rhs, err := s.term(req.RHS)
	if err != nil {
		returnErr(w, err)
		return
	}
	returnResult(w, CompareResponse{
		Ordering: lhs.Compare(rhs).String(),
		Order:    literal.Order(lhs, rhs),
	}, http.StatusOK)
}

func (s *Server) handleArithmetic(w http.ResponseWriter, r *http.Request) {
	var req ArithmeticRequest
	if !s.decode(w, r, &req) {
		return
	}
	lhs, err := s.term(req.LHS)
	if err != nil {
		returnErr(w, err)
		return
	}
	rhs, err := s.term(req.RHS)
	if err != nil {
		returnErr(w, err)
		return
	}
	res, err := expression.Binary(s.context(r), req.Op, lhs, rhs)
	if err != nil {
		returnErr(w, err)
		return
	}
	returnLiteral(w, res)
}

func (s *Server) handleFunction(w http.ResponseWriter, r *http.Request) {
	var req FunctionRequest
	if !s.decode(w, r, &req) {
		return
	}
	args := make([]literal.Literal, len(req.Args))
	for i, a := range req.Args {
		l, err := s.term(a)
		if err != nil {
			returnErr(w, fmt.Errorf("argument %d: %w", i+1, err))
			return
		}
		args[i] = l
	}
	res, err := expression.Call(s.context(r), req.Name, args, s.options()...)
	if err != nil {
		returnErr(w, err)
		return
	}
	returnLiteral(w, res)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if !s.decode(w, r, &req) {
		return
	}
	expr, err := expression.Parse(req.Expression)
	if err != nil {
		returnErr(w, err)
		return
	}
	res, err := expression.Evaluate(s.context(r), expr, s.options()...)
	if err != nil {
		returnErr(w, err)
		return
	}
	returnLiteral(w, res)
}

func (s *Server) handleDatatypes(w http.ResponseWriter, r *http.Request) {
	reg := literal.Registry()
	var out []Datatype
	for _, id := range reg.IDs() {
		e, ok := reg.Entry(id)
		if !ok {
			continue
		}
		d := Datatype{
			IRI:        id.IRI(),
			Fixed:      id.IsFixed(),
			Numeric:    e.IsNumeric(),
			Comparable: e.Comparer != nil,
			Inlinable:  e.Inliner != nil,
		}
		for rank, level := range e.Conversions.Targets() {
			if rank == 0 {
				continue
			}
			iris := make([]string, len(level))
			for i, t := range level {
				iris[i] = t.IRI()
			}
			d.Supertypes = append(d.Supertypes, iris)
		}
		out = append(out, d)
	}
	returnResult(w, out, http.StatusOK)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	body := http.MaxBytesReader(w, r.Body, cmp.Or(s.MaxBodyBytes, defaultServerMaxBodyBytes))
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			returnResult(w, ErrorResponse{Error: err.Error()}, http.StatusRequestEntityTooLarge)
			return false
		}
		returnErr(w, fmt.Errorf("decode request: %w", err))
		return false
	}
	return true
}

func returnErr(w http.ResponseWriter, err error) {
	slog.Debug("invalid request", "err", err)
	returnResult(w, ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
}

func returnLiteral(w http.ResponseWriter, l literal.Literal) {
	var res Result
	if !l.IsNull() {
		s := l.String()
		res.Result = &s
	}
	returnResult(w, res, http.StatusOK)
}

func returnResult[T any](w http.ResponseWriter, r T, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(r); err != nil {
		slog.Error("error writing response", "err", err)
	}
}
