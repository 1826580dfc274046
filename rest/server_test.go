package rest_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/damedic/rdf-toolbox-go/rest"
	"github.com/damedic/rdf-toolbox-go/storage"
	"github.com/damedic/rdf-toolbox-go/testdata/assert"
)

// testCase represents a common structure for HTTP handler tests
type testCase struct {
	name           string
	method         string
	path           string
	requestBody    string
	server         *rest.Server
	expectedStatus int
	expectedBody   string
}

// runTest executes a common test pattern for HTTP handlers
func runTest(t *testing.T, tc testCase) {
	server := tc.server
	if server == nil {
		server = &rest.Server{}
	}

	var req *http.Request
	if tc.requestBody != "" {
		req = httptest.NewRequest(tc.method, "http://example.com"+tc.path, strings.NewReader(tc.requestBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(tc.method, "http://example.com"+tc.path, nil)
	}

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	if rr.Code != tc.expectedStatus {
		t.Errorf("Expected status code %d, got %d", tc.expectedStatus, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %s", ct)
	}
	assert.JSONEqual(t, tc.expectedBody, rr.Body.String())
}

func TestHandleCast(t *testing.T) {
	tests := []testCase{
		{
			name:           "int to short out of range",
			method:         "POST",
			path:           "/cast",
			requestBody:    `{"term": "\"67000\"^^xsd:int", "datatype": "xsd:short"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": null}`,
		},
		{
			name:           "decimal to string",
			method:         "POST",
			path:           "/cast",
			requestBody:    `{"term": "1.5", "datatype": "http://www.w3.org/2001/XMLSchema#string"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": "\"1.5\""}`,
		},
		{
			name:           "boolean to byte",
			method:         "POST",
			path:           "/cast",
			requestBody:    `{"term": "true", "datatype": "xsd:byte"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": "\"1\"^^<http://www.w3.org/2001/XMLSchema#byte>"}`,
		},
		{
			name:           "malformed term",
			method:         "POST",
			path:           "/cast",
			requestBody:    `{"term": "\"abc\"^^xsd:int", "datatype": "xsd:short"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "invalid lexical form \"abc\" for http://www.w3.org/2001/XMLSchema#int"}`,
		},
		{
			name:           "missing datatype",
			method:         "POST",
			path:           "/cast",
			requestBody:    `{"term": "1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "missing datatype"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runTest(t, tc)
		})
	}
}

func TestHandleCompare(t *testing.T) {
	tests := []testCase{
		{
			name:           "int less than integer",
			method:         "POST",
			path:           "/compare",
			requestBody:    `{"lhs": "\"1\"^^xsd:int", "rhs": "10"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ordering": "less", "order": -1}`,
		},
		{
			name:           "string and int",
			method:         "POST",
			path:           "/compare",
			requestBody:    `{"lhs": "\"hello\"", "rhs": "\"5\"^^xsd:int"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ordering": "unordered", "order": -1}`,
		},
		{
			name:           "equivalent",
			method:         "POST",
			path:           "/compare",
			requestBody:    `{"lhs": "1", "rhs": "1"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ordering": "equivalent", "order": 0}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runTest(t, tc)
		})
	}
}

func TestHandleArithmetic(t *testing.T) {
	tests := []testCase{
		{
			name:           "int plus int",
			method:         "POST",
			path:           "/arithmetic",
			requestBody:    `{"op": "+", "lhs": "\"5\"^^xsd:int", "rhs": "\"3\"^^xsd:int"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": "\"8\"^^<http://www.w3.org/2001/XMLSchema#int>"}`,
		},
		{
			name:           "division by zero",
			method:         "POST",
			path:           "/arithmetic",
			requestBody:    `{"op": "/", "lhs": "1", "rhs": "0"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": null}`,
		},
		{
			name:           "decimal precision",
			method:         "POST",
			path:           "/arithmetic",
			requestBody:    `{"op": "/", "lhs": "2", "rhs": "3"}`,
			server:         &rest.Server{DecimalPrecision: 5},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": "\"0.66667\"^^<http://www.w3.org/2001/XMLSchema#decimal>"}`,
		},
		{
			name:           "unknown operator",
			method:         "POST",
			path:           "/arithmetic",
			requestBody:    `{"op": "%", "lhs": "1", "rhs": "2"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "unknown operator \"%\""}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runTest(t, tc)
		})
	}
}

func TestHandleFunction(t *testing.T) {
	tests := []testCase{
		{
			name:           "strlen",
			method:         "POST",
			path:           "/function",
			requestBody:    `{"name": "strlen", "args": ["\"chat\"@en"]}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": "\"4\"^^<http://www.w3.org/2001/XMLSchema#integer>"}`,
		},
		{
			name:           "cast function",
			method:         "POST",
			path:           "/function",
			requestBody:    `{"name": "xsd:int", "args": ["\"42\""]}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"result": "\"42\"^^<http://www.w3.org/2001/XMLSchema#int>"}`,
		},
		{
			name:           "unknown function",
			method:         "POST",
			path:           "/function",
			requestBody:    `{"name": "nope", "args": []}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "unknown function nope"}`,
		},
		{
			name:           "bad argument",
			method:         "POST",
			path:           "/function",
			requestBody:    `{"name": "strlen", "args": ["\"2\"^^xsd:boolean"]}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "argument 1: invalid lexical form \"2\" for http://www.w3.org/2001/XMLSchema#boolean: expected true, false, 1 or 0"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runTest(t, tc)
		})
	}
}

func TestHandleEvaluate(t *testing.T) {
	runTest(t, testCase{
		method:         "POST",
		path:           "/evaluate",
		requestBody:    `{"expression": "STRLEN(\"chat\") * 2 > 7"}`,
		expectedStatus: http.StatusOK,
		expectedBody:   `{"result": "\"true\"^^<http://www.w3.org/2001/XMLSchema#boolean>"}`,
	})
}

func TestMalformedRequests(t *testing.T) {
	tests := []testCase{
		{
			name:           "not json",
			method:         "POST",
			path:           "/cast",
			requestBody:    `term=1`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "decode request: invalid character 'e' in literal true (expecting 'r')"}`,
		},
		{
			name:           "unknown field",
			method:         "POST",
			path:           "/compare",
			requestBody:    `{"left": "1"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error": "decode request: json: unknown field \"left\""}`,
		},
		{
			name:           "body too large",
			method:         "POST",
			path:           "/evaluate",
			requestBody:    `{"expression": "` + strings.Repeat("1+", 64) + `1"}`,
			server:         &rest.Server{MaxBodyBytes: 32},
			expectedStatus: http.StatusRequestEntityTooLarge,
			expectedBody:   `{"error": "http: request body too large"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runTest(t, tc)
		})
	}
}

func TestServerStorage(t *testing.T) {
	mem := storage.NewMemory()
	runTest(t, testCase{
		method:         "POST",
		path:           "/function",
		requestBody:    `{"name": "concat", "args": ["\"a\"", "\"b\""]}`,
		server:         &rest.Server{Storage: mem},
		expectedStatus: http.StatusOK,
		expectedBody:   `{"result": "\"ab\""}`,
	})
	if mem.Len() != 3 {
		t.Errorf("Len() = %d, want 3", mem.Len())
	}
}
