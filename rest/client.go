package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Client calls a Server. Literal terms are passed in N-Triples syntax.
type Client struct {
	BaseURL *url.URL
	// Client is the HTTP client used for requests.
	// Defaults to http.DefaultClient.
	Client *http.Client
}

// NewClient returns a Client for the server at baseURL.
func NewClient(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	return &Client{BaseURL: u}, nil
}

// Cast casts term to datatype. The result is nil for the null literal.
func (c *Client) Cast(ctx context.Context, term, datatype string) (*string, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "cast", CastRequest{Term: term, Datatype: datatype}, &res)
	return res.Result, err
}

// Compare compares two terms.
func (c *Client) Compare(ctx context.Context, lhs, rhs string) (CompareResponse, error) {
	var res CompareResponse
	err := c.do(ctx, http.MethodPost, "compare", CompareRequest{LHS: lhs, RHS: rhs}, &res)
	return res, err
}

// Arithmetic applies a binary operator.
func (c *Client) Arithmetic(ctx context.Context, op, lhs, rhs string) (*string, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "arithmetic", ArithmeticRequest{Op: op, LHS: lhs, RHS: rhs}, &res)
	return res.Result, err
}

// Function calls a function.
func (c *Client) Function(ctx context.Context, name string, args ...string) (*string, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "function", FunctionRequest{Name: name, Args: args}, &res)
	return res.Result, err
}

// Evaluate evaluates an expression.
func (c *Client) Evaluate(ctx context.Context, expr string) (*string, error) {
	var res Result
	err := c.do(ctx, http.MethodPost, "evaluate", EvaluateRequest{Expression: expr}, &res)
	return res.Result, err
}

// Datatypes lists the datatypes registered at the server.
func (c *Client) Datatypes(ctx context.Context) ([]Datatype, error) {
	var res []Datatype
	err := c.do(ctx, http.MethodGet, "datatypes", nil, &res)
	return res, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.BaseURL == nil {
		return fmt.Errorf("base URL is nil")
	}
	u := c.BaseURL.JoinPath(path)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return handleErrorResponse(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// ResponseError is returned for requests the server rejected.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
}

// handleErrorResponse reads the error message of a failed request. If the body is
// not an ErrorResponse the raw body is used as message.
func handleErrorResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unexpected status code: %d (failed to read response body: %w)", resp.StatusCode, err)
	}
	var e ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil || e.Error == "" {
		return &ResponseError{StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(body))}
	}
	return &ResponseError{StatusCode: resp.StatusCode, Message: e.Error}
}
