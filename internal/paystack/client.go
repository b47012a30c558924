package paystack

import (
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/json-iterator/go"
)

const DefaultBaseURL = "https://api.paystack.co"

// DefaultMaxBodySize caps how much of an upstream response is buffered.
const DefaultMaxBodySize = 8 << 20

type Client struct {
	Base string
	HTTP *http.Client
	// MaxBodySize is the largest upstream body relayed; larger ones fail
	// with ErrResponseTooLarge.
	MaxBodySize int64

	authorization string
}

// New returns a client authenticating every call with secret as a bearer
// credential. A secret already carrying the "Bearer " scheme is used as is.
func New(base, secret string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	if base == "" {
		base = DefaultBaseURL
	}
	auth := strings.TrimSpace(secret)
	if !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		auth = "Bearer " + auth
	}
	return &Client{
		Base:          strings.TrimRight(base, "/"),
		HTTP:          hc,
		MaxBodySize:   DefaultMaxBodySize,
		authorization: auth,
	}
}

// InitializeRequest is the body of POST /transaction/initialize.
type InitializeRequest struct {
	Email  string `json:"email"`
	Amount string `json:"amount"`
}

// CustomerRequest is the body of POST /customer. Values are raw JSON written
// as is; empty fields are omitted so that what the caller left out stays
// left out.
type CustomerRequest struct {
	FirstName stdjson.RawMessage `json:"first_name,omitempty"`
	LastName  stdjson.RawMessage `json:"last_name,omitempty"`
	Email     stdjson.RawMessage `json:"email,omitempty"`
}

func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) ([]byte, error) {
	return c.do(ctx, "initialize transaction", http.MethodPost, "/transaction/initialize", req)
}

// VerifyTransaction looks up reference. The reference is opaque and only
// escaped so that it stays a single path segment.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) ([]byte, error) {
	return c.do(ctx, "verify transaction", http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
}

func (c *Client) CreateCustomer(ctx context.Context, req CustomerRequest) ([]byte, error) {
	return c.do(ctx, "create customer", http.MethodPost, "/customer", req)
}

func (c *Client) ListCustomers(ctx context.Context) ([]byte, error) {
	return c.do(ctx, "list customers", http.MethodGet, "/customer", nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", op, err)
	}
	httpReq.Header.Set("Authorization", c.authorization)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	limit := c.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w: %v", op, ErrUpstreamUnavailable, err)
	}
	if int64(len(respBody)) > limit {
		return nil, fmt.Errorf("%s: %w: over %d bytes", op, ErrResponseTooLarge, limit)
	}

	if resp.StatusCode/100 != 2 {
		return nil, &StatusError{
			Op:          op,
			StatusCode:  resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        respBody,
		}
	}
	return respBody, nil
}
