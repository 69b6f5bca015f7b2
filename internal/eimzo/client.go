// Package eimzo is a thin client for the external e-imzo signature server.
// Documents are opaque base64 PKCS#7 blobs: they are forwarded as-is, never
// parsed or modified, and every response comes back as the raw upstream
// status plus body. Interpreting domain status codes is the caller's job,
// with the single exception of the backend auth flow whose contract couples
// it to the login translation table.
package eimzo

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"eimzoapi/internal/config"
)

// Upstream paths, fixed by the e-imzo server.
const (
	verifyPath    = "/backend/pkcs7/verify/attached"
	joinPath      = "/frontend/pkcs7/join"
	timestampPath = "/frontend/timestamp/pkcs7"
	challengePath = "/frontend/challenge"
	authPath      = "/backend/auth"
)

// joinSeparator concatenates two documents for the join endpoint.
const joinSeparator = "|"

// API is the low-level HTTP forwarder shared by the PKCS#7 and auth facades.
// It performs one synchronous outbound call per invocation with the Host and
// X-Real-IP headers taken from the inbound request context, and never retries.
type API struct {
	baseURL string
	http    *http.Client
}

// NewAPI validates the configured base URL and builds the shared forwarder.
// The underlying transport is instrumented for tracing; connection pooling is
// left to net/http.
func NewAPI(cfg config.EimzoConfig) (*API, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("eimzo base url is required")
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	u, err := url.Parse(base)
	if err != nil {
		return nil, errors.Wrap(err, "invalid eimzo base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("eimzo base url %q must be absolute", cfg.BaseURL)
	}

	return &API{
		baseURL: base,
		http: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		},
	}, nil
}

func (a *API) post(ctx context.Context, path, payload string, rc RequestContext) (int, []byte, error) {
	return a.do(ctx, http.MethodPost, path, strings.NewReader(payload), rc)
}

func (a *API) get(ctx context.Context, path string, rc RequestContext) (int, []byte, error) {
	return a.do(ctx, http.MethodGet, path, nil, rc)
}

// do executes a single forwarding call. Transport failures surface as errors;
// any HTTP status, 2xx or not, is a normal return left to the caller.
func (a *API) do(ctx context.Context, method, path string, body io.Reader, rc RequestContext) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "build %s %s request", method, path)
	}
	if rc.Host != "" {
		// The Host header lives on the request struct, not in the header map.
		req.Host = rc.Host
	}
	req.Header.Set("X-Real-IP", rc.ClientIP)

	resp, err := a.http.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "read %s response", path)
	}
	return resp.StatusCode, respBody, nil
}

// PKCS7API is the outbound surface the signature service depends on.
type PKCS7API interface {
	// Timestamp attaches a timestamp token to a PKCS#7 document.
	Timestamp(ctx context.Context, pkcs7 string, rc RequestContext) (int, []byte, error)
	// VerifyAttached verifies a PKCS#7 document with attached content.
	VerifyAttached(ctx context.Context, pkcs7 string, rc RequestContext) (int, []byte, error)
	// Join merges two PKCS#7 documents into a single co-signed document.
	Join(ctx context.Context, first, second string, rc RequestContext) (int, []byte, error)
}

// Client calls the PKCS#7 endpoints of the e-imzo server. All methods report
// the upstream status code and body uninterpreted.
type Client struct {
	api *API
}

// NewClient wraps the shared forwarder with the PKCS#7 facade.
func NewClient(api *API) *Client {
	return &Client{api: api}
}

var _ PKCS7API = (*Client)(nil)

// Timestamp posts the document to the timestamp endpoint and returns the
// upstream response untouched.
func (c *Client) Timestamp(ctx context.Context, pkcs7 string, rc RequestContext) (int, []byte, error) {
	return c.api.post(ctx, timestampPath, pkcs7, rc)
}

// VerifyAttached posts the document to the attached-signature verifier.
func (c *Client) VerifyAttached(ctx context.Context, pkcs7 string, rc RequestContext) (int, []byte, error) {
	return c.api.post(ctx, verifyPath, pkcs7, rc)
}

// Join posts both documents, concatenated with the upstream's literal
// separator. Neither document is modified.
func (c *Client) Join(ctx context.Context, first, second string, rc RequestContext) (int, []byte, error) {
	return c.api.post(ctx, joinPath, first+joinSeparator+second, rc)
}
