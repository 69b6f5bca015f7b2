package eimzo

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// AuthAPI is the outbound surface the auth service depends on.
type AuthAPI interface {
	// Challenge fetches a fresh signing challenge for the caller.
	Challenge(ctx context.Context, rc RequestContext) (int, []byte, error)
	// BackendAuth verifies a signed challenge and reports the outcome with
	// the domain status already interpreted.
	BackendAuth(ctx context.Context, pkcs7 string, rc RequestContext) (AuthResult, error)
}

// AuthResult is the interpreted outcome of a backend auth call. OK means the
// upstream answered 200 with domain status StatusOK; only then is Body, the
// raw upstream response, meaningful. Otherwise Message carries the
// user-facing failure text: the translated domain code on a 200, the raw
// upstream body on any other HTTP status.
type AuthResult struct {
	OK         bool
	HTTPStatus int
	Code       int
	Body       json.RawMessage
	Message    string
}

// AuthClient calls the challenge-response endpoints of the e-imzo server.
type AuthClient struct {
	api *API
}

// NewAuthClient wraps the shared forwarder with the auth facade.
func NewAuthClient(api *API) *AuthClient {
	return &AuthClient{api: api}
}

var _ AuthAPI = (*AuthClient)(nil)

// Challenge forwards the challenge request and returns the upstream response
// untouched.
func (c *AuthClient) Challenge(ctx context.Context, rc RequestContext) (int, []byte, error) {
	return c.api.get(ctx, challengePath, rc)
}

// BackendAuth posts the signed challenge and interprets the response. Unlike
// the PKCS#7 endpoints the domain status is resolved here, because callers
// branch on it rather than forwarding the body.
func (c *AuthClient) BackendAuth(ctx context.Context, pkcs7 string, rc RequestContext) (AuthResult, error) {
	status, body, err := c.api.post(ctx, authPath, pkcs7, rc)
	if err != nil {
		return AuthResult{}, err
	}
	if status != http.StatusOK {
		return AuthResult{HTTPStatus: status, Message: string(body)}, nil
	}

	var parsed struct {
		Status *int `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return AuthResult{}, errors.Wrap(err, "decode auth response")
	}
	code := 0
	if parsed.Status != nil {
		code = *parsed.Status
	}
	if code != StatusOK {
		return AuthResult{HTTPStatus: status, Code: code, Message: LoginMessage(code)}, nil
	}
	return AuthResult{OK: true, HTTPStatus: status, Code: code, Body: body}, nil
}
