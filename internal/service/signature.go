package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"eimzoapi/internal/eimzo"
)

// SaveResult is the outcome of the timestamp-then-verify pipeline: the
// document now bearing a timestamp token, plus the verifier's full response
// for the caller to inspect or persist.
type SaveResult struct {
	Pkcs7b64     string          `json:"pkcs7b64"`
	Verification json.RawMessage `json:"verification"`
}

// PkcsService defines the PKCS#7 use cases exposed over HTTP.
type PkcsService interface {
	// Timestamp attaches a timestamp token and returns the updated document.
	// A 200 upstream response without a pkcs7b64 field is a NotAcceptableError.
	Timestamp(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (string, error)

	// Verify checks an attached signature and returns the verifier's JSON
	// response untouched.
	Verify(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (json.RawMessage, error)

	// Join merges two signed documents into one and returns the combined
	// document.
	Join(ctx context.Context, first, second string, rc eimzo.RequestContext) (string, error)

	// Save runs the full inbound pipeline: timestamp the document, verify the
	// timestamped result, and translate a domain-level verification failure
	// into a user-facing message.
	Save(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (*SaveResult, error)
}

// pkcsService is a concrete implementation of PkcsService.
type pkcsService struct {
	client eimzo.PKCS7API
}

// NewPkcsService constructs a new PkcsService.
func NewPkcsService(client eimzo.PKCS7API) PkcsService {
	return &pkcsService{client: client}
}

func (s *pkcsService) Timestamp(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (string, error) {
	if pkcs7 == "" {
		return "", ErrDocumentRequired
	}
	status, body, err := s.client.Timestamp(ctx, pkcs7, rc)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", upstreamError(status, body)
	}

	var parsed struct {
		Pkcs7b64 *string `json:"pkcs7b64"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode timestamp response: %w", err)
	}
	if parsed.Pkcs7b64 == nil {
		return "", &NotAcceptableError{Body: body}
	}
	return *parsed.Pkcs7b64, nil
}

func (s *pkcsService) Verify(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (json.RawMessage, error) {
	if pkcs7 == "" {
		return nil, ErrDocumentRequired
	}
	status, body, err := s.client.VerifyAttached(ctx, pkcs7, rc)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, upstreamError(status, body)
	}
	if !json.Valid(body) {
		return nil, errors.New("verify response is not valid json")
	}
	return body, nil
}

func (s *pkcsService) Join(ctx context.Context, first, second string, rc eimzo.RequestContext) (string, error) {
	if first == "" {
		return "", ErrFirstDocumentRequired
	}
	if second == "" {
		return "", ErrSecondDocumentRequired
	}
	status, body, err := s.client.Join(ctx, first, second, rc)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", upstreamError(status, body)
	}

	// The upstream contract allows a 200 without the field; that surfaces as
	// an empty document, not an error.
	var parsed struct {
		Pkcs7b64 string `json:"pkcs7b64"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode join response: %w", err)
	}
	return parsed.Pkcs7b64, nil
}

// Save timestamps the document, then verifies the timestamped result. The
// verifier's domain status is interpreted here: anything other than the
// success sentinel becomes a translated validation failure.
func (s *pkcsService) Save(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (*SaveResult, error) {
	timestamped, err := s.Timestamp(ctx, pkcs7, rc)
	if err != nil {
		return nil, err
	}

	status, body, err := s.client.VerifyAttached(ctx, timestamped, rc)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, upstreamError(status, body)
	}

	var parsed struct {
		Status *int `json:"status"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}
	if parsed.Status != nil && *parsed.Status != eimzo.StatusOK {
		return nil, NewValidationError(eimzo.VerifyMessage(*parsed.Status))
	}
	return &SaveResult{Pkcs7b64: timestamped, Verification: body}, nil
}
