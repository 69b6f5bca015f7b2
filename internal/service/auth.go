package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"eimzoapi/internal/eimzo"
)

// LoginResult describes an authenticated signer: the derived user type, the
// certificate subject attributes, and the full upstream auth response.
type LoginResult struct {
	UserType int               `json:"user_type"`
	Subject  map[string]string `json:"subject"`
	Auth     json.RawMessage   `json:"auth"`
}

// AuthService defines the challenge-response authentication use cases.
type AuthService interface {
	// Challenge fetches a one-time signing challenge and returns the
	// upstream JSON response untouched.
	Challenge(ctx context.Context, rc eimzo.RequestContext) (json.RawMessage, error)

	// Login verifies a signed challenge and classifies the signer from the
	// certificate subject.
	Login(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (*LoginResult, error)

	// Ping reports whether the e-imzo server is reachable.
	Ping(ctx context.Context) error
}

// authService is a concrete implementation of AuthService.
type authService struct {
	client eimzo.AuthAPI
}

// NewAuthService constructs a new AuthService.
func NewAuthService(client eimzo.AuthAPI) AuthService {
	return &authService{client: client}
}

func (s *authService) Challenge(ctx context.Context, rc eimzo.RequestContext) (json.RawMessage, error) {
	status, body, err := s.client.Challenge(ctx, rc)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, upstreamError(status, body)
	}
	if !json.Valid(body) {
		return nil, errors.New("challenge response is not valid json")
	}
	return body, nil
}

func (s *authService) Login(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (*LoginResult, error) {
	if pkcs7 == "" {
		return nil, ErrDocumentRequired
	}
	res, err := s.client.BackendAuth(ctx, pkcs7, rc)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		code := http.StatusBadRequest
		if res.HTTPStatus != http.StatusOK {
			code = res.HTTPStatus
		}
		return nil, &ValidationError{Code: code, ErrMsg: res.Message}
	}

	var parsed struct {
		SubjectCertificateInfo struct {
			SubjectName map[string]string `json:"subjectName"`
		} `json:"subjectCertificateInfo"`
	}
	if err := json.Unmarshal(res.Body, &parsed); err != nil {
		return nil, fmt.Errorf("decode auth subject: %w", err)
	}
	userType, err := eimzo.ClassifyUserType(parsed.SubjectCertificateInfo.SubjectName)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}
	return &LoginResult{
		UserType: userType,
		Subject:  parsed.SubjectCertificateInfo.SubjectName,
		Auth:     res.Body,
	}, nil
}

// Ping exercises the cheapest upstream endpoint. Used by the readiness
// probe, so it carries no caller identity.
func (s *authService) Ping(ctx context.Context) error {
	status, _, err := s.client.Challenge(ctx, eimzo.RequestContext{ClientIP: eimzo.UnknownIP})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("e-imzo server returned status %d", status)
	}
	return nil
}
