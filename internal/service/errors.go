package service

import (
	"encoding/json"
	"net/http"
)

// ValidationError is a client-visible rejection of an inbound request. Code
// is the HTTP status the response must carry: plain input failures use 400,
// upstream rejections keep the upstream status so nothing is masked.
type ValidationError struct {
	Code   int
	ErrMsg string
}

// NewValidationError builds a 400 validation failure with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Code: http.StatusBadRequest, ErrMsg: msg}
}

// upstreamError surfaces a non-200 upstream response to the client, keeping
// both the status code and the raw body text.
func upstreamError(status int, body []byte) *ValidationError {
	return &ValidationError{Code: status, ErrMsg: string(body)}
}

func (e *ValidationError) Error() string {
	return e.ErrMsg
}

// NotAcceptableError reports a timestamp response that came back 200 but
// without the expected pkcs7b64 field. Body is the full upstream JSON,
// surfaced verbatim as the error payload of a 406 response.
type NotAcceptableError struct {
	Body json.RawMessage
}

func (e *NotAcceptableError) Error() string {
	return "timestamp response has no pkcs7b64 field"
}

// Required-field failures, with messages fixed by the inbound API contract.
var (
	ErrDocumentRequired       = NewValidationError("pkcs7b64 field is required")
	ErrFirstDocumentRequired  = NewValidationError("pkcs7b64_1 field is required")
	ErrSecondDocumentRequired = NewValidationError("pkcs7b64_2 field is required")
)
