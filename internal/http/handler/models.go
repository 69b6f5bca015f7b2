package handler

import "encoding/json"

// VerifyRequest carries a signed document for verification.
type VerifyRequest struct {
	Pkcs7b64 string `json:"pkcs7b64" example:"MIIKlgYJKoZIhvcNAQcCoIIK..."`
}

// SaveRequest carries a signed document for the timestamp-then-verify
// pipeline.
type SaveRequest struct {
	Pkcs7b64 string `json:"pkcs7b64" example:"MIIKlgYJKoZIhvcNAQcCoIIK..."`
}

// JoinRequest carries two signed documents to merge into one.
type JoinRequest struct {
	First  string `json:"pkcs7b64_1"`
	Second string `json:"pkcs7b64_2"`
}

// LoginRequest carries a challenge signed with the user's key.
type LoginRequest struct {
	Pkcs7b64 string `json:"pkcs7b64"`
}

// SaveResponse reports the timestamped document and the verifier's response.
type SaveResponse struct {
	Success      bool            `json:"success"`
	Pkcs7b64     string          `json:"pkcs7b64"`
	Verification json.RawMessage `json:"verification" swaggertype:"object"`
}

// JoinResponse reports the merged document.
type JoinResponse struct {
	Success  bool   `json:"success"`
	Pkcs7b64 string `json:"pkcs7b64"`
}

// LoginResponse reports the authenticated signer.
type LoginResponse struct {
	Success  bool              `json:"success"`
	UserType int               `json:"user_type" enums:"1,2"`
	Subject  map[string]string `json:"subject"`
	Auth     json.RawMessage   `json:"auth" swaggertype:"object"`
}
