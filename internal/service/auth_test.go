package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eimzoapi/internal/eimzo"
	eimzoMocks "eimzoapi/internal/eimzo/mocks"
)

func TestAuthService_Challenge(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		setupMocks     func(m *eimzoMocks.MockAuthAPI)
		want           string
		wantValidation *ValidationError
		wantErrMsg     string
	}{
		{
			name: "happy path returns body untouched",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, testCtx).
					Return(http.StatusOK, []byte(`{"status":1,"challenge":"aBcDeF123"}`), nil)
			},
			want: `{"status":1,"challenge":"aBcDeF123"}`,
		},
		{
			name: "upstream failure keeps status and body",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, testCtx).
					Return(http.StatusServiceUnavailable, []byte("maintenance"), nil)
			},
			wantValidation: &ValidationError{Code: http.StatusServiceUnavailable, ErrMsg: "maintenance"},
		},
		{
			name: "invalid json response",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, testCtx).
					Return(http.StatusOK, []byte("<html>oops</html>"), nil)
			},
			wantErrMsg: "not valid json",
		},
		{
			name: "transport error propagates",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, testCtx).
					Return(0, nil, errors.New("connection refused"))
			},
			wantErrMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(eimzoMocks.MockAuthAPI)
			svc := NewAuthService(m)

			tt.setupMocks(m)

			got, err := svc.Challenge(ctx, testCtx)

			switch {
			case tt.wantValidation != nil:
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantValidation, vErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(got))
			}
			m.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	const physicalBody = `{"status":1,"subjectCertificateInfo":{"subjectName":{"CN":"ALIYEV ALISHER","1.2.860.3.16.1.2":"30901851234567"}}}`
	const juridicalBody = `{"status":1,"subjectCertificateInfo":{"subjectName":{"CN":"OOO ROMASHKA","1.2.860.3.16.1.1":"205412345"}}}`

	tests := []struct {
		name           string
		pkcs7          string
		setupMocks     func(m *eimzoMocks.MockAuthAPI)
		checkRes       func(t *testing.T, res *LoginResult)
		wantErr        error
		wantValidation *ValidationError
		wantErrMsg     string
	}{
		{
			name:  "physical person",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(eimzo.AuthResult{
						OK:         true,
						HTTPStatus: http.StatusOK,
						Code:       eimzo.StatusOK,
						Body:       []byte(physicalBody),
					}, nil)
			},
			checkRes: func(t *testing.T, res *LoginResult) {
				assert.Equal(t, eimzo.UserTypePhysical, res.UserType)
				assert.Equal(t, "30901851234567", res.Subject["1.2.860.3.16.1.2"])
				assert.JSONEq(t, physicalBody, string(res.Auth))
			},
		},
		{
			name:  "juridical person",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(eimzo.AuthResult{
						OK:         true,
						HTTPStatus: http.StatusOK,
						Code:       eimzo.StatusOK,
						Body:       []byte(juridicalBody),
					}, nil)
			},
			checkRes: func(t *testing.T, res *LoginResult) {
				assert.Equal(t, eimzo.UserTypeJuridical, res.UserType)
			},
		},
		{
			name:       "validation - empty document makes no upstream call",
			pkcs7:      "",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {},
			wantErr:    ErrDocumentRequired,
		},
		{
			name:  "domain failure carries translated message",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(eimzo.AuthResult{
						HTTPStatus: http.StatusOK,
						Code:       -11,
						Message:    "Сертификат недействителен",
					}, nil)
			},
			wantValidation: &ValidationError{Code: http.StatusBadRequest, ErrMsg: "Сертификат недействителен"},
		},
		{
			name:  "upstream http failure keeps status and raw body",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(eimzo.AuthResult{
						HTTPStatus: http.StatusBadGateway,
						Message:    "upstream unavailable",
					}, nil)
			},
			wantValidation: &ValidationError{Code: http.StatusBadGateway, ErrMsg: "upstream unavailable"},
		},
		{
			name:  "subject without national oids",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(eimzo.AuthResult{
						OK:         true,
						HTTPStatus: http.StatusOK,
						Code:       eimzo.StatusOK,
						Body:       []byte(`{"status":1,"subjectCertificateInfo":{"subjectName":{"CN":"NO OIDS"}}}`),
					}, nil)
			},
			wantValidation: &ValidationError{Code: http.StatusBadRequest, ErrMsg: "Could not determine user type"},
		},
		{
			name:  "undecodable subject",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(eimzo.AuthResult{
						OK:         true,
						HTTPStatus: http.StatusOK,
						Code:       eimzo.StatusOK,
						Body:       []byte(`{"status":1,"subjectCertificateInfo":{"subjectName":{"CN":5}}}`),
					}, nil)
			},
			wantErrMsg: "decode auth subject",
		},
		{
			name:  "transport error propagates",
			pkcs7: "c2lnbmVk",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("BackendAuth", ctx, "c2lnbmVk", testCtx).
					Return(nil, errors.New("connection refused"))
			},
			wantErrMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(eimzoMocks.MockAuthAPI)
			svc := NewAuthService(m)

			tt.setupMocks(m)

			res, err := svc.Login(ctx, tt.pkcs7, testCtx)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				m.AssertNotCalled(t, "BackendAuth")
			case tt.wantValidation != nil:
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantValidation, vErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				require.NotNil(t, res)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			m.AssertExpectations(t)
		})
	}
}

func TestAuthService_Ping(t *testing.T) {
	ctx := context.Background()
	probeCtx := eimzo.RequestContext{ClientIP: eimzo.UnknownIP}

	tests := []struct {
		name       string
		setupMocks func(m *eimzoMocks.MockAuthAPI)
		wantErrMsg string
	}{
		{
			name: "reachable",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, probeCtx).
					Return(http.StatusOK, []byte(`{"status":1,"challenge":"x"}`), nil)
			},
		},
		{
			name: "upstream error status",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, probeCtx).
					Return(http.StatusServiceUnavailable, []byte("maintenance"), nil)
			},
			wantErrMsg: "returned status 503",
		},
		{
			name: "transport error",
			setupMocks: func(m *eimzoMocks.MockAuthAPI) {
				m.On("Challenge", ctx, probeCtx).
					Return(0, nil, errors.New("connection refused"))
			},
			wantErrMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(eimzoMocks.MockAuthAPI)
			svc := NewAuthService(m)

			tt.setupMocks(m)

			err := svc.Ping(ctx)

			if tt.wantErrMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
			}
			m.AssertExpectations(t)
		})
	}
}
