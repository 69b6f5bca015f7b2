package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eimzoapi/internal/eimzo"
)

type MockAuthAPI struct {
	mock.Mock
}

func (m *MockAuthAPI) Challenge(ctx context.Context, rc eimzo.RequestContext) (int, []byte, error) {
	args := m.Called(ctx, rc)
	return args.Int(0), bytesArg(args.Get(1)), args.Error(2)
}

func (m *MockAuthAPI) BackendAuth(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (eimzo.AuthResult, error) {
	args := m.Called(ctx, pkcs7, rc)
	if args.Get(0) == nil {
		return eimzo.AuthResult{}, args.Error(1)
	}
	return args.Get(0).(eimzo.AuthResult), args.Error(1)
}
