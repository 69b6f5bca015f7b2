package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"eimzoapi/internal/eimzo"
)

type MockPKCS7API struct {
	mock.Mock
}

func (m *MockPKCS7API) Timestamp(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (int, []byte, error) {
	args := m.Called(ctx, pkcs7, rc)
	return args.Int(0), bytesArg(args.Get(1)), args.Error(2)
}

func (m *MockPKCS7API) VerifyAttached(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (int, []byte, error) {
	args := m.Called(ctx, pkcs7, rc)
	return args.Int(0), bytesArg(args.Get(1)), args.Error(2)
}

func (m *MockPKCS7API) Join(ctx context.Context, first, second string, rc eimzo.RequestContext) (int, []byte, error) {
	args := m.Called(ctx, first, second, rc)
	return args.Int(0), bytesArg(args.Get(1)), args.Error(2)
}

func bytesArg(v interface{}) []byte {
	if v == nil {
		return nil
	}
	return v.([]byte)
}
