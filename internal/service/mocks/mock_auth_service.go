package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"eimzoapi/internal/eimzo"
	"eimzoapi/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Challenge(ctx context.Context, rc eimzo.RequestContext) (json.RawMessage, error) {
	args := m.Called(ctx, rc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (*service.LoginResult, error) {
	args := m.Called(ctx, pkcs7, rc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockAuthService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
