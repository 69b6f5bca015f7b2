package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"

	"eimzoapi/internal/eimzo"
	"eimzoapi/internal/service"
)

type MockPkcsService struct {
	mock.Mock
}

func (m *MockPkcsService) Timestamp(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (string, error) {
	args := m.Called(ctx, pkcs7, rc)
	return args.String(0), args.Error(1)
}

func (m *MockPkcsService) Verify(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (json.RawMessage, error) {
	args := m.Called(ctx, pkcs7, rc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockPkcsService) Join(ctx context.Context, first, second string, rc eimzo.RequestContext) (string, error) {
	args := m.Called(ctx, first, second, rc)
	return args.String(0), args.Error(1)
}

func (m *MockPkcsService) Save(ctx context.Context, pkcs7 string, rc eimzo.RequestContext) (*service.SaveResult, error) {
	args := m.Called(ctx, pkcs7, rc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SaveResult), args.Error(1)
}
