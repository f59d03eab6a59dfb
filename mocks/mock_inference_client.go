package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelaudit/internal/port"
)

// MockInferenceClient is a mock implementation of port.InferenceClient.
type MockInferenceClient struct {
	mock.Mock
}

func (m *MockInferenceClient) Generate(ctx context.Context, req port.GenerateRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockInferenceClient) Name() string {
	args := m.Called()
	return args.String(0)
}
