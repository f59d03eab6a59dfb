package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"labelaudit/internal/domain"
)

// MockLabelExtractor is a mock implementation of port.LabelExtractor.
type MockLabelExtractor struct {
	mock.Mock
}

func (m *MockLabelExtractor) Extract(ctx context.Context, encodedImage string) (*domain.ExtractedData, error) {
	args := m.Called(ctx, encodedImage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractedData), args.Error(1)
}
