package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockCredentialSource is a mock implementation of port.CredentialSource.
type MockCredentialSource struct {
	mock.Mock
}

func (m *MockCredentialSource) APIKey() string {
	args := m.Called()
	return args.String(0)
}
