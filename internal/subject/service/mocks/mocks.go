// Package mocks provides mock implementations for testing subject services.
package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordService is a mock implementation of PasswordService for testing.
type MockPasswordService struct {
	mock.Mock
}

// HashPassword mocks the HashPassword method of PasswordService.
func (m *MockPasswordService) HashPassword(plainPassword string) (string, error) {
	args := m.Called(plainPassword)
	return args.String(0), args.Error(1)
}

// ComparePassword mocks the ComparePassword method of PasswordService.
func (m *MockPasswordService) ComparePassword(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}
