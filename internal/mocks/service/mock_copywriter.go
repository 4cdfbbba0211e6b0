// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCopywriter is a mock type for the service.Copywriter type.
type MockCopywriter struct {
	mock.Mock
}

// NewMockCopywriter creates a new instance of MockCopywriter and asserts its expectations on cleanup.
func NewMockCopywriter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCopywriter {
	m := &MockCopywriter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GenerateDescription provides a mock function.
func (m *MockCopywriter) GenerateDescription(ctx context.Context, productName, category string) string {
	ret := m.Called(ctx, productName, category)

	return ret.String(0)
}

// SuggestPrice provides a mock function.
func (m *MockCopywriter) SuggestPrice(ctx context.Context, productName, category string) float64 {
	ret := m.Called(ctx, productName, category)

	return ret.Get(0).(float64)
}
