package service

import "github.com/stretchr/testify/mock"

// MockReferenceGenerator is a mock type for the service.ReferenceGenerator type.
type MockReferenceGenerator struct {
	mock.Mock
}

// NewMockReferenceGenerator creates a new instance of MockReferenceGenerator and asserts its expectations on cleanup.
func NewMockReferenceGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReferenceGenerator {
	m := &MockReferenceGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Generate provides a mock function.
func (m *MockReferenceGenerator) Generate() string {
	ret := m.Called()

	return ret.String(0)
}
