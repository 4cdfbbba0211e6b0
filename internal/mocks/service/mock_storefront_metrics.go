package service

import "github.com/stretchr/testify/mock"

// MockStorefrontMetrics is a mock type for the service.StorefrontMetrics type.
type MockStorefrontMetrics struct {
	mock.Mock
}

// NewMockStorefrontMetrics creates a new instance of MockStorefrontMetrics and asserts its expectations on cleanup.
func NewMockStorefrontMetrics(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStorefrontMetrics {
	m := &MockStorefrontMetrics{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// RecordCartAddition provides a mock function.
func (m *MockStorefrontMetrics) RecordCartAddition(productID string) {
	m.Called(productID)
}

// RecordCheckoutCompleted provides a mock function.
func (m *MockStorefrontMetrics) RecordCheckoutCompleted(total int64) {
	m.Called(total)
}

// RecordTrackingLookup provides a mock function.
func (m *MockStorefrontMetrics) RecordTrackingLookup() {
	m.Called()
}

// RecordCopywriterFallback provides a mock function.
func (m *MockStorefrontMetrics) RecordCopywriterFallback(operation string) {
	m.Called(operation)
}
