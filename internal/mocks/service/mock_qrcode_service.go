package service

import "github.com/stretchr/testify/mock"

// MockQRCodeService is a mock type for the service.QRCodeService type.
type MockQRCodeService struct {
	mock.Mock
}

// NewMockQRCodeService creates a new instance of MockQRCodeService and asserts its expectations on cleanup.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// GenerateReferenceQR provides a mock function.
func (m *MockQRCodeService) GenerateReferenceQR(reference string) ([]byte, error) {
	ret := m.Called(reference)

	var png []byte
	if v := ret.Get(0); v != nil {
		png = v.([]byte)
	}

	return png, ret.Error(1)
}

// ParseReferenceQR provides a mock function.
func (m *MockQRCodeService) ParseReferenceQR(qrData string) (string, error) {
	ret := m.Called(qrData)

	return ret.String(0), ret.Error(1)
}
