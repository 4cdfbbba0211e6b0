package service

import (
	"time"

	"vora/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the service.TokenService type.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a new instance of MockTokenService and asserts its expectations on cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// IssueSessionToken provides a mock function.
func (m *MockTokenService) IssueSessionToken(sessionID uuid.UUID) (string, error) {
	ret := m.Called(sessionID)

	return ret.String(0), ret.Error(1)
}

// ValidateSessionToken provides a mock function.
func (m *MockTokenService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	ret := m.Called(tokenString)

	var claims *service.SessionClaims
	if v := ret.Get(0); v != nil {
		claims = v.(*service.SessionClaims)
	}

	return claims, ret.Error(1)
}

// SessionTokenTTL provides a mock function.
func (m *MockTokenService) SessionTokenTTL() time.Duration {
	ret := m.Called()

	return ret.Get(0).(time.Duration)
}
