package middleware

import (
	"github.com/labstack/echo/v4"
)

// StatusRecorder counts responses by status code.
type StatusRecorder interface {
	RecordHTTPStatus(statusCode int)
}

// MetricsMiddleware records the final status of every response.
type MetricsMiddleware struct {
	recorder StatusRecorder
}

// NewMetricsMiddleware is the constructor for MetricsMiddleware.
func NewMetricsMiddleware(recorder StatusRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Record commits any pending error so the counted status is the one sent.
func (m *MetricsMiddleware) Record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := next(c); err != nil {
			c.Error(err)
		}
		m.recorder.RecordHTTPStatus(c.Response().Status)

		return nil
	}
}
