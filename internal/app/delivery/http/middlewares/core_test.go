package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"healthai-service/internal/app/config"
	"healthai-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{})
}

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := newTestMiddlewares()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		assert.True(t, ok, "request ID should be set in context")
		assert.NotEmpty(t, requestID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Generates an ID when the client sends none", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		rr := httptest.NewRecorder()

		middlewares.RequestIDMiddleware(handler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "response should echo a request ID")
	})

	t.Run("Passes through a client supplied ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/patients", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-123")
		rr := httptest.NewRecorder()

		middlewares.RequestIDMiddleware(handler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-123", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := newTestMiddlewares()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/api/v1/patients", nil)
	rr := httptest.NewRecorder()

	middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "\"success\":false")
}
