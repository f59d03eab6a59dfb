package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"labelaudit/internal/handler"
	"labelaudit/mocks"
)

func TestHealthHandler_Liveness(t *testing.T) {
	creds := new(mocks.MockCredentialSource)
	h := handler.NewHealthHandler(creds)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", nil)

	h.Liveness(c)

	assert.Equal(t, http.StatusOK, w.Code)
	creds.AssertNotCalled(t, "APIKey")
}

func TestHealthHandler_Readiness(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"key-123", http.StatusOK},
		{"", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		creds := new(mocks.MockCredentialSource)
		creds.On("APIKey").Return(tt.key)
		h := handler.NewHealthHandler(creds)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/readyz", nil)

		h.Readiness(c)

		assert.Equal(t, tt.want, w.Code)
		creds.AssertExpectations(t)
	}
}
