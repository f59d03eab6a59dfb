package router_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"labelaudit/internal/config"
	"labelaudit/internal/domain"
	"labelaudit/internal/handler"
	"labelaudit/internal/router"
	"labelaudit/mocks"
)

func setup(t *testing.T, ext *mocks.MockLabelExtractor, creds config.StaticCredentials) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()
	errs := handler.NewErrorHandler(log)
	return router.Setup(
		log,
		[]string{"http://localhost:3000"},
		handler.NewExtractionHandler(ext, errs, 1<<20),
		handler.NewHealthHandler(creds),
	)
}

func TestRouter_Routes(t *testing.T) {
	ext := new(mocks.MockLabelExtractor)
	ext.On("Extract", mock.Anything, "/9j/4AAQ").Return(domain.EmptyExtraction(), nil)
	r := setup(t, ext, config.StaticCredentials("key"))

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/readyz", "", http.StatusOK},
		{http.MethodPost, "/api/v1/extractions", `{"image":"/9j/4AAQ"}`, http.StatusOK},
		{http.MethodPost, "/api/v1/extractions/export?format=csv", `{"items":[]}`, http.StatusOK},
		{http.MethodGet, "/api/v1/extractions", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, tt.want, w.Code, "%s %s", tt.method, tt.path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	}
	ext.AssertExpectations(t)
}

func TestRouter_ReadinessWithoutCredential(t *testing.T) {
	r := setup(t, new(mocks.MockLabelExtractor), config.StaticCredentials(""))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/readyz", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
