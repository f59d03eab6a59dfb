package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"labelaudit/internal/domain"
	"labelaudit/internal/inference"
	"labelaudit/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var (
		cfgErr *domain.ConfigurationError
		rlErr  *inference.RateLimitError
		svcErr *domain.ServiceError
		fmtErr *domain.ResponseFormatError
	)
	switch {
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, "INVALID_IMAGE", "image must be a non-empty base64-encoded JPEG"
	case errors.Is(err, domain.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "image exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUnsupportedExportFormat):
		return http.StatusBadRequest, "UNSUPPORTED_EXPORT_FORMAT", "unsupported export format; allowed: csv, xlsx, json"
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable, "NOT_CONFIGURED", "label extraction is not configured"
	case errors.As(err, &rlErr):
		return http.StatusTooManyRequests, "RATE_LIMITED", "inference provider rate limit reached; retry later"
	case errors.As(err, &svcErr):
		return http.StatusBadGateway, "INFERENCE_FAILED", "inference provider call failed"
	case errors.As(err, &fmtErr):
		return http.StatusBadGateway, "INVALID_MODEL_RESPONSE", "inference provider returned an unreadable result; enter the label manually"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// ErrorHandler maps errors to responses and logs server-side failures.
type ErrorHandler struct {
	logger *zap.Logger
}

// NewErrorHandler creates an ErrorHandler.
func NewErrorHandler(logger *zap.Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle maps a domain error and sends the appropriate error response.
func (h *ErrorHandler) Handle(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		h.logger.Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("code", code),
			zap.Error(err),
		)
	}
	var rlErr *inference.RateLimitError
	if errors.As(err, &rlErr) {
		c.Header("Retry-After", strconv.Itoa(int(rlErr.RetryAfter.Seconds())))
	}
	RespondError(c, status, code, msg)
}
