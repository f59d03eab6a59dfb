package handler

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"labelaudit/internal/domain"
	"labelaudit/internal/export"
	"labelaudit/internal/port"
)

// ExtractionHandler handles label extraction and inspection sheet export.
type ExtractionHandler struct {
	extractor     port.LabelExtractor
	errors        *ErrorHandler
	maxImageBytes int64
	now           func() time.Time
}

// NewExtractionHandler creates a new ExtractionHandler.
func NewExtractionHandler(extractor port.LabelExtractor, errs *ErrorHandler, maxImageBytes int64) *ExtractionHandler {
	return &ExtractionHandler{
		extractor:     extractor,
		errors:        errs,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
	}
}

// ExtractRequest is the JSON body of POST /api/v1/extractions.
type ExtractRequest struct {
	Image string `json:"image" binding:"required"`
}

// Extract handles POST /api/v1/extractions.
// Accepts either a JSON body {"image": "<base64 jpeg>"} or a multipart "file" field.
func (h *ExtractionHandler) Extract(c *gin.Context) {
	var encoded string
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		var err error
		encoded, err = h.readUpload(c)
		if err != nil {
			h.errors.Handle(c, err)
			return
		}
	} else {
		var req ExtractRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		if h.maxImageBytes > 0 && int64(base64.StdEncoding.DecodedLen(len(req.Image))) > h.maxImageBytes {
			h.errors.Handle(c, domain.ErrImageTooLarge)
			return
		}
		encoded = req.Image
	}

	data, err := h.extractor.Extract(c.Request.Context(), encoded)
	if err != nil {
		h.errors.Handle(c, err)
		return
	}

	RespondOK(c, data)
}

func (h *ExtractionHandler) readUpload(c *gin.Context) (string, error) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return "", fmt.Errorf("%w: file field is required", domain.ErrInvalidImage)
	}
	defer func() { _ = file.Close() }()

	if h.maxImageBytes > 0 && header.Size > h.maxImageBytes {
		return "", domain.ErrImageTooLarge
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Export handles POST /api/v1/extractions/export?format=csv|xlsx|json.
// The body is an ExtractedData document, typically one returned by Extract
// after manual corrections.
func (h *ExtractionHandler) Export(c *gin.Context) {
	format, err := domain.ParseExportFormat(c.DefaultQuery("format", string(domain.ExportFormatXLSX)))
	if err != nil {
		h.errors.Handle(c, err)
		return
	}

	var data domain.ExtractedData
	if err := c.ShouldBindJSON(&data); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if data.Items == nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "items is required")
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, &data, format); err != nil {
		h.errors.Handle(c, err)
		return
	}

	filename := export.BuildFilename(data.Company, format, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, domain.ExportContentTypes[format], buf.Bytes())
}
