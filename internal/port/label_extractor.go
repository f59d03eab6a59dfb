package port

import (
	"context"

	"labelaudit/internal/domain"
)

// LabelExtractor turns a base64-encoded JPEG label photo into structured data.
type LabelExtractor interface {
	Extract(ctx context.Context, encodedImage string) (*domain.ExtractedData, error)
}
