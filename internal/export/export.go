package export

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"labelaudit/internal/domain"
)

// columns defines the inspection sheet header row.
var columns = []string{
	"#",
	"Company",
	"Customer Code",
	"Model",
	"RAM/GB",
	"PCS",
	"Color",
	"COO",
	"SPEC",
	"Remarks",
}

// Write renders data in the given format.
func Write(w io.Writer, data *domain.ExtractedData, format domain.ExportFormat) error {
	switch format {
	case domain.ExportFormatCSV:
		return WriteCSV(w, data)
	case domain.ExportFormatXLSX:
		return WriteXLSX(w, data)
	case domain.ExportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedExportFormat, format)
	}
}

// itemToRow converts one item to its sheet row; index is 1-based.
func itemToRow(data *domain.ExtractedData, index int) []string {
	item := &data.Items[index-1]
	return []string{
		strconv.Itoa(index),
		data.Company,
		data.CustomerCode,
		item.Model,
		item.GB,
		strconv.Itoa(item.PCS),
		item.Color,
		item.COO,
		item.Spec,
		item.Remarks,
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized attachment name.
// Format: {company|inspection}_{YYYY-MM-DD}.{ext}
func BuildFilename(company string, format domain.ExportFormat, now time.Time) string {
	base := SanitizeFilename(company)
	if base == "" {
		base = "inspection"
	}
	return fmt.Sprintf("%s_%s.%s", base, now.Format("2006-01-02"), format)
}
