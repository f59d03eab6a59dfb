package domain

// ImageMimeType is the MIME type declared for every label image sent to a provider.
const ImageMimeType = "image/jpeg"

// ExportFormat selects the rendering of an inspection sheet.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
	ExportFormatJSON ExportFormat = "json"
)

// ExportContentTypes maps ExportFormat to its MIME content type.
var ExportContentTypes = map[ExportFormat]string{
	ExportFormatCSV:  "text/csv; charset=utf-8",
	ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ExportFormatJSON: "application/json",
}

// ParseExportFormat validates a user-supplied export format name.
func ParseExportFormat(s string) (ExportFormat, error) {
	f := ExportFormat(s)
	if _, ok := ExportContentTypes[f]; !ok {
		return "", ErrUnsupportedExportFormat
	}
	return f, nil
}
