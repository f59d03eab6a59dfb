package export

import (
	"encoding/csv"
	"io"

	"labelaudit/internal/domain"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a BOM, the header row and one row per item.
func WriteCSV(w io.Writer, data *domain.ExtractedData) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range data.Items {
		if err := cw.Write(itemToRow(data, i+1)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
