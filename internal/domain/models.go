package domain

// InspectionItem is one inspected device row read from a label.
// Empty strings mean the field was not legible; they are never placeholders.
type InspectionItem struct {
	Model   string `json:"model"`
	GB      string `json:"gb"`
	PCS     int    `json:"pcs"`
	Color   string `json:"color"`
	COO     string `json:"coo"`
	Spec    string `json:"spec"`
	Remarks string `json:"remarks"`
}

// ExtractedData is the structured result of a label extraction.
// Items keeps the order in which the items appear on the source image.
type ExtractedData struct {
	Company      string           `json:"company,omitempty"`
	CustomerCode string           `json:"customerCode,omitempty"`
	Items        []InspectionItem `json:"items"`
}

// EmptyExtraction returns the result used when the model produced no text.
func EmptyExtraction() *ExtractedData {
	return &ExtractedData{Items: []InspectionItem{}}
}

// TotalPCS sums the piece counts across all items.
func (d *ExtractedData) TotalPCS() int {
	total := 0
	for i := range d.Items {
		total += d.Items[i].PCS
	}
	return total
}
