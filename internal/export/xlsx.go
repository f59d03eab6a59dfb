package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"labelaudit/internal/domain"
)

// SheetName is the worksheet holding the inspection rows.
const SheetName = "Inspection"

// WriteXLSX writes the inspection sheet as an Excel workbook with a bold
// header and, when there are items, a TOTAL PCS row.
func WriteXLSX(w io.Writer, data *domain.ExtractedData) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i := range data.Items {
		item := &data.Items[i]
		row := []interface{}{
			i + 1,
			data.Company,
			data.CustomerCode,
			item.Model,
			item.GB,
			item.PCS,
			item.Color,
			item.COO,
			item.Spec,
			item.Remarks,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if n := len(data.Items); n > 0 {
		totalRow := n + 2
		label, _ := excelize.CoordinatesToCellName(5, totalRow)
		value, _ := excelize.CoordinatesToCellName(6, totalRow)
		if err := f.SetCellValue(SheetName, label, "TOTAL PCS"); err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, value, data.TotalPCS()); err != nil {
			return err
		}
		if err := f.SetRowStyle(SheetName, totalRow, totalRow, bold); err != nil {
			return fmt.Errorf("style total: %w", err)
		}
	}

	if err := f.SetColWidth(SheetName, "D", "D", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "I", "J", 20); err != nil {
		return err
	}

	return f.Write(w)
}
