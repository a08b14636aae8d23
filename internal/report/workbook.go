package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	propertiesSheet = "Properties"
	membersSheet    = "Members"
)

var memberHeaders = []interface{}{
	"Member", "Kind", "Area", "Centroid X", "Centroid Y",
	"Ix", "Iy", "A*dy^2", "A*dx^2", "Total Ix", "Total Iy",
}

// WriteWorkbook writes the report as an xlsx workbook with a Properties
// sheet and a Members sheet
func WriteWorkbook(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", propertiesSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(membersSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	// Properties
	if err := f.SetSheetRow(propertiesSheet, "A1", &[]interface{}{r.Title}); err != nil {
		return err
	}
	if err := f.SetSheetRow(propertiesSheet, "A3", &[]interface{}{"Property", "Symbol", "Value", "Unit"}); err != nil {
		return err
	}
	for i, row := range r.rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return err
		}
		values := []interface{}{row.Name, row.Symbol, row.Value, r.unit(row.Power)}
		if err := f.SetSheetRow(propertiesSheet, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(propertiesSheet, "A3", "D3", bold); err != nil {
		return err
	}
	if err := f.SetColWidth(propertiesSheet, "A", "A", 38); err != nil {
		return err
	}

	// Members
	if err := f.SetSheetRow(membersSheet, "A1", &memberHeaders); err != nil {
		return err
	}
	for i, m := range r.Result.Members {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []interface{}{
			m.Label, m.Kind, m.Area, m.CentroidX, m.CentroidY,
			m.Ix, m.Iy, m.ShiftX, m.ShiftY, m.TotalIx, m.TotalIy,
		}
		if err := f.SetSheetRow(membersSheet, cell, &values); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(membersSheet, "A1", "K1", bold); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
