package report

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
)

// WritePDF renders the report as an A4 PDF document
func WritePDF(w io.Writer, r Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, false)
	pdf.SetCreator("gosection", false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, r.Title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", r.Generated.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	// Properties table
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Section Properties")
	pdf.Ln(9)

	pdf.SetFillColor(230, 230, 230)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 7, "Property", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 7, "Symbol", "1", 0, "C", true, 0, "")
	pdf.CellFormat(45, 7, "Value", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, "Unit", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, row := range r.rows() {
		pdf.CellFormat(90, 7, row.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 7, row.Symbol, "1", 0, "C", false, 0, "")
		pdf.CellFormat(45, 7, r.format(row.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, r.unit(row.Power), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	// Member contributions
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Member Contributions")
	pdf.Ln(9)

	headers := []string{"Member", "Kind", "Area", "x", "y", "Ix + A*dy^2", "Iy + A*dx^2"}
	widths := []float64{36, 18, 24, 20, 20, 31, 31}
	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, m := range r.Result.Members {
		cells := []string{
			m.Label,
			m.Kind,
			r.format(m.Area),
			r.format(m.CentroidX),
			r.format(m.CentroidY),
			r.format(m.TotalIx),
			r.format(m.TotalIy),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "I", 8)
	pdf.MultiCell(0, 4, fmt.Sprintf(
		"Moments of inertia are about the centroidal axes of the whole section. "+
			"Lengths in %s.", r.Result.Unit), "", "L", false)

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return pdf.Output(w)
}
