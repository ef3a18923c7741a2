package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"capital-viability/internal/indicators"
)

// BuildResultsPDF renders a one-page PDF report of the indicators and the
// monthly cash-flow table.
func BuildResultsPDF(projectName string, snap *indicators.Snapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Economic Viability Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", projectName))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))
	pdf.Ln(8)

	pdf.Cell(0, 6, fmt.Sprintf("IRR: %s", Percent(snap.IRR)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("NPV: %s", CurrencyIndicator(snap.NPV)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Payback: %s", PaybackPeriod(snap.Payback)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("CapEx/EBITDA: %s", Leverage(snap.Leverage)))
	pdf.Ln(8)

	// Cash-flow table
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(15, 6, "Month", "1", 0, "C", false, 0, "")
	pdf.CellFormat(29, 6, "Revenue", "1", 0, "C", false, 0, "")
	pdf.CellFormat(29, 6, "OpEx", "1", 0, "C", false, 0, "")
	pdf.CellFormat(29, 6, "CapEx", "1", 0, "C", false, 0, "")
	pdf.CellFormat(29, 6, "EBITDA", "1", 0, "C", false, 0, "")
	pdf.CellFormat(29, 6, "Taxes", "1", 0, "C", false, 0, "")
	pdf.CellFormat(29, 6, "Net Flow", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 9)
	for _, entry := range snap.Entries {
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", entry.Month), "1", 0, "C", false, 0, "")
		pdf.CellFormat(29, 6, fmt.Sprintf("%.2f", entry.Revenue), "1", 0, "R", false, 0, "")
		pdf.CellFormat(29, 6, fmt.Sprintf("%.2f", entry.Opex), "1", 0, "R", false, 0, "")
		pdf.CellFormat(29, 6, fmt.Sprintf("%.2f", entry.Capex), "1", 0, "R", false, 0, "")
		pdf.CellFormat(29, 6, fmt.Sprintf("%.2f", entry.EBITDA), "1", 0, "R", false, 0, "")
		pdf.CellFormat(29, 6, fmt.Sprintf("%.2f", entry.Taxes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(29, 6, fmt.Sprintf("%.2f", entry.NetCashFlow), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
