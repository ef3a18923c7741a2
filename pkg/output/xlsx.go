package output

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"capital-viability/internal/indicators"
)

// BuildResultsXLSX renders a results workbook: an indicator summary sheet
// plus the monthly cash-flow table.
func BuildResultsXLSX(snap *indicators.Snapshot) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	resultsSheet := "Results"
	cashFlowSheet := "Cash Flow"
	f.SetSheetName("Sheet1", resultsSheet)
	if _, err := f.NewSheet(cashFlowSheet); err != nil {
		return nil, err
	}

	_ = f.SetCellValue(resultsSheet, "A1", "Indicator")
	_ = f.SetCellValue(resultsSheet, "B1", "Value")
	_ = f.SetCellValue(resultsSheet, "A2", "IRR")
	_ = f.SetCellValue(resultsSheet, "B2", Percent(snap.IRR))
	_ = f.SetCellValue(resultsSheet, "A3", "NPV")
	_ = f.SetCellValue(resultsSheet, "B3", CurrencyIndicator(snap.NPV))
	_ = f.SetCellValue(resultsSheet, "A4", "Payback")
	_ = f.SetCellValue(resultsSheet, "B4", PaybackPeriod(snap.Payback))
	_ = f.SetCellValue(resultsSheet, "A5", "CapEx/EBITDA")
	_ = f.SetCellValue(resultsSheet, "B5", Leverage(snap.Leverage))

	headers := []string{"Month", "Revenue", "OpEx", "CapEx", "EBITDA", "Taxes", "Net Cash Flow"}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(cashFlowSheet, cell, header)
	}
	for i, entry := range snap.Entries {
		row := i + 2
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("A%d", row), entry.Month)
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("B%d", row), entry.Revenue)
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("C%d", row), entry.Opex)
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("D%d", row), entry.Capex)
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("E%d", row), entry.EBITDA)
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("F%d", row), entry.Taxes)
		_ = f.SetCellValue(cashFlowSheet, fmt.Sprintf("G%d", row), entry.NetCashFlow)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
