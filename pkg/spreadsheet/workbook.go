package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names used in the project workbooks.
const (
	SheetInvestments = "Investments"
	SheetCosts       = "Costs"
	SheetRevenues    = "Revenues"
	SheetPolicy      = "Policy"
)

var (
	investmentHeaders = []string{"Tag", "Description", "Quantity", "Unit Price", "Total Value", "Month"}
	costHeaders       = []string{"Tag", "Description", "Quantity", "Unit Price", "Total Value", "Recurrent", "Start Month", "End Month"}
	revenueHeaders    = []string{"Tag", "Description", "Quantity", "Unit Price", "Total Value", "Recurrent", "Start Month", "End Month", "Growth Rate (%)"}
)

// WriteInvestments writes investment records to a workbook at path. The
// derived total value is included as a convenience column; it is ignored on
// import.
func WriteInvestments(path string, records []InvestmentRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{r.Tag, r.Description, r.Quantity, r.UnitPrice, r.Quantity * r.UnitPrice, r.Month})
	}
	return writeSheet(path, SheetInvestments, investmentHeaders, rows)
}

// ReadInvestments reads investment records from the workbook at path. Rows
// that fail to parse are skipped; the count of skipped rows is returned
// alongside the parsed records.
func ReadInvestments(path string) ([]InvestmentRecord, int, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, 0, err
	}

	var records []InvestmentRecord
	skipped := 0
	for _, row := range rows {
		row = padRow(row, len(investmentHeaders))
		quantity, err1 := parseFloat(row[2])
		unitPrice, err2 := parseFloat(row[3])
		month, err3 := parseInt(row[5])
		if err1 != nil || err2 != nil || err3 != nil {
			skipped++
			continue
		}
		records = append(records, InvestmentRecord{
			Tag:         row[0],
			Description: row[1],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Month:       month,
		})
	}
	return records, skipped, nil
}

// WriteCosts writes cost records to a workbook at path.
func WriteCosts(path string, records []CostRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{r.Tag, r.Description, r.Quantity, r.UnitPrice, r.Quantity * r.UnitPrice, r.Recurrent, r.StartMonth, r.EndMonth})
	}
	return writeSheet(path, SheetCosts, costHeaders, rows)
}

// ReadCosts reads cost records from the workbook at path, skipping rows
// that fail to parse.
func ReadCosts(path string) ([]CostRecord, int, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, 0, err
	}

	var records []CostRecord
	skipped := 0
	for _, row := range rows {
		row = padRow(row, len(costHeaders))
		quantity, err1 := parseFloat(row[2])
		unitPrice, err2 := parseFloat(row[3])
		startMonth, err3 := parseInt(row[6])
		endMonth, err4 := parseInt(row[7])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			skipped++
			continue
		}
		records = append(records, CostRecord{
			Tag:         row[0],
			Description: row[1],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Recurrent:   parseBool(row[5]),
			StartMonth:  startMonth,
			EndMonth:    endMonth,
		})
	}
	return records, skipped, nil
}

// WriteRevenues writes revenue records to a workbook at path.
func WriteRevenues(path string, records []RevenueRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, r := range records {
		rows = append(rows, []interface{}{r.Tag, r.Description, r.Quantity, r.UnitPrice, r.Quantity * r.UnitPrice, r.Recurrent, r.StartMonth, r.EndMonth, r.GrowthRate})
	}
	return writeSheet(path, SheetRevenues, revenueHeaders, rows)
}

// ReadRevenues reads revenue records from the workbook at path, skipping
// rows that fail to parse.
func ReadRevenues(path string) ([]RevenueRecord, int, error) {
	rows, err := readSheet(path)
	if err != nil {
		return nil, 0, err
	}

	var records []RevenueRecord
	skipped := 0
	for _, row := range rows {
		row = padRow(row, len(revenueHeaders))
		quantity, err1 := parseFloat(row[2])
		unitPrice, err2 := parseFloat(row[3])
		startMonth, err3 := parseInt(row[6])
		endMonth, err4 := parseInt(row[7])
		growthRate, err5 := parseFloat(row[8])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			skipped++
			continue
		}
		records = append(records, RevenueRecord{
			Tag:         row[0],
			Description: row[1],
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Recurrent:   parseBool(row[5]),
			StartMonth:  startMonth,
			EndMonth:    endMonth,
			GrowthRate:  growthRate,
		})
	}
	return records, skipped, nil
}

// WritePolicy writes the tax policy as a parameter/value sheet.
func WritePolicy(path string, policy PolicyRecord) error {
	rows := [][]interface{}{
		{"TMA (%)", policy.TMA},
		{"IR (%)", policy.IR},
		{"CSLL (%)", policy.CSLL},
		{"Effective Tax Rate (%)", policy.IR + policy.CSLL},
	}
	return writeSheet(path, SheetPolicy, []string{"Parameter", "Value"}, rows)
}

// ReadPolicy reads the tax policy from a parameter/value sheet, matching
// rows by label. Missing labels leave the zero value in place.
func ReadPolicy(path string) (PolicyRecord, error) {
	rows, err := readSheet(path)
	if err != nil {
		return PolicyRecord{}, err
	}

	var policy PolicyRecord
	for _, row := range rows {
		row = padRow(row, 2)
		value, err := parseFloat(row[1])
		if err != nil {
			continue
		}
		switch row[0] {
		case "TMA (%)":
			policy.TMA = value
		case "IR (%)":
			policy.IR = value
		case "CSLL (%)":
			policy.CSLL = value
		}
	}
	return policy, nil
}

// writeSheet creates a workbook with a single named sheet holding a header
// row followed by the data rows.
func writeSheet(path, sheet string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	f.SetSheetName("Sheet1", sheet)

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// readSheet returns the data rows of the first sheet of the workbook at
// path, with the header row stripped.
func readSheet(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

// parseFloat treats an empty cell as zero, matching lenient import behavior.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseInt treats an empty cell as zero.
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// parseBool accepts the cell renderings excelize produces for boolean
// values; anything unrecognized reads as false.
func parseBool(s string) bool {
	b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return false
	}
	return b
}
