// Package output provides utilities for formatting and displaying result
// snapshots.
package output

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"capital-viability/internal/indicators"
)

// NotAvailable is rendered for any undetermined or undefined indicator.
const NotAvailable = "N/A"

// MonthsPerYear converts a fractional payback in months to years and months.
const monthsPerYear = 12

// Percent formats a percentage indicator to two decimals with a % suffix.
func Percent(ind indicators.Indicator) string {
	if !ind.Valid {
		return NotAvailable
	}
	return fmt.Sprintf("%.2f%%", ind.Value)
}

// Currency formats an amount with thousands separators and two decimals.
func Currency(amount float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("$%.2f", amount)
}

// CurrencyIndicator formats a currency indicator, rendering the sentinel
// when invalid.
func CurrencyIndicator(ind indicators.Indicator) string {
	if !ind.Valid {
		return NotAvailable
	}
	return Currency(ind.Value)
}

// PaybackPeriod formats a fractional payback in months as whole years plus
// remainder months.
func PaybackPeriod(ind indicators.Indicator) string {
	if !ind.Valid {
		return NotAvailable
	}
	total := int(ind.Value)
	return fmt.Sprintf("%d years %d months", total/monthsPerYear, total%monthsPerYear)
}

// Leverage formats the capex over EBITDA ratio to two decimals with an x
// suffix.
func Leverage(ind indicators.Indicator) string {
	if !ind.Valid {
		return NotAvailable
	}
	return fmt.Sprintf("%.2fx", ind.Value)
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, snap *indicators.Snapshot) {
	p := message.NewPrinter(language.English)
	fmt.Fprintf(w, "Month | Revenue       | OpEx          | CapEx         | EBITDA        | Taxes         | Net Cash Flow\n")
	fmt.Fprintf(w, "_____ | _____________ | _____________ | _____________ | _____________ | _____________ | _____________\n")
	for _, entry := range snap.Entries {
		_, _ = p.Fprintf(w, "%5d | %13.2f | %13.2f | %13.2f | %13.2f | %13.2f | %13.2f\n",
			entry.Month, entry.Revenue, entry.Opex, entry.Capex, entry.EBITDA, entry.Taxes, entry.NetCashFlow)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "IRR:          %s\n", Percent(snap.IRR))
	fmt.Fprintf(w, "NPV:          %s\n", CurrencyIndicator(snap.NPV))
	fmt.Fprintf(w, "Payback:      %s\n", PaybackPeriod(snap.Payback))
	fmt.Fprintf(w, "CapEx/EBITDA: %s\n", Leverage(snap.Leverage))
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(w io.Writer, snap *indicators.Snapshot) {
	fmt.Fprintf(w, `"month","revenue","opex","capex","ebitda","taxes","net_cash_flow"`)
	fmt.Fprintf(w, "\n")
	for _, entry := range snap.Entries {
		fmt.Fprintf(w, `"%d","%.2f","%.2f","%.2f","%.2f","%.2f","%.2f"`,
			entry.Month, entry.Revenue, entry.Opex, entry.Capex, entry.EBITDA, entry.Taxes, entry.NetCashFlow)
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, `"irr","%s"`+"\n", Percent(snap.IRR))
	fmt.Fprintf(w, `"npv","%s"`+"\n", CurrencyIndicator(snap.NPV))
	fmt.Fprintf(w, `"payback","%s"`+"\n", PaybackPeriod(snap.Payback))
	fmt.Fprintf(w, `"capex_over_ebitda","%s"`+"\n", Leverage(snap.Leverage))
}
