// Package cashflow assembles the monthly cash-flow series from the three
// category schedules and a tax policy.
package cashflow

import (
	"math"

	"capital-viability/internal/schedule"
	"capital-viability/pkg/constants"
	"capital-viability/pkg/mathutil"
)

// TaxPolicy supplies the rates consumed during cash-flow assembly. Both
// values are percentages.
type TaxPolicy interface {
	EffectiveTaxRate() float64
	DiscountRate() float64
}

// Entry is the immutable cash-flow snapshot for one month of the horizon.
type Entry struct {
	Month       int
	Revenue     float64
	Opex        float64
	Capex       float64
	EBITDA      float64
	Taxes       float64
	NetCashFlow float64
}

// Build merges the three schedules and the tax policy into an ordered series
// of 12 entries, one per month. It is a pure function: inputs are not
// mutated and the result is fully determined by the current schedule
// contents. Callers must not mutate any schedule while a build is in flight.
func Build(investments *schedule.InvestmentSchedule, costs *schedule.CostSchedule, revenues *schedule.RevenueSchedule, policy TaxPolicy) []Entry {
	taxRate := 0.0
	if policy != nil {
		taxRate = policy.EffectiveTaxRate()
	}

	entries := make([]Entry, 0, constants.MonthsInHorizon)
	for month := constants.MinMonth; month <= constants.MaxMonth; month++ {
		revenue := revenues.MonthlyValue(month)
		opex := costs.MonthlyValue(month)
		capex := investments.MonthlyValue(month)
		ebitda := revenue - opex
		taxes := math.Max(0, mathutil.ApplyPercentage(ebitda, taxRate))
		entries = append(entries, Entry{
			Month:       month,
			Revenue:     revenue,
			Opex:        opex,
			Capex:       capex,
			EBITDA:      ebitda,
			Taxes:       taxes,
			NetCashFlow: ebitda - taxes - capex,
		})
	}
	return entries
}
