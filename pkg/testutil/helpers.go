// Package testutil provides common fixtures for engine tests.
package testutil

import (
	"testing"

	"capital-viability/internal/schedule"
)

// FixturePolicy is a tax policy with fixed rates for deterministic tests.
type FixturePolicy struct {
	TMA  float64
	IR   float64
	CSLL float64
}

func (p FixturePolicy) EffectiveTaxRate() float64 { return p.IR + p.CSLL }
func (p FixturePolicy) DiscountRate() float64     { return p.TMA }

// FixtureSchedules builds a standard small project: one 12,000 investment in
// month 1, one 500/month cost across the year, and one 2,000 revenue growing
// 2% per month.
func FixtureSchedules(t *testing.T) (*schedule.InvestmentSchedule, *schedule.CostSchedule, *schedule.RevenueSchedule) {
	t.Helper()

	investments := schedule.NewInvestmentSchedule()
	if _, err := investments.Add(schedule.InvestmentItem{
		Item:  schedule.Item{Tag: "INV_1", Description: "Initial equipment", Quantity: 1, UnitPrice: 12000},
		Month: 1,
	}); err != nil {
		t.Fatalf("failed to add investment fixture: %v", err)
	}

	costs := schedule.NewCostSchedule()
	if _, err := costs.Add(schedule.CostItem{
		Item:       schedule.Item{Tag: "COST_1", Description: "Maintenance", Quantity: 1, UnitPrice: 500},
		Recurrent:  true,
		StartMonth: 1,
		EndMonth:   12,
	}); err != nil {
		t.Fatalf("failed to add cost fixture: %v", err)
	}

	revenues := schedule.NewRevenueSchedule()
	if _, err := revenues.Add(schedule.RevenueItem{
		Item:       schedule.Item{Tag: "REV_1", Description: "Service contracts", Quantity: 1, UnitPrice: 2000},
		Recurrent:  true,
		StartMonth: 1,
		EndMonth:   12,
		GrowthRate: 2,
	}); err != nil {
		t.Fatalf("failed to add revenue fixture: %v", err)
	}

	return investments, costs, revenues
}
