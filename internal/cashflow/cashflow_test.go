package cashflow

import (
	"math"
	"reflect"
	"testing"

	"capital-viability/internal/schedule"
	"capital-viability/pkg/testutil"
)

func TestBuildEntryArithmetic(t *testing.T) {
	investments, costs, revenues := testutil.FixtureSchedules(t)
	policy := testutil.FixturePolicy{TMA: 10, IR: 15, CSLL: 9}

	entries := Build(investments, costs, revenues, policy)
	if len(entries) != 12 {
		t.Fatalf("Build() returned %d entries, want 12", len(entries))
	}

	first := entries[0]
	if first.Month != 1 {
		t.Errorf("first entry month = %d, want 1", first.Month)
	}
	if first.Revenue != 2000 {
		t.Errorf("month 1 revenue = %.2f, want 2000.00", first.Revenue)
	}
	if first.Opex != 500 {
		t.Errorf("month 1 opex = %.2f, want 500.00", first.Opex)
	}
	if first.Capex != 12000 {
		t.Errorf("month 1 capex = %.2f, want 12000.00", first.Capex)
	}
	if first.EBITDA != 1500 {
		t.Errorf("month 1 ebitda = %.2f, want 1500.00", first.EBITDA)
	}
	wantTaxes := 1500 * 0.24
	if math.Abs(first.Taxes-wantTaxes) > 1e-9 {
		t.Errorf("month 1 taxes = %.2f, want %.2f", first.Taxes, wantTaxes)
	}
	wantNet := 1500 - wantTaxes - 12000
	if math.Abs(first.NetCashFlow-wantNet) > 1e-9 {
		t.Errorf("month 1 net = %.2f, want %.2f", first.NetCashFlow, wantNet)
	}
}

func TestBuildNegativeEBITDAPaysNoTaxes(t *testing.T) {
	investments := schedule.NewInvestmentSchedule()
	costs := schedule.NewCostSchedule()
	if _, err := costs.Add(schedule.CostItem{
		Item:       schedule.Item{Description: "rent", Quantity: 1, UnitPrice: 1000},
		StartMonth: 1,
		EndMonth:   12,
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	revenues := schedule.NewRevenueSchedule()
	policy := testutil.FixturePolicy{IR: 15, CSLL: 9}

	entries := Build(investments, costs, revenues, policy)
	for _, entry := range entries {
		if entry.EBITDA != -1000 {
			t.Errorf("month %d ebitda = %.2f, want -1000.00", entry.Month, entry.EBITDA)
		}
		if entry.Taxes != 0 {
			t.Errorf("month %d taxes = %.2f, want 0.00 on negative EBITDA", entry.Month, entry.Taxes)
		}
		if entry.NetCashFlow != -1000 {
			t.Errorf("month %d net = %.2f, want -1000.00", entry.Month, entry.NetCashFlow)
		}
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	investments, costs, revenues := testutil.FixtureSchedules(t)
	policy := testutil.FixturePolicy{TMA: 12, IR: 15, CSLL: 9}

	// Several items per schedule with sums that are sensitive to addition
	// order; every build over unmodified schedules must be bit-identical.
	for i, price := range []float64{0.1, 0.2, 1e12, 3.33333, 1e-6} {
		tag := string(rune('A' + i))
		if _, err := revenues.Add(schedule.RevenueItem{
			Item:       schedule.Item{Tag: "REV_" + tag, Description: "stream", Quantity: 1, UnitPrice: price},
			StartMonth: 1,
			EndMonth:   12,
			GrowthRate: 1,
		}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
		if _, err := costs.Add(schedule.CostItem{
			Item:       schedule.Item{Tag: "COST_" + tag, Description: "overhead", Quantity: 1, UnitPrice: price},
			StartMonth: 1,
			EndMonth:   12,
		}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	first := Build(investments, costs, revenues, policy)
	for i := 0; i < 100; i++ {
		if !reflect.DeepEqual(first, Build(investments, costs, revenues, policy)) {
			t.Fatalf("build %d against unmodified schedules differs from the first", i+2)
		}
	}
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	investments, costs, revenues := testutil.FixtureSchedules(t)
	policy := testutil.FixturePolicy{TMA: 12, IR: 15, CSLL: 9}

	investmentTotal := investments.TotalInvestment()
	costTotal := costs.TotalAnnualCost()
	revenueTotal := revenues.TotalAnnualRevenue()

	Build(investments, costs, revenues, policy)

	if investments.TotalInvestment() != investmentTotal {
		t.Error("Build() mutated the investment schedule")
	}
	if costs.TotalAnnualCost() != costTotal {
		t.Error("Build() mutated the cost schedule")
	}
	if revenues.TotalAnnualRevenue() != revenueTotal {
		t.Error("Build() mutated the revenue schedule")
	}
}

func TestBuildHandlesNilSchedulesAndPolicy(t *testing.T) {
	entries := Build(nil, nil, nil, nil)
	if len(entries) != 12 {
		t.Fatalf("Build() returned %d entries, want 12", len(entries))
	}
	for _, entry := range entries {
		if entry.Revenue != 0 || entry.Opex != 0 || entry.Capex != 0 || entry.NetCashFlow != 0 {
			t.Errorf("month %d should be all zeros, got %+v", entry.Month, entry)
		}
	}
}
