package project

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"capital-viability/internal/config"
	"capital-viability/internal/schedule"
	"capital-viability/pkg/spreadsheet"
)

func defaultPolicy() config.TaxPolicy {
	return config.TaxPolicy{TMA: 12, IR: 15, CSLL: 9}
}

func TestManagerCreateAndList(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())

	if err := manager.Create("plant-a", "First expansion", defaultPolicy()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := manager.Create("plant-b", "Second expansion", defaultPolicy()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	projects, err := manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("List() returned %d projects, want 2", len(projects))
	}
}

func TestManagerCreateRejectsDuplicates(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())

	if err := manager.Create("plant-a", "", defaultPolicy()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := manager.Create("plant-a", "", defaultPolicy()); !errors.Is(err, ErrProjectExists) {
		t.Errorf("second Create() error = %v, want ErrProjectExists", err)
	}
}

func TestManagerCreateRejectsInvalidNames(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())

	for _, name := range []string{"", "   ", "a/b", `a\b`} {
		if err := manager.Create(name, "", defaultPolicy()); err == nil {
			t.Errorf("Create(%q) expected error", name)
		}
	}
}

func TestManagerListEmptyDir(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())
	projects, err := manager.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("List() returned %d projects from empty dir, want 0", len(projects))
	}
}

func TestManagerLoadNotFound(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())
	if _, err := manager.Load("missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Load() error = %v, want ErrProjectNotFound", err)
	}
}

func TestManagerSaveLoadRoundTrip(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())
	if err := manager.Create("plant-a", "Expansion", defaultPolicy()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	loaded, err := manager.Load("plant-a")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := loaded.Investments.Add(schedule.InvestmentItem{
		Item:  schedule.Item{Tag: "INV_1", Description: "Excavator", Quantity: 2, UnitPrice: 1000},
		Month: 1,
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := loaded.Costs.Add(schedule.CostItem{
		Item:       schedule.Item{Tag: "COST_1", Description: "Maintenance", Quantity: 1, UnitPrice: 500},
		Recurrent:  true,
		StartMonth: 1,
		EndMonth:   12,
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if _, err := loaded.Revenues.Add(schedule.RevenueItem{
		Item:       schedule.Item{Tag: "REV_1", Description: "Contracts", Quantity: 1, UnitPrice: 2000},
		Recurrent:  true,
		StartMonth: 1,
		EndMonth:   12,
		GrowthRate: 2,
	}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := manager.Save(loaded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := manager.Load("plant-a")
	if err != nil {
		t.Fatalf("Load() after save error = %v", err)
	}

	inv, ok := reloaded.Investments.Get("INV_1")
	if !ok {
		t.Fatal("investment INV_1 missing after reload")
	}
	if inv.Description != "Excavator" || inv.Quantity != 2 || inv.UnitPrice != 1000 || inv.Month != 1 {
		t.Errorf("reloaded investment = %+v, fields differ from saved item", inv)
	}

	cost, ok := reloaded.Costs.Get("COST_1")
	if !ok {
		t.Fatal("cost COST_1 missing after reload")
	}
	if !cost.Recurrent || cost.StartMonth != 1 || cost.EndMonth != 12 || cost.UnitPrice != 500 {
		t.Errorf("reloaded cost = %+v, fields differ from saved item", cost)
	}

	rev, ok := reloaded.Revenues.Get("REV_1")
	if !ok {
		t.Fatal("revenue REV_1 missing after reload")
	}
	if rev.GrowthRate != 2 || rev.UnitPrice != 2000 || !rev.Recurrent {
		t.Errorf("reloaded revenue = %+v, fields differ from saved item", rev)
	}

	if reloaded.Policy != defaultPolicy() {
		t.Errorf("reloaded policy = %+v, want %+v", reloaded.Policy, defaultPolicy())
	}
}

func TestItemRecordRoundTrip(t *testing.T) {
	t.Run("investment", func(t *testing.T) {
		item := schedule.InvestmentItem{
			Item:  schedule.Item{Tag: "INV_1", Description: "Excavator", Quantity: 2, UnitPrice: 1000},
			Month: 4,
		}
		s := schedule.NewInvestmentSchedule()
		if _, err := s.Add(item); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		records := InvestmentRecords(s)
		if len(records) != 1 {
			t.Fatalf("got %d records, want 1", len(records))
		}
		if got := ItemFromInvestmentRecord(records[0]); got != item {
			t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, item)
		}
	})

	t.Run("cost", func(t *testing.T) {
		item := schedule.CostItem{
			Item:       schedule.Item{Tag: "COST_1", Description: "Labor", Quantity: 3, UnitPrice: 120},
			Recurrent:  true,
			StartMonth: 2,
			EndMonth:   9,
		}
		s := schedule.NewCostSchedule()
		if _, err := s.Add(item); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		records := CostRecords(s)
		if got := ItemFromCostRecord(records[0]); got != item {
			t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, item)
		}
	})

	t.Run("revenue", func(t *testing.T) {
		item := schedule.RevenueItem{
			Item:       schedule.Item{Tag: "REV_1", Description: "Contracts", Quantity: 1, UnitPrice: 2000},
			Recurrent:  false,
			StartMonth: 3,
			EndMonth:   11,
			GrowthRate: 1.5,
		}
		s := schedule.NewRevenueSchedule()
		if _, err := s.Add(item); err != nil {
			t.Fatalf("Add() error = %v", err)
		}

		records := RevenueRecords(s)
		if got := ItemFromRevenueRecord(records[0]); got != item {
			t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, item)
		}
	})
}

func TestManagerLoadSkipsInvalidRows(t *testing.T) {
	manager := NewManager(t.TempDir(), zap.NewNop())
	if err := manager.Create("plant-a", "", defaultPolicy()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Write a workbook containing a row that fails item validation; the
	// load must keep the good rows and skip the bad one.
	dir := manager.dir + "/plant-a"
	records := []spreadsheet.InvestmentRecord{
		{Tag: "INV_1", Description: "Excavator", Quantity: 2, UnitPrice: 1000, Month: 1},
		{Tag: "INV_2", Description: "", Quantity: 1, UnitPrice: 100, Month: 2},
	}
	if err := spreadsheet.WriteInvestments(dir+"/"+investmentsFile, records); err != nil {
		t.Fatalf("WriteInvestments() error = %v", err)
	}

	loaded, err := manager.Load("plant-a")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Investments.Len() != 1 {
		t.Errorf("loaded %d investments, want 1 (invalid row skipped)", loaded.Investments.Len())
	}
	if _, ok := loaded.Investments.Get("INV_1"); !ok {
		t.Error("valid row INV_1 should survive the load")
	}
}
