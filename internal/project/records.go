package project

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"capital-viability/internal/config"
	"capital-viability/internal/schedule"
	"capital-viability/pkg/spreadsheet"
)

// InvestmentRecords converts a schedule's items to their record form in
// insertion order.
func InvestmentRecords(s *schedule.InvestmentSchedule) []spreadsheet.InvestmentRecord {
	items := s.Items()
	records := make([]spreadsheet.InvestmentRecord, 0, len(items))
	for _, item := range items {
		records = append(records, spreadsheet.InvestmentRecord{
			Tag:         item.Tag,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Month:       item.Month,
		})
	}
	return records
}

// CostRecords converts a schedule's items to their record form in insertion
// order.
func CostRecords(s *schedule.CostSchedule) []spreadsheet.CostRecord {
	items := s.Items()
	records := make([]spreadsheet.CostRecord, 0, len(items))
	for _, item := range items {
		records = append(records, spreadsheet.CostRecord{
			Tag:         item.Tag,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Recurrent:   item.Recurrent,
			StartMonth:  item.StartMonth,
			EndMonth:    item.EndMonth,
		})
	}
	return records
}

// RevenueRecords converts a schedule's items to their record form in
// insertion order.
func RevenueRecords(s *schedule.RevenueSchedule) []spreadsheet.RevenueRecord {
	items := s.Items()
	records := make([]spreadsheet.RevenueRecord, 0, len(items))
	for _, item := range items {
		records = append(records, spreadsheet.RevenueRecord{
			Tag:         item.Tag,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Recurrent:   item.Recurrent,
			StartMonth:  item.StartMonth,
			EndMonth:    item.EndMonth,
			GrowthRate:  item.GrowthRate,
		})
	}
	return records
}

// ItemFromInvestmentRecord reconstructs a schedule item from its record form.
func ItemFromInvestmentRecord(r spreadsheet.InvestmentRecord) schedule.InvestmentItem {
	return schedule.InvestmentItem{
		Item: schedule.Item{
			Tag:         r.Tag,
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
		},
		Month: r.Month,
	}
}

// ItemFromCostRecord reconstructs a schedule item from its record form.
func ItemFromCostRecord(r spreadsheet.CostRecord) schedule.CostItem {
	return schedule.CostItem{
		Item: schedule.Item{
			Tag:         r.Tag,
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
		},
		Recurrent:  r.Recurrent,
		StartMonth: r.StartMonth,
		EndMonth:   r.EndMonth,
	}
}

// ItemFromRevenueRecord reconstructs a schedule item from its record form.
func ItemFromRevenueRecord(r spreadsheet.RevenueRecord) schedule.RevenueItem {
	return schedule.RevenueItem{
		Item: schedule.Item{
			Tag:         r.Tag,
			Description: r.Description,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
		},
		Recurrent:  r.Recurrent,
		StartMonth: r.StartMonth,
		EndMonth:   r.EndMonth,
		GrowthRate: r.GrowthRate,
	}
}

func (m *Manager) loadSchedules(projectDir string, project *Project) error {
	investmentRecords, skipped, err := spreadsheet.ReadInvestments(filepath.Join(projectDir, investmentsFile))
	if err != nil {
		return err
	}
	rejected := 0
	for _, record := range investmentRecords {
		if _, err := project.Investments.Add(ItemFromInvestmentRecord(record)); err != nil {
			rejected++
			m.logger.Warn("skipping invalid investment row",
				zap.String("op", "project.Load"),
				zap.String("tag", record.Tag),
				zap.Error(err),
			)
		}
	}
	m.logImport("investments", len(investmentRecords), skipped+rejected)

	costRecords, skipped, err := spreadsheet.ReadCosts(filepath.Join(projectDir, costsFile))
	if err != nil {
		return err
	}
	rejected = 0
	for _, record := range costRecords {
		if _, err := project.Costs.Add(ItemFromCostRecord(record)); err != nil {
			rejected++
			m.logger.Warn("skipping invalid cost row",
				zap.String("op", "project.Load"),
				zap.String("tag", record.Tag),
				zap.Error(err),
			)
		}
	}
	m.logImport("costs", len(costRecords), skipped+rejected)

	revenueRecords, skipped, err := spreadsheet.ReadRevenues(filepath.Join(projectDir, revenuesFile))
	if err != nil {
		return err
	}
	rejected = 0
	for _, record := range revenueRecords {
		if _, err := project.Revenues.Add(ItemFromRevenueRecord(record)); err != nil {
			rejected++
			m.logger.Warn("skipping invalid revenue row",
				zap.String("op", "project.Load"),
				zap.String("tag", record.Tag),
				zap.Error(err),
			)
		}
	}
	m.logImport("revenues", len(revenueRecords), skipped+rejected)

	return nil
}

func (m *Manager) logImport(category string, read, skipped int) {
	m.logger.Debug(fmt.Sprintf("imported %s", category),
		zap.String("op", "project.Load"),
		zap.Int("rows", read),
		zap.Int("skipped", skipped),
	)
}

func (m *Manager) writeWorkbooks(projectDir string, project *Project) error {
	if err := spreadsheet.WriteInvestments(filepath.Join(projectDir, investmentsFile), InvestmentRecords(project.Investments)); err != nil {
		return err
	}
	if err := spreadsheet.WriteCosts(filepath.Join(projectDir, costsFile), CostRecords(project.Costs)); err != nil {
		return err
	}
	if err := spreadsheet.WriteRevenues(filepath.Join(projectDir, revenuesFile), RevenueRecords(project.Revenues)); err != nil {
		return err
	}
	return spreadsheet.WritePolicy(filepath.Join(projectDir, policyFile), spreadsheet.PolicyRecord{
		TMA:  project.Policy.TMA,
		IR:   project.Policy.IR,
		CSLL: project.Policy.CSLL,
	})
}

func readPolicy(path string) (config.TaxPolicy, error) {
	record, err := spreadsheet.ReadPolicy(path)
	if err != nil {
		return config.TaxPolicy{}, err
	}
	policy := config.TaxPolicy{TMA: record.TMA, IR: record.IR, CSLL: record.CSLL}
	if err := policy.Validate(); err != nil {
		return config.TaxPolicy{}, fmt.Errorf("invalid policy in %s: %w", path, err)
	}
	return policy, nil
}
