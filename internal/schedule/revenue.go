package schedule

import (
	"fmt"
	"math"

	"capital-viability/pkg/constants"
	"capital-viability/pkg/mathutil"
)

// RevenueItem is a recurring revenue active between its start and end months
// inclusive, compounding monthly at the growth rate from the start month.
// The first active month carries no compounding (exponent zero).
type RevenueItem struct {
	Item
	Recurrent  bool
	StartMonth int
	EndMonth   int
	GrowthRate float64
}

func (it *RevenueItem) clamp() {
	it.StartMonth = mathutil.ClampInt(it.StartMonth, constants.MinMonth, constants.MaxMonth)
	it.EndMonth = mathutil.ClampInt(it.EndMonth, it.StartMonth, constants.MaxMonth)
	it.GrowthRate = mathutil.ClampFloat(it.GrowthRate, constants.MinGrowthRate, constants.MaxGrowthRate)
}

// MonthlyValue returns the compounded revenue inside the active window and
// zero everywhere else.
func (it RevenueItem) MonthlyValue(month int) float64 {
	if it.StartMonth <= month && month <= it.EndMonth {
		growth := math.Pow(1+it.GrowthRate/constants.PercentageMultiplier, float64(month-it.StartMonth))
		return it.TotalValue() * growth
	}
	return 0
}

// RevenuePatch carries optional replacement values for a revenue item.
type RevenuePatch struct {
	ItemPatch
	Recurrent  *bool
	StartMonth *int
	EndMonth   *int
	GrowthRate *float64
}

// RevenueSchedule is a keyed collection of revenue items with a cached
// annual total recomputed after every mutation.
type RevenueSchedule struct {
	items map[string]RevenueItem
	order []string
	total float64
}

// NewRevenueSchedule returns an empty revenue schedule.
func NewRevenueSchedule() *RevenueSchedule {
	return &RevenueSchedule{items: make(map[string]RevenueItem)}
}

// Add validates and inserts an item. An empty tag is replaced with a
// generated one; a caller-supplied tag must not collide.
func (s *RevenueSchedule) Add(item RevenueItem) (RevenueItem, error) {
	item.clamp()
	if err := item.validate(); err != nil {
		return RevenueItem{}, err
	}
	if item.Tag == "" {
		item.Tag = generateTag(func(tag string) bool {
			_, ok := s.items[tag]
			return ok
		})
	} else if _, ok := s.items[item.Tag]; ok {
		return RevenueItem{}, fmt.Errorf("add revenue %q: %w", item.Tag, ErrDuplicateTag)
	}
	s.items[item.Tag] = item
	s.order = append(s.order, item.Tag)
	s.recompute()
	return item, nil
}

// Update merges the patch into the stored item, validates the merged
// candidate, and commits only when validation passes.
func (s *RevenueSchedule) Update(tag string, patch RevenuePatch) (RevenueItem, error) {
	candidate, ok := s.items[tag]
	if !ok {
		return RevenueItem{}, fmt.Errorf("update revenue %q: %w", tag, ErrNotFound)
	}
	patch.ItemPatch.apply(&candidate.Item)
	if patch.Recurrent != nil {
		candidate.Recurrent = *patch.Recurrent
	}
	if patch.StartMonth != nil {
		candidate.StartMonth = *patch.StartMonth
	}
	if patch.EndMonth != nil {
		candidate.EndMonth = *patch.EndMonth
	}
	if patch.GrowthRate != nil {
		candidate.GrowthRate = *patch.GrowthRate
	}
	candidate.clamp()
	if err := candidate.validate(); err != nil {
		return RevenueItem{}, err
	}
	s.items[tag] = candidate
	s.recompute()
	return candidate, nil
}

// Remove deletes the item with the given tag.
func (s *RevenueSchedule) Remove(tag string) error {
	if _, ok := s.items[tag]; !ok {
		return fmt.Errorf("remove revenue %q: %w", tag, ErrNotFound)
	}
	delete(s.items, tag)
	s.order = removeFromOrder(s.order, tag)
	s.recompute()
	return nil
}

// Get returns the item with the given tag.
func (s *RevenueSchedule) Get(tag string) (RevenueItem, bool) {
	item, ok := s.items[tag]
	return item, ok
}

// Items returns all items in insertion order.
func (s *RevenueSchedule) Items() []RevenueItem {
	if s == nil {
		return nil
	}
	items := make([]RevenueItem, 0, len(s.order))
	for _, tag := range s.order {
		items = append(items, s.items[tag])
	}
	return items
}

// Len returns the number of items in the schedule.
func (s *RevenueSchedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// MonthlyValue returns the revenue for one month.
func (s *RevenueSchedule) MonthlyValue(month int) float64 {
	if s == nil {
		return 0
	}
	// Iterate in insertion order so repeated sums over the same items are
	// bit-identical; float addition is not associative.
	total := 0.0
	for _, tag := range s.order {
		total += s.items[tag].MonthlyValue(month)
	}
	return total
}

// MonthlyTotals returns the revenue for months 1 through 12.
func (s *RevenueSchedule) MonthlyTotals() []float64 {
	totals := make([]float64, constants.MonthsInHorizon)
	for month := constants.MinMonth; month <= constants.MaxMonth; month++ {
		totals[month-1] = s.MonthlyValue(month)
	}
	return totals
}

// TotalAnnualRevenue returns the cached sum of monthly revenues over the
// horizon, including growth.
func (s *RevenueSchedule) TotalAnnualRevenue() float64 {
	if s == nil {
		return 0
	}
	return s.total
}

func (s *RevenueSchedule) recompute() {
	total := 0.0
	for month := constants.MinMonth; month <= constants.MaxMonth; month++ {
		total += s.MonthlyValue(month)
	}
	s.total = total
}
