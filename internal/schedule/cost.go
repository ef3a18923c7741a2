package schedule

import (
	"fmt"

	"capital-viability/pkg/constants"
	"capital-viability/pkg/mathutil"
)

// CostItem is a recurring operating cost active between its start and end
// months inclusive. The recurrent flag is stored and round-tripped but does
// not alter aggregation; every item is treated as active across its window.
type CostItem struct {
	Item
	Recurrent  bool
	StartMonth int
	EndMonth   int
}

func (it *CostItem) clamp() {
	it.StartMonth = mathutil.ClampInt(it.StartMonth, constants.MinMonth, constants.MaxMonth)
	it.EndMonth = mathutil.ClampInt(it.EndMonth, it.StartMonth, constants.MaxMonth)
}

// MonthlyValue returns the full total value inside the active window and
// zero everywhere else.
func (it CostItem) MonthlyValue(month int) float64 {
	if it.StartMonth <= month && month <= it.EndMonth {
		return it.TotalValue()
	}
	return 0
}

// CostPatch carries optional replacement values for a cost item.
type CostPatch struct {
	ItemPatch
	Recurrent  *bool
	StartMonth *int
	EndMonth   *int
}

// CostSchedule is a keyed collection of cost items with a cached annual
// total recomputed after every mutation.
type CostSchedule struct {
	items map[string]CostItem
	order []string
	total float64
}

// NewCostSchedule returns an empty cost schedule.
func NewCostSchedule() *CostSchedule {
	return &CostSchedule{items: make(map[string]CostItem)}
}

// Add validates and inserts an item. An empty tag is replaced with a
// generated one; a caller-supplied tag must not collide.
func (s *CostSchedule) Add(item CostItem) (CostItem, error) {
	item.clamp()
	if err := item.validate(); err != nil {
		return CostItem{}, err
	}
	if item.Tag == "" {
		item.Tag = generateTag(func(tag string) bool {
			_, ok := s.items[tag]
			return ok
		})
	} else if _, ok := s.items[item.Tag]; ok {
		return CostItem{}, fmt.Errorf("add cost %q: %w", item.Tag, ErrDuplicateTag)
	}
	s.items[item.Tag] = item
	s.order = append(s.order, item.Tag)
	s.recompute()
	return item, nil
}

// Update merges the patch into the stored item, validates the merged
// candidate, and commits only when validation passes.
func (s *CostSchedule) Update(tag string, patch CostPatch) (CostItem, error) {
	candidate, ok := s.items[tag]
	if !ok {
		return CostItem{}, fmt.Errorf("update cost %q: %w", tag, ErrNotFound)
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
	candidate.clamp()
	if err := candidate.validate(); err != nil {
		return CostItem{}, err
	}
	s.items[tag] = candidate
	s.recompute()
	return candidate, nil
}

// Remove deletes the item with the given tag.
func (s *CostSchedule) Remove(tag string) error {
	if _, ok := s.items[tag]; !ok {
		return fmt.Errorf("remove cost %q: %w", tag, ErrNotFound)
	}
	delete(s.items, tag)
	s.order = removeFromOrder(s.order, tag)
	s.recompute()
	return nil
}

// Get returns the item with the given tag.
func (s *CostSchedule) Get(tag string) (CostItem, bool) {
	item, ok := s.items[tag]
	return item, ok
}

// Items returns all items in insertion order.
func (s *CostSchedule) Items() []CostItem {
	if s == nil {
		return nil
	}
	items := make([]CostItem, 0, len(s.order))
	for _, tag := range s.order {
		items = append(items, s.items[tag])
	}
	return items
}

// Len returns the number of items in the schedule.
func (s *CostSchedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// MonthlyValue returns the operating cost for one month.
func (s *CostSchedule) MonthlyValue(month int) float64 {
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

// MonthlyTotals returns the operating cost for months 1 through 12.
func (s *CostSchedule) MonthlyTotals() []float64 {
	totals := make([]float64, constants.MonthsInHorizon)
	for month := constants.MinMonth; month <= constants.MaxMonth; month++ {
		totals[month-1] = s.MonthlyValue(month)
	}
	return totals
}

// TotalAnnualCost returns the cached sum of monthly costs over the horizon.
func (s *CostSchedule) TotalAnnualCost() float64 {
	if s == nil {
		return 0
	}
	return s.total
}

func (s *CostSchedule) recompute() {
	total := 0.0
	for month := constants.MinMonth; month <= constants.MaxMonth; month++ {
		total += s.MonthlyValue(month)
	}
	s.total = total
}
