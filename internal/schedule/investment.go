package schedule

import (
	"fmt"

	"capital-viability/pkg/constants"
	"capital-viability/pkg/mathutil"
)

// InvestmentItem is a one-time capital expenditure applied to a single month
// of the horizon. Out-of-range months are clamped, not rejected.
type InvestmentItem struct {
	Item
	Month int
}

func (it *InvestmentItem) clamp() {
	it.Month = mathutil.ClampInt(it.Month, constants.MinMonth, constants.MaxMonth)
}

// MonthlyValue returns the full total value in the investment month and zero
// everywhere else.
func (it InvestmentItem) MonthlyValue(month int) float64 {
	if month == it.Month {
		return it.TotalValue()
	}
	return 0
}

// InvestmentPatch carries optional replacement values for an investment item.
type InvestmentPatch struct {
	ItemPatch
	Month *int
}

// InvestmentSchedule is a keyed collection of investment items. It maintains
// a cached total recomputed after every mutation.
type InvestmentSchedule struct {
	items map[string]InvestmentItem
	order []string
	total float64
}

// NewInvestmentSchedule returns an empty investment schedule.
func NewInvestmentSchedule() *InvestmentSchedule {
	return &InvestmentSchedule{items: make(map[string]InvestmentItem)}
}

// Add validates and inserts an item. An empty tag is replaced with a
// generated one; a caller-supplied tag must not collide.
func (s *InvestmentSchedule) Add(item InvestmentItem) (InvestmentItem, error) {
	item.clamp()
	if err := item.validate(); err != nil {
		return InvestmentItem{}, err
	}
	if item.Tag == "" {
		item.Tag = generateTag(func(tag string) bool {
			_, ok := s.items[tag]
			return ok
		})
	} else if _, ok := s.items[item.Tag]; ok {
		return InvestmentItem{}, fmt.Errorf("add investment %q: %w", item.Tag, ErrDuplicateTag)
	}
	s.items[item.Tag] = item
	s.order = append(s.order, item.Tag)
	s.recompute()
	return item, nil
}

// Update merges the patch into the stored item, validates the merged
// candidate, and commits only when validation passes. A failed update leaves
// the existing item unchanged.
func (s *InvestmentSchedule) Update(tag string, patch InvestmentPatch) (InvestmentItem, error) {
	candidate, ok := s.items[tag]
	if !ok {
		return InvestmentItem{}, fmt.Errorf("update investment %q: %w", tag, ErrNotFound)
	}
	patch.ItemPatch.apply(&candidate.Item)
	if patch.Month != nil {
		candidate.Month = *patch.Month
	}
	candidate.clamp()
	if err := candidate.validate(); err != nil {
		return InvestmentItem{}, err
	}
	s.items[tag] = candidate
	s.recompute()
	return candidate, nil
}

// Remove deletes the item with the given tag.
func (s *InvestmentSchedule) Remove(tag string) error {
	if _, ok := s.items[tag]; !ok {
		return fmt.Errorf("remove investment %q: %w", tag, ErrNotFound)
	}
	delete(s.items, tag)
	s.order = removeFromOrder(s.order, tag)
	s.recompute()
	return nil
}

// Get returns the item with the given tag.
func (s *InvestmentSchedule) Get(tag string) (InvestmentItem, bool) {
	item, ok := s.items[tag]
	return item, ok
}

// Items returns all items in insertion order.
func (s *InvestmentSchedule) Items() []InvestmentItem {
	if s == nil {
		return nil
	}
	items := make([]InvestmentItem, 0, len(s.order))
	for _, tag := range s.order {
		items = append(items, s.items[tag])
	}
	return items
}

// Len returns the number of items in the schedule.
func (s *InvestmentSchedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// MonthlyValue returns the capital expenditure for one month.
func (s *InvestmentSchedule) MonthlyValue(month int) float64 {
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

// MonthlyTotals returns the capital expenditure for months 1 through 12.
func (s *InvestmentSchedule) MonthlyTotals() []float64 {
	totals := make([]float64, constants.MonthsInHorizon)
	for month := constants.MinMonth; month <= constants.MaxMonth; month++ {
		totals[month-1] = s.MonthlyValue(month)
	}
	return totals
}

// TotalInvestment returns the cached sum of all item total values.
func (s *InvestmentSchedule) TotalInvestment() float64 {
	if s == nil {
		return 0
	}
	return s.total
}

func (s *InvestmentSchedule) recompute() {
	total := 0.0
	for _, tag := range s.order {
		total += s.items[tag].TotalValue()
	}
	s.total = total
}
