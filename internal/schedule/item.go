// Package schedule defines the financial item flavors and their keyed
// schedules, including the per-category monthly aggregation rules.
package schedule

import (
	"strings"

	"github.com/google/uuid"
)

// tagPrefix is prepended to generated item tags.
const tagPrefix = "ITEM_"

// Item holds the attributes common to all financial item flavors. The total
// value is always derived from quantity and unit price, never stored.
type Item struct {
	Tag         string
	Description string
	Quantity    float64
	UnitPrice   float64
}

// TotalValue returns quantity times unit price.
func (it Item) TotalValue() float64 {
	return it.Quantity * it.UnitPrice
}

func (it Item) validate() error {
	if strings.TrimSpace(it.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if it.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if it.UnitPrice < 0 {
		return &ValidationError{Field: "unit price", Reason: "must not be negative"}
	}
	return nil
}

// ItemPatch carries optional replacement values for the common item fields.
// Nil fields are left unchanged.
type ItemPatch struct {
	Description *string
	Quantity    *float64
	UnitPrice   *float64
}

func (p ItemPatch) apply(it *Item) {
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.UnitPrice != nil {
		it.UnitPrice = *p.UnitPrice
	}
}

// generateTag produces a fresh item tag that does not collide with any tag
// for which exists returns true.
func generateTag(exists func(string) bool) string {
	for {
		tag := tagPrefix + uuid.NewString()[:8]
		if !exists(tag) {
			return tag
		}
	}
}

// removeFromOrder drops a tag from an insertion-order slice.
func removeFromOrder(order []string, tag string) []string {
	for i, t := range order {
		if t == tag {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
