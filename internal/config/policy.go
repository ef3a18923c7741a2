package config

import (
	"fmt"

	"capital-viability/pkg/constants"
)

// TaxPolicy supplies the discount rate and tax components used by the
// cash-flow and indicator engines. TMA is the minimum acceptable annual
// discount rate; IR and CSLL are the two tax components whose sum is the
// effective tax rate applied to EBITDA. All values are percentages.
type TaxPolicy struct {
	TMA  float64 `yaml:"tma,omitempty"`
	IR   float64 `yaml:"ir,omitempty"`
	CSLL float64 `yaml:"csll,omitempty"`
}

// EffectiveTaxRate returns the combined tax rate in percent.
func (p TaxPolicy) EffectiveTaxRate() float64 {
	return p.IR + p.CSLL
}

// DiscountRate returns the annual discount rate in percent.
func (p TaxPolicy) DiscountRate() float64 {
	return p.TMA
}

// Validate checks that every rate lies within [0, 100].
func (p TaxPolicy) Validate() error {
	for _, rate := range []struct {
		name  string
		value float64
	}{
		{"TMA", p.TMA},
		{"IR", p.IR},
		{"CSLL", p.CSLL},
	} {
		if rate.value < 0 || rate.value > constants.PercentageMultiplier {
			return fmt.Errorf("%s must be between 0 and 100, got %.2f", rate.name, rate.value)
		}
	}
	return nil
}
