// Package indicators computes the investment-appraisal indicators from a
// monthly cash-flow series: IRR, NPV, payback period, and the capex over
// EBITDA leverage ratio.
package indicators

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"capital-viability/internal/cashflow"
	"capital-viability/pkg/constants"
)

// ErrUndetermined indicates the IRR has no numeric value: either the cash
// flows never change sign or the solver failed to converge.
var ErrUndetermined = errors.New("irr undetermined")

// Engine computes indicators from a cash-flow series. Every call recomputes
// from the entries passed in; nothing is cached across calls.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates an indicator engine with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// NPV discounts every net cash flow at the effective monthly rate derived
// from the annual rate and returns the sum of present values.
func (e *Engine) NPV(entries []cashflow.Entry, annualRate float64) float64 {
	monthlyRate := math.Pow(1+annualRate/constants.PercentageMultiplier, 1.0/constants.MonthsInHorizon) - 1
	npv := 0.0
	for _, entry := range entries {
		npv += entry.NetCashFlow / math.Pow(1+monthlyRate, float64(entry.Month))
	}
	return npv
}

// IRR finds the monthly rate at which the NPV of the net cash flows is zero
// and returns it annualized as a percentage. It uses Newton's method with a
// bisection fallback inside a bracketing interval. When the cash flows never
// change sign or the solver does not converge within the iteration budget,
// it returns ErrUndetermined rather than a spurious value.
func (e *Engine) IRR(entries []cashflow.Entry) (float64, error) {
	if !hasSignChange(entries) {
		e.logger.Debug("IRR undetermined: cash flows never change sign",
			zap.String("op", "indicators.IRR"),
		)
		return 0, ErrUndetermined
	}

	npvAt := func(rate float64) float64 {
		npv := 0.0
		for _, entry := range entries {
			npv += entry.NetCashFlow / math.Pow(1+rate, float64(entry.Month))
		}
		return npv
	}
	derivativeAt := func(rate float64) float64 {
		d := 0.0
		for _, entry := range entries {
			d -= float64(entry.Month) * entry.NetCashFlow / math.Pow(1+rate, float64(entry.Month)+1)
		}
		return d
	}

	lo, hi, found := bracket(npvAt)
	if !found {
		e.logger.Debug("IRR undetermined: no bracketing interval",
			zap.String("op", "indicators.IRR"),
		)
		return 0, ErrUndetermined
	}
	if lo == hi {
		return annualize(lo), nil
	}

	loValue := npvAt(lo)
	rate := 0.5 * (lo + hi)
	for i := 0; i < constants.IRRMaxIterations; i++ {
		value := npvAt(rate)
		if math.Abs(value) < constants.IRRTolerance {
			return annualize(rate), nil
		}

		// Shrink the bracket around the sign change.
		if (value < 0) == (loValue < 0) {
			lo, loValue = rate, value
		} else {
			hi = rate
		}

		next := rate
		if d := derivativeAt(rate); d != 0 {
			next = rate - value/d
		}
		// Fall back to bisection when the Newton step leaves the bracket.
		if next <= lo || next >= hi || math.IsNaN(next) {
			next = 0.5 * (lo + hi)
		}

		if math.Abs(next-rate) < constants.IRRTolerance {
			return annualize(next), nil
		}
		rate = next
	}

	e.logger.Warn("IRR solver did not converge within iteration budget",
		zap.String("op", "indicators.IRR"),
		zap.Int("iterations", constants.IRRMaxIterations),
	)
	return 0, ErrUndetermined
}

// Payback walks the months in order accumulating net cash flow and returns
// the fractional month at which the cumulative sum first becomes
// non-negative. The second return value is false when the investment is not
// recovered within the horizon; this is a defined non-result, not an error.
func (e *Engine) Payback(entries []cashflow.Entry) (float64, bool) {
	cumulative := 0.0
	for i, entry := range entries {
		cumulative += entry.NetCashFlow
		if cumulative >= 0 {
			if i == 0 {
				return 1, true
			}
			previous := cumulative - entry.NetCashFlow
			fraction := -previous / entry.NetCashFlow
			return float64(i) + fraction, true
		}
	}
	return 0, false
}

// LeverageRatio returns total capital expenditure over total EBITDA. The
// second return value is false when total EBITDA is zero, in which case the
// ratio is undefined.
func (e *Engine) LeverageRatio(entries []cashflow.Entry) (float64, bool) {
	totalCapex := 0.0
	totalEBITDA := 0.0
	for _, entry := range entries {
		totalCapex += entry.Capex
		totalEBITDA += entry.EBITDA
	}
	if totalEBITDA == 0 {
		return 0, false
	}
	return totalCapex / totalEBITDA, true
}

// annualize converts a monthly rate to an annual percentage.
func annualize(monthlyRate float64) float64 {
	return (math.Pow(1+monthlyRate, constants.MonthsInHorizon) - 1) * constants.PercentageMultiplier
}

// hasSignChange reports whether the net cash flows contain both a positive
// and a negative value; without one, the NPV function has no root.
func hasSignChange(entries []cashflow.Entry) bool {
	hasPositive := false
	hasNegative := false
	for _, entry := range entries {
		if entry.NetCashFlow > 0 {
			hasPositive = true
		}
		if entry.NetCashFlow < 0 {
			hasNegative = true
		}
	}
	return hasPositive && hasNegative
}

// bracket scans a fixed grid of monthly rates for an interval where the NPV
// changes sign. When the NPV is already within tolerance at a grid point,
// that point is returned as both bounds.
func bracket(npvAt func(float64) float64) (float64, float64, bool) {
	grid := []float64{-0.99, -0.9, -0.75, -0.5, -0.25, -0.1, -0.05, 0, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}

	previous := npvAt(grid[0])
	if math.Abs(previous) < constants.IRRTolerance {
		return grid[0], grid[0], true
	}
	for i := 1; i < len(grid); i++ {
		current := npvAt(grid[i])
		if math.Abs(current) < constants.IRRTolerance {
			return grid[i], grid[i], true
		}
		if (previous < 0) != (current < 0) {
			return grid[i-1], grid[i], true
		}
		previous = current
	}
	return 0, 0, false
}
