package indicators

import (
	"go.uber.org/zap"

	"capital-viability/internal/cashflow"
)

// Indicator is one computed appraisal value. Valid is false when the
// indicator is undetermined, undefined, or not recovered.
type Indicator struct {
	Value float64
	Valid bool
}

// Snapshot is the result of one calculation pass: the 12 cash-flow entries
// plus the four indicators. It is produced fresh on every request and never
// mutated afterwards.
type Snapshot struct {
	Entries  []cashflow.Entry
	IRR      Indicator
	NPV      Indicator
	Payback  Indicator
	Leverage Indicator
}

// Snapshot computes all four indicators for the given entries, discounting
// NPV at the annual rate. A failure in one indicator does not abort the
// others; the failed indicator carries Valid=false.
func (e *Engine) Snapshot(entries []cashflow.Entry, annualDiscountRate float64) *Snapshot {
	snap := &Snapshot{
		Entries: append([]cashflow.Entry(nil), entries...),
	}

	snap.NPV = Indicator{Value: e.NPV(entries, annualDiscountRate), Valid: true}

	if irr, err := e.IRR(entries); err == nil {
		snap.IRR = Indicator{Value: irr, Valid: true}
	} else {
		e.logger.Debug("IRR not available for snapshot",
			zap.String("op", "indicators.Snapshot"),
			zap.Error(err),
		)
	}

	if payback, ok := e.Payback(entries); ok {
		snap.Payback = Indicator{Value: payback, Valid: true}
	}

	if leverage, ok := e.LeverageRatio(entries); ok {
		snap.Leverage = Indicator{Value: leverage, Valid: true}
	}

	return snap
}
