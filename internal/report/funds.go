package report

import (
	"github.com/shopspring/decimal"
)

// FundGoal is one named reserved-savings target.
type FundGoal struct {
	Enabled bool            `json:"enabled" example:"true"`
	Target  decimal.Decimal `json:"target" example:"100000"`
	Current decimal.Decimal `json:"current" example:"25000"`
}

// Progress returns how far along the goal is in percent, capped at 100.
// A goal without a target has no meaningful progress and reports 0.
func (g FundGoal) Progress() decimal.Decimal {
	if !g.Target.IsPositive() {
		return decimal.Zero
	}

	progress := g.Current.Div(g.Target).Mul(oneHundred)
	if progress.GreaterThan(oneHundred) {
		return oneHundred
	}

	return progress
}

// Funds holds both fund goals. They are fetched and saved as a unit.
type Funds struct {
	Emergency FundGoal `json:"emergency"`
	Vacation  FundGoal `json:"vacation"`
}

// FundsPatch is a partial funds update. Nil fields keep the current value.
type FundsPatch struct {
	Emergency *FundGoal `json:"emergency"`
	Vacation  *FundGoal `json:"vacation"`
}

// MergeFundUpdate applies a partial update on top of the current funds.
// An update that only carries the emergency goal must not erase the
// vacation goal, and the other way around.
func MergeFundUpdate(current Funds, patch FundsPatch) Funds {
	next := current

	if patch.Emergency != nil {
		next.Emergency = *patch.Emergency
	}

	if patch.Vacation != nil {
		next.Vacation = *patch.Vacation
	}

	return next
}

// Reserved sums the current amounts of all enabled goals. Disabled
// goals keep their value but do not reserve anything.
func (f Funds) Reserved() decimal.Decimal {
	reserved := decimal.Zero

	if f.Emergency.Enabled {
		reserved = reserved.Add(f.Emergency.Current)
	}

	if f.Vacation.Enabled {
		reserved = reserved.Add(f.Vacation.Current)
	}

	return reserved
}

// Enabled reports whether any goal is enabled. It gates whether the
// "total available" metric is shown at all.
func (f Funds) Enabled() bool {
	return f.Emergency.Enabled || f.Vacation.Enabled
}

// TotalAvailable is the savings figure minus the reserved amounts.
func (f Funds) TotalAvailable(savings decimal.Decimal) decimal.Decimal {
	return savings.Sub(f.Reserved())
}
