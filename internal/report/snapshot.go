// Package report implements the derived-state computation for the spend
// tracker: scope filtering, totals, breakdowns, month series, insights
// and fund arithmetic.
//
// Everything in this package is pure. Functions never fail, never touch
// the database and are safe to call from any goroutine. Amounts are
// decimal.Decimal, whose zero value is 0, so missing or unset values
// cannot poison a sum.
package report

import (
	"github.com/spend-tracker/backend/internal/models"
	"github.com/spend-tracker/backend/internal/types"
)

// Snapshot is the complete set of entity collections for one period.
// It is treated as immutable: a new fetch produces a new Snapshot.
type Snapshot struct {
	Salaries    []models.Salary     `json:"salaries"`
	Expenses    []models.Expense    `json:"expenses"`
	Investments []models.Investment `json:"investments"`
	Activities  []models.Activity   `json:"activities"`
}

// FilterScope projects the snapshot onto a single member.
//
// For the household scope, or when no member name is given, the snapshot
// is returned unchanged. For the personal scope each collection is
// filtered independently by its own member key. Entries joined on a name
// that matches nothing simply vanish; there is no error case. Filtering
// an already filtered snapshot by the same member again is a no-op.
func (s Snapshot) FilterScope(scope types.ViewScope, memberName string) Snapshot {
	if scope != types.ScopePersonal || memberName == "" {
		return s
	}

	filtered := Snapshot{
		Salaries:    make([]models.Salary, 0, len(s.Salaries)),
		Expenses:    make([]models.Expense, 0, len(s.Expenses)),
		Investments: make([]models.Investment, 0, len(s.Investments)),
		Activities:  make([]models.Activity, 0, len(s.Activities)),
	}

	for _, salary := range s.Salaries {
		if salary.MemberKey() == memberName {
			filtered.Salaries = append(filtered.Salaries, salary)
		}
	}

	for _, expense := range s.Expenses {
		if expense.MemberKey() == memberName {
			filtered.Expenses = append(filtered.Expenses, expense)
		}
	}

	for _, investment := range s.Investments {
		if investment.MemberKey() == memberName {
			filtered.Investments = append(filtered.Investments, investment)
		}
	}

	for _, activity := range s.Activities {
		if activity.MemberKey() == memberName {
			filtered.Activities = append(filtered.Activities, activity)
		}
	}

	return filtered
}
