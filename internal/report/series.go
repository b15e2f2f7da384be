package report

import (
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/types"
)

// MonthRow is the rollup for one calendar month of a year snapshot.
type MonthRow struct {
	Month       int             `json:"month" example:"3"`
	Name        string          `json:"name" example:"March"`
	Income      decimal.Decimal `json:"income" example:"52000"`      // Salaries plus credit activities
	Expenses    decimal.Decimal `json:"expenses" example:"21000"`
	Investments decimal.Decimal `json:"investments" example:"10000"`
	Savings     decimal.Decimal `json:"savings" example:"21000"`     // Income minus expenses and investments
}

// MonthSeries rolls a year snapshot up into twelve rows, one per
// calendar month. Months without entries stay zero-filled, so the
// result always has exactly twelve rows.
func MonthSeries(s Snapshot) []MonthRow {
	rows := make([]MonthRow, 12)
	for i := range rows {
		rows[i].Month = i + 1
		rows[i].Name = types.MonthName(i + 1)
	}

	at := func(month int) *MonthRow {
		if month < 1 || month > 12 {
			return nil
		}

		return &rows[month-1]
	}

	for _, salary := range s.Salaries {
		if r := at(salary.EntryMonth()); r != nil {
			r.Income = r.Income.Add(salary.Amount)
		}
	}

	for _, activity := range s.Activities {
		if r := at(activity.EntryMonth()); r != nil && activity.IsCredit() {
			r.Income = r.Income.Add(activity.Amount)
		}
	}

	for _, expense := range s.Expenses {
		if r := at(expense.EntryMonth()); r != nil {
			r.Expenses = r.Expenses.Add(expense.Amount)
		}
	}

	for _, investment := range s.Investments {
		if r := at(investment.EntryMonth()); r != nil {
			r.Investments = r.Investments.Add(investment.Amount)
		}
	}

	for i := range rows {
		rows[i].Savings = rows[i].Income.Sub(rows[i].Expenses).Sub(rows[i].Investments)
	}

	return rows
}
