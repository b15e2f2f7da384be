package report

import (
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/models"
)

var oneHundred = decimal.NewFromInt(100)

// Summary holds the headline totals for a snapshot.
//
// Investments count as spending: money moved into an investment is no
// longer available, even though it is not lost. Loan activities are
// borrowed money spent or owed and reduce disposable income; Transfer
// and Other activities stay out of the totals entirely.
type Summary struct {
	TotalSalary      decimal.Decimal `json:"totalSalary" example:"50000"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses" example:"20000"`
	TotalInvestments decimal.Decimal `json:"totalInvestments" example:"10000"`
	OtherIncome      decimal.Decimal `json:"otherIncome" example:"0"`      // Income and Gift activities
	OtherOutflow     decimal.Decimal `json:"otherOutflow" example:"0"`     // Loan activities
	TotalIncome      decimal.Decimal `json:"totalIncome" example:"50000"`  // Salary plus other income
	TotalSpending    decimal.Decimal `json:"totalSpending" example:"30000"`// Expenses, investments and loans
	Savings          decimal.Decimal `json:"savings" example:"20000"`      // Income minus spending, may be negative
	SavingsPercent   string          `json:"savingsPercent" example:"40.0"`// Savings as percent of income, one decimal
}

// Summarize computes the headline totals for a snapshot.
func Summarize(s Snapshot) Summary {
	var sum Summary

	for _, salary := range s.Salaries {
		sum.TotalSalary = sum.TotalSalary.Add(salary.Amount)
	}

	for _, expense := range s.Expenses {
		sum.TotalExpenses = sum.TotalExpenses.Add(expense.Amount)
	}

	for _, investment := range s.Investments {
		sum.TotalInvestments = sum.TotalInvestments.Add(investment.Amount)
	}

	for _, activity := range s.Activities {
		if activity.IsCredit() {
			sum.OtherIncome = sum.OtherIncome.Add(activity.Amount)
		} else if activity.IsDebit() {
			sum.OtherOutflow = sum.OtherOutflow.Add(activity.Amount)
		}
	}

	sum.TotalIncome = sum.TotalSalary.Add(sum.OtherIncome)
	sum.TotalSpending = sum.TotalExpenses.Add(sum.TotalInvestments).Add(sum.OtherOutflow)
	sum.Savings = sum.TotalIncome.Sub(sum.TotalSpending)
	sum.SavingsPercent = percentOf(sum.Savings, sum.TotalIncome).StringFixed(1)

	return sum
}

// percentOf returns part/whole*100 and 0 when the whole is not positive.
func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}

	return part.Div(whole).Mul(oneHundred)
}

// Bucket is one row of a grouped breakdown.
type Bucket struct {
	Name   string          `json:"name" example:"Food"`
	Amount decimal.Decimal `json:"amount" example:"1200"`
}

// Breakdown is a list of buckets in first-seen order of the key.
type Breakdown []Bucket

// Total sums all buckets of the breakdown.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range b {
		total = total.Add(bucket.Amount)
	}

	return total
}

// groupBy sums amounts per key. Keys keep the order in which they first
// appear in the input, so callers can render stable charts without
// sorting.
func groupBy[T any](items []T, key func(T) string, amount func(T) decimal.Decimal) Breakdown {
	index := make(map[string]int, len(items))
	breakdown := make(Breakdown, 0, len(items))

	for _, item := range items {
		k := key(item)

		i, seen := index[k]
		if !seen {
			i = len(breakdown)
			index[k] = i
			breakdown = append(breakdown, Bucket{Name: k})
		}

		breakdown[i].Amount = breakdown[i].Amount.Add(amount(item))
	}

	return breakdown
}

// ExpensesByCategory groups the snapshot's expenses by category.
func ExpensesByCategory(s Snapshot) Breakdown {
	return groupBy(s.Expenses,
		func(e models.Expense) string { return e.Category },
		func(e models.Expense) decimal.Decimal { return e.Amount })
}

// InvestmentsByType groups the snapshot's investments by type.
func InvestmentsByType(s Snapshot) Breakdown {
	return groupBy(s.Investments,
		func(i models.Investment) string { return i.Type },
		func(i models.Investment) decimal.Decimal { return i.Amount })
}

// SalariesByMember groups the snapshot's salaries by member name.
func SalariesByMember(s Snapshot) Breakdown {
	return groupBy(s.Salaries,
		func(sa models.Salary) string { return sa.MemberKey() },
		func(sa models.Salary) decimal.Decimal { return sa.Amount })
}

// ExpensesByMember groups the snapshot's expenses by member name.
func ExpensesByMember(s Snapshot) Breakdown {
	return groupBy(s.Expenses,
		func(e models.Expense) string { return e.MemberKey() },
		func(e models.Expense) decimal.Decimal { return e.Amount })
}

// InvestmentsByMember groups the snapshot's investments by member name.
func InvestmentsByMember(s Snapshot) Breakdown {
	return groupBy(s.Investments,
		func(i models.Investment) string { return i.MemberKey() },
		func(i models.Investment) decimal.Decimal { return i.Amount })
}

// ContributionRow is the per-member view across salaries, expenses and
// investments.
type ContributionRow struct {
	Name        string          `json:"name" example:"Asha"`
	Salary      decimal.Decimal `json:"salary" example:"50000"`
	Expenses    decimal.Decimal `json:"expenses" example:"20000"`
	Investments decimal.Decimal `json:"investments" example:"10000"`
}

// Contributions returns one row per distinct member name appearing in
// any of the three collections, in first-seen order. The key set is the
// union over the actual entries, not the member roster: names that were
// removed from the roster keep their row as long as entries reference
// them.
func Contributions(s Snapshot) []ContributionRow {
	index := make(map[string]int)
	rows := make([]ContributionRow, 0)

	row := func(name string) *ContributionRow {
		i, seen := index[name]
		if !seen {
			i = len(rows)
			index[name] = i
			rows = append(rows, ContributionRow{Name: name})
		}

		return &rows[i]
	}

	for _, salary := range s.Salaries {
		r := row(salary.MemberKey())
		r.Salary = r.Salary.Add(salary.Amount)
	}

	for _, expense := range s.Expenses {
		r := row(expense.MemberKey())
		r.Expenses = r.Expenses.Add(expense.Amount)
	}

	for _, investment := range s.Investments {
		r := row(investment.MemberKey())
		r.Investments = r.Investments.Add(investment.Amount)
	}

	return rows
}
