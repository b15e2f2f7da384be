package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ExpenseCategories is the closed set of categories an expense can have.
var ExpenseCategories = []string{"Food", "Rent", "Travel", "Shopping", "Bills", "Medical", "Other"}

// Expense is money spent by one member in one month.
type Expense struct {
	DefaultModel
	Title    string          `json:"title" example:"Groceries"`                         // What the money was spent on
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1200"`   // Amount spent
	Category string          `json:"category" example:"Food"`                           // One of ExpenseCategories
	PaidBy   string          `json:"paidBy" example:"Asha"`                             // Name of the member who paid
	Date     time.Time       `json:"date" example:"2024-07-13T00:00:00Z"`               // Day of the expense
	Month    int             `json:"month" example:"7"`                                 // Calendar month, 1-12
	Year     int             `json:"year" example:"2024"`                               // Four digit year
	Notes    string          `json:"notes,omitempty" example:"Weekly shopping"`         // Free-form notes
}

// MemberKey returns the member name the entry is joined on.
func (e Expense) MemberKey() string {
	return e.PaidBy
}

// EntryMonth returns the calendar month the entry is recorded for.
func (e Expense) EntryMonth() int {
	return e.Month
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.PaidBy = strings.TrimSpace(e.PaidBy)
	e.Notes = strings.TrimSpace(e.Notes)

	if e.Title == "" {
		return ErrTitleRequired
	}

	if e.PaidBy == "" {
		return ErrMemberRequired
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !slices.Contains(ExpenseCategories, e.Category) {
		return ErrInvalidExpenseCategory
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return types.NewPeriod(e.Year, e.Month).Validate()
}
