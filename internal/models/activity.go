package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ActivityTypes is the closed set of types a cash activity can have.
//
// Income and Gift are credits, Loan is a debit. Transfer and Other are
// neutral and stay out of all income and spending totals.
var ActivityTypes = []string{"Income", "Gift", "Loan", "Transfer", "Other"}

const (
	ActivityTypeIncome   = "Income"
	ActivityTypeGift     = "Gift"
	ActivityTypeLoan     = "Loan"
	ActivityTypeTransfer = "Transfer"
	ActivityTypeOther    = "Other"
)

// Activity is a miscellaneous cash movement for one member in one month.
type Activity struct {
	DefaultModel
	Title  string          `json:"title" example:"Tax refund"`                        // What the activity was
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"2000"`   // Amount moved
	Type   string          `json:"type" example:"Income"`                             // One of ActivityTypes
	Person string          `json:"person" example:"Asha"`                             // Name of the member the activity belongs to
	Date   time.Time       `json:"date" example:"2024-07-20T00:00:00Z"`               // Day of the activity
	Month  int             `json:"month" example:"7"`                                 // Calendar month, 1-12
	Year   int             `json:"year" example:"2024"`                               // Four digit year
	Notes  string          `json:"notes,omitempty"`                                   // Free-form notes
}

// MemberKey returns the member name the entry is joined on.
func (a Activity) MemberKey() string {
	return a.Person
}

// EntryMonth returns the calendar month the entry is recorded for.
func (a Activity) EntryMonth() int {
	return a.Month
}

// IsCredit reports whether the activity increases disposable income.
func (a Activity) IsCredit() bool {
	return a.Type == ActivityTypeIncome || a.Type == ActivityTypeGift
}

// IsDebit reports whether the activity reduces disposable income.
func (a Activity) IsDebit() bool {
	return a.Type == ActivityTypeLoan
}

func (a *Activity) BeforeSave(_ *gorm.DB) error {
	a.Title = strings.TrimSpace(a.Title)
	a.Person = strings.TrimSpace(a.Person)
	a.Notes = strings.TrimSpace(a.Notes)

	if a.Title == "" {
		return ErrTitleRequired
	}

	if a.Person == "" {
		return ErrMemberRequired
	}

	if a.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !slices.Contains(ActivityTypes, a.Type) {
		return ErrInvalidActivityType
	}

	if a.Date.IsZero() {
		a.Date = time.Now().In(time.UTC)
	} else {
		a.Date = a.Date.In(time.UTC)
	}

	return types.NewPeriod(a.Year, a.Month).Validate()
}
