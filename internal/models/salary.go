package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/types"
	"gorm.io/gorm"
)

// Salary is one salary payment for one member in one month.
type Salary struct {
	DefaultModel
	Person string          `json:"person" example:"Asha"`                        // Name of the member the salary belongs to
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"50000"` // Amount received
	Date   time.Time       `json:"date" example:"2024-07-01T00:00:00Z"`          // Day the salary was received
	Month  int             `json:"month" example:"7"`                            // Calendar month, 1-12
	Year   int             `json:"year" example:"2024"`                          // Four digit year
}

// MemberKey returns the member name the entry is joined on.
func (s Salary) MemberKey() string {
	return s.Person
}

// EntryMonth returns the calendar month the entry is recorded for.
func (s Salary) EntryMonth() int {
	return s.Month
}

func (s *Salary) BeforeSave(_ *gorm.DB) error {
	s.Person = strings.TrimSpace(s.Person)

	if s.Person == "" {
		return ErrMemberRequired
	}

	if s.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	} else {
		s.Date = s.Date.In(time.UTC)
	}

	return types.NewPeriod(s.Year, s.Month).Validate()
}
