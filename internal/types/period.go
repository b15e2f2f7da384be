// Package types implements special types for the spend tracker.
package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMonthOutOfRange = errors.New("the month must be between 1 and 12")
	ErrYearOutOfRange  = errors.New("the year must have four digits")
)

// Period is a calendar month in a specific year. The zero month means
// the period spans the whole year.
type Period struct {
	Year  int `json:"year" example:"2024"`
	Month int `json:"month,omitempty" example:"7"`
}

// NewPeriod returns the Period for a specific month.
func NewPeriod(year, month int) Period {
	return Period{Year: year, Month: month}
}

// YearPeriod returns the Period spanning a whole year.
func YearPeriod(year int) Period {
	return Period{Year: year}
}

// PeriodOf returns the monthly Period a time occurs in, in that time's location.
func PeriodOf(t time.Time) Period {
	year, month, _ := t.Date()
	return Period{Year: year, Month: int(month)}
}

// IsYear reports whether the period spans a whole year.
func (p Period) IsYear() bool {
	return p.Month == 0
}

// String returns the period formatted as YYYY-MM, or YYYY for year periods.
func (p Period) String() string {
	if p.IsYear() {
		return fmt.Sprintf("%04d", p.Year)
	}

	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Validate checks that month and year are in their allowed ranges.
func (p Period) Validate() error {
	if p.Year < 1000 || p.Year > 9999 {
		return ErrYearOutOfRange
	}

	if !p.IsYear() && (p.Month < 1 || p.Month > 12) {
		return ErrMonthOutOfRange
	}

	return nil
}

// MonthName returns the English name for a month between 1 and 12
// and an empty string for everything else.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}

	return time.Month(month).String()
}
