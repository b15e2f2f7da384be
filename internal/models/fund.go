package models

import (
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// FundNames are the two named fund goals the tracker knows about.
var FundNames = []string{FundEmergency, FundVacation}

const (
	FundEmergency = "emergency"
	FundVacation  = "vacation"
)

// FundGoalRecord is the persisted state of one named fund goal.
// Both goals are fetched as a unit and replaced as a unit.
type FundGoalRecord struct {
	Name    string          `json:"-" gorm:"primaryKey"`                               // emergency or vacation
	Enabled bool            `json:"enabled" example:"true"`                            // Whether the goal counts toward the reservation
	Target  decimal.Decimal `json:"target" gorm:"type:DECIMAL(20,8)" example:"100000"` // Target amount for the goal
	Current decimal.Decimal `json:"current" gorm:"type:DECIMAL(20,8)" example:"25000"` // Amount currently reserved
	Timestamps
}

func (f *FundGoalRecord) BeforeSave(_ *gorm.DB) error {
	if !slices.Contains(FundNames, f.Name) {
		return ErrInvalidFundName
	}

	if f.Target.IsNegative() || f.Current.IsNegative() {
		return ErrAmountNegative
	}

	return nil
}
