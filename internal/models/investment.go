package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// InvestmentTypes is the closed set of types an investment can have.
var InvestmentTypes = []string{"Mutual Fund", "FD", "Stocks", "Gold", "Crypto", "Other"}

// InvestmentTypeGold is the type that carries a purchase price per gram
// for the valuation endpoint.
const InvestmentTypeGold = "Gold"

// Investment is money moved into an investment by one member in one month.
type Investment struct {
	DefaultModel
	Type                   string           `json:"type" example:"Stocks"`                               // One of InvestmentTypes
	Amount                 decimal.Decimal  `json:"amount" gorm:"type:DECIMAL(20,8)" example:"10000"`    // Amount invested
	Owner                  string           `json:"owner" example:"Asha"`                                // Name of the member who owns the investment
	Date                   time.Time        `json:"date" example:"2024-07-05T00:00:00Z"`                 // Day of the investment
	Month                  int              `json:"month" example:"7"`                                   // Calendar month, 1-12
	Year                   int              `json:"year" example:"2024"`                                 // Four digit year
	ReturnPercent          *decimal.Decimal `json:"returnPercent,omitempty" gorm:"type:DECIMAL(20,8)"`   // Expected yearly return in percent
	PricePerGramAtPurchase *decimal.Decimal `json:"pricePerGramAtPurchase,omitempty" gorm:"type:DECIMAL(20,8)"` // Gold only: purchase price per gram
	Notes                  string           `json:"notes,omitempty"`                                     // Free-form notes
}

// MemberKey returns the member name the entry is joined on.
func (i Investment) MemberKey() string {
	return i.Owner
}

// EntryMonth returns the calendar month the entry is recorded for.
func (i Investment) EntryMonth() int {
	return i.Month
}

func (i *Investment) BeforeSave(_ *gorm.DB) error {
	i.Owner = strings.TrimSpace(i.Owner)
	i.Notes = strings.TrimSpace(i.Notes)

	if i.Owner == "" {
		return ErrMemberRequired
	}

	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !slices.Contains(InvestmentTypes, i.Type) {
		return ErrInvalidInvestmentType
	}

	if i.Date.IsZero() {
		i.Date = time.Now().In(time.UTC)
	} else {
		i.Date = i.Date.In(time.UTC)
	}

	return types.NewPeriod(i.Year, i.Month).Validate()
}
