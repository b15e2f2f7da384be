package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var twenty = decimal.NewFromInt(20)

// Insight is one advisory message derived from a Summary.
type Insight struct {
	Kind    string `json:"kind" example:"success"` // success or warning
	Message string `json:"message" example:"You saved ₹20,000 this month (40.0% of income)"`
}

const (
	InsightSuccess = "success"
	InsightWarning = "warning"
)

// insightRule pairs a condition with a message builder. Rules are
// evaluated in registration order; each produces at most one insight.
type insightRule struct {
	applies func(Summary) bool
	build   func(Summary, string) Insight
}

var insightRules = []insightRule{
	{
		applies: func(s Summary) bool { return s.Savings.IsPositive() },
		build: func(s Summary, period string) Insight {
			return Insight{
				Kind:    InsightSuccess,
				Message: fmt.Sprintf("You saved %s %s (%s%% of income)", formatAmount(s.Savings), period, s.SavingsPercent),
			}
		},
	},
	{
		applies: func(s Summary) bool { return s.Savings.IsNegative() },
		build: func(s Summary, _ string) Insight {
			return Insight{
				Kind:    InsightWarning,
				Message: fmt.Sprintf("Spending exceeded income by %s. Time to cut back.", formatAmount(s.Savings.Abs())),
			}
		},
	},
	{
		applies: func(s Summary) bool { return s.TotalInvestments.GreaterThan(s.TotalExpenses) },
		build: func(_ Summary, _ string) Insight {
			return Insight{
				Kind:    InsightSuccess,
				Message: "Investments are higher than expenses",
			}
		},
	},
	{
		applies: func(s Summary) bool {
			return percentOf(s.TotalInvestments, s.TotalIncome).GreaterThanOrEqual(twenty)
		},
		build: func(s Summary, _ string) Insight {
			ratio := percentOf(s.TotalInvestments, s.TotalIncome)
			return Insight{
				Kind:    InsightSuccess,
				Message: fmt.Sprintf("%s%% of income invested", ratio.StringFixed(1)),
			}
		},
	},
}

// Insights evaluates the rule list against a summary. The first two
// rules exclude each other (savings is either positive or negative),
// the rest can co-occur, so between zero and three insights come back.
func Insights(s Summary, yearView bool) []Insight {
	period := "this month"
	if yearView {
		period = "this year"
	}

	insights := make([]Insight, 0, len(insightRules))
	for _, rule := range insightRules {
		if rule.applies(s) {
			insights = append(insights, rule.build(s, period))
		}
	}

	return insights
}

// formatAmount renders an amount for insight messages, without decimals.
func formatAmount(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(0)
}
