package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
	"github.com/spend-tracker/backend/internal/report"
	"github.com/spend-tracker/backend/internal/types"
)

// RegisterDashboardRoutes registers the dashboard route with the
// RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetDashboard)
	}
}

// QueryDashboard are the query parameters selecting the dashboard view.
type QueryDashboard struct {
	Year   int    `form:"year" example:"2024"`    // Four digit year, defaults to the current year
	Month  int    `form:"month" example:"7"`      // Calendar month, 0 or absent for the year view
	Scope  string `form:"scope" example:"personal"` // "household" (default) or "personal"
	Member string `form:"member" example:"Asha"`  // Member name for the personal scope
}

// FundsStatus is the fund arithmetic shown next to the totals.
type FundsStatus struct {
	Enabled           bool            `json:"enabled" example:"true"`                 // Whether any goal is enabled
	Reserved          decimal.Decimal `json:"reserved" example:"25000"`               // Sum of the enabled goals
	TotalAvailable    decimal.Decimal `json:"totalAvailable" example:"-5000"`         // Savings minus reserved, may be negative
	EmergencyProgress decimal.Decimal `json:"emergencyProgress" example:"25"`         // Emergency goal progress in percent, capped at 100
	VacationProgress  decimal.Decimal `json:"vacationProgress" example:"0"`           // Vacation goal progress in percent, capped at 100
}

type Dashboard struct {
	Period               types.Period             `json:"period"`                         // The period the dashboard was computed for
	Scope                types.ViewScope          `json:"scope" example:"household"`      // The scope the dashboard was computed for
	Member               string                   `json:"member,omitempty" example:""`    // The member, personal scope only
	Summary              report.Summary           `json:"summary"`                        // Headline totals
	ExpensesByCategory   report.Breakdown         `json:"expensesByCategory"`             // Expenses grouped by category
	InvestmentsByType    report.Breakdown         `json:"investmentsByType"`              // Investments grouped by type
	SalariesByMember     report.Breakdown         `json:"salariesByMember"`               // Salaries grouped by member
	ExpensesByMember     report.Breakdown         `json:"expensesByMember"`               // Expenses grouped by member
	InvestmentsByMember  report.Breakdown         `json:"investmentsByMember"`            // Investments grouped by member
	Contributions        []report.ContributionRow `json:"contributions"`                  // Per-member rollup across all collections
	Insights             []report.Insight         `json:"insights"`                       // Advisory messages
	MonthSeries          []report.MonthRow        `json:"monthSeries,omitempty"`          // Twelve month rollup, year view only
	Funds                FundsStatus              `json:"funds"`                          // Fund goal arithmetic against the savings
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`  // The computed dashboard
	Error *string    `json:"error"` // The error, if any occurred
}

// GetDashboard computes the dashboard for one period and scope
//
//	@Summary		Dashboard
//	@Description	Computes totals, breakdowns, contributions, insights and
//	@Description	fund status for the selected period. Without a month the
//	@Description	year view is returned, including the month series.
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200		{object}	DashboardResponse
//	@Failure		400		{object}	DashboardResponse
//	@Failure		500		{object}	DashboardResponse
//	@Param			year	query		int		true	"Four digit year"
//	@Param			month	query		int		false	"Calendar month, omit for the year view"
//	@Param			scope	query		string	false	"household or personal"
//	@Param			member	query		string	false	"Member name for the personal scope"
//	@Router			/api/dashboard [get]
func GetDashboard(c *gin.Context) {
	var query QueryDashboard
	if err := c.ShouldBindQuery(&query); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &s})
		return
	}

	period := types.NewPeriod(query.Year, query.Month)
	if err := period.Validate(); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &s})
		return
	}

	scope := types.ViewScope(query.Scope)
	if err := scope.Validate(); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	snapshot = snapshot.FilterScope(scope, query.Member)
	summary := report.Summarize(snapshot)

	funds, err := loadFunds(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	dashboard := Dashboard{
		Period:              period,
		Scope:               scope,
		Member:              query.Member,
		Summary:             summary,
		ExpensesByCategory:  report.ExpensesByCategory(snapshot),
		InvestmentsByType:   report.InvestmentsByType(snapshot),
		SalariesByMember:    report.SalariesByMember(snapshot),
		ExpensesByMember:    report.ExpensesByMember(snapshot),
		InvestmentsByMember: report.InvestmentsByMember(snapshot),
		Contributions:       report.Contributions(snapshot),
		Insights:            report.Insights(summary, period.IsYear()),
		Funds: FundsStatus{
			Enabled:           funds.Enabled(),
			Reserved:          funds.Reserved(),
			TotalAvailable:    funds.TotalAvailable(summary.Savings),
			EmergencyProgress: funds.Emergency.Progress(),
			VacationProgress:  funds.Vacation.Progress(),
		},
	}

	if period.IsYear() {
		dashboard.MonthSeries = report.MonthSeries(snapshot)
	}

	if scope != types.ScopePersonal {
		dashboard.Scope = types.ScopeHousehold
		dashboard.Member = ""
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &dashboard})
}
