package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/spend-tracker/backend/internal/report"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) getDashboard(url string) controllers.Dashboard {
	r := suite.request(http.MethodGet, url, nil, http.StatusOK)

	var response controllers.DashboardResponse
	suite.decodeResponse(&r, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestDashboardMonth() {
	suite.seedPeriod()

	dashboard := suite.getDashboard("/api/dashboard?year=2024&month=7")

	assert.True(suite.T(), dashboard.Summary.TotalIncome.Equal(decimal.NewFromInt(52000)))
	assert.True(suite.T(), dashboard.Summary.TotalSpending.Equal(decimal.NewFromInt(30000)))
	assert.True(suite.T(), dashboard.Summary.Savings.Equal(decimal.NewFromInt(22000)))
	assert.Nil(suite.T(), dashboard.MonthSeries, "the month view has no month series")
}

func (suite *TestSuiteStandard) TestDashboardYear() {
	suite.seedPeriod()

	dashboard := suite.getDashboard("/api/dashboard?year=2024")

	assert.Len(suite.T(), dashboard.MonthSeries, 12, "the year view has exactly twelve month rows")
	assert.True(suite.T(), dashboard.MonthSeries[6].Income.Equal(decimal.NewFromInt(52000)), "July carries the seeded income")
	assert.True(suite.T(), dashboard.MonthSeries[0].Income.IsZero(), "months without entries are zero-filled")
}

func (suite *TestSuiteStandard) TestDashboardPersonalScope() {
	suite.seedPeriod()

	dashboard := suite.getDashboard("/api/dashboard?year=2024&month=7&scope=personal&member=Asha")

	// Ravi's investment is filtered out
	assert.True(suite.T(), dashboard.Summary.TotalInvestments.IsZero())
	assert.True(suite.T(), dashboard.Summary.TotalIncome.Equal(decimal.NewFromInt(52000)))
}

func (suite *TestSuiteStandard) TestDashboardHouseholdIgnoresMember() {
	suite.seedPeriod()

	dashboard := suite.getDashboard("/api/dashboard?year=2024&month=7&member=Asha")

	assert.True(suite.T(), dashboard.Summary.TotalInvestments.Equal(decimal.NewFromInt(10000)))
	assert.Empty(suite.T(), dashboard.Member)
}

func (suite *TestSuiteStandard) TestDashboardContributions() {
	suite.seedPeriod()

	dashboard := suite.getDashboard("/api/dashboard?year=2024&month=7")

	names := make([]string, 0, len(dashboard.Contributions))
	for _, row := range dashboard.Contributions {
		names = append(names, row.Name)
	}

	assert.Equal(suite.T(), []string{"Asha", "Ravi"}, names)
}

func (suite *TestSuiteStandard) TestDashboardInsights() {
	suite.seedPeriod()

	dashboard := suite.getDashboard("/api/dashboard?year=2024&month=7")

	// Positive savings produces the success insight first
	assert.NotEmpty(suite.T(), dashboard.Insights)
	assert.Equal(suite.T(), report.InsightSuccess, dashboard.Insights[0].Kind)
	assert.Contains(suite.T(), dashboard.Insights[0].Message, "this month")
}

func (suite *TestSuiteStandard) TestDashboardFundsStatus() {
	suite.seedPeriod()

	suite.request(http.MethodPut, "/api/funds", map[string]any{
		"emergency": map[string]any{"enabled": true, "target": "100000", "current": "25000"},
	}, http.StatusOK)

	dashboard := suite.getDashboard("/api/dashboard?year=2024&month=7")

	assert.True(suite.T(), dashboard.Funds.Enabled)
	assert.True(suite.T(), dashboard.Funds.Reserved.Equal(decimal.NewFromInt(25000)))

	// 22000 savings minus 25000 reserved
	assert.True(suite.T(), dashboard.Funds.TotalAvailable.Equal(decimal.NewFromInt(-3000)))
	assert.True(suite.T(), dashboard.Funds.EmergencyProgress.Equal(decimal.NewFromInt(25)))
}

func (suite *TestSuiteStandard) TestDashboardInvalidQuery() {
	suite.request(http.MethodGet, "/api/dashboard?year=2024&month=13", nil, http.StatusBadRequest)
	suite.request(http.MethodGet, "/api/dashboard?year=2024&scope=team", nil, http.StatusBadRequest)
	suite.request(http.MethodGet, "/api/dashboard?year=notanumber", nil, http.StatusBadRequest)
}
