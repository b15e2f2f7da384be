package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/stretchr/testify/assert"
)

// seedPeriod creates one entry of every kind for July 2024.
func (suite *TestSuiteStandard) seedPeriod() {
	suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  7,
		Year:   2024,
	})

	suite.createTestExpense(controllers.ExpenseEditable{
		Title:    "Groceries",
		Amount:   decimal.NewFromInt(20000),
		Category: "Food",
		PaidBy:   "Asha",
		Month:    7,
		Year:     2024,
	})

	suite.createTestInvestment(controllers.InvestmentEditable{
		Type:   "Stocks",
		Amount: decimal.NewFromInt(10000),
		Owner:  "Ravi",
		Month:  7,
		Year:   2024,
	})

	suite.createTestActivity(controllers.ActivityEditable{
		Title:  "Tax refund",
		Amount: decimal.NewFromInt(2000),
		Type:   "Income",
		Person: "Asha",
		Month:  7,
		Year:   2024,
	})
}

func (suite *TestSuiteStandard) TestMonthData() {
	suite.seedPeriod()

	r := suite.request(http.MethodGet, "/api/data/2024/7", nil, http.StatusOK)

	var response controllers.DataResponse
	suite.decodeResponse(&r, &response)
	assert.Len(suite.T(), response.Data.Salaries, 1)
	assert.Len(suite.T(), response.Data.Expenses, 1)
	assert.Len(suite.T(), response.Data.Investments, 1)
	assert.Len(suite.T(), response.Data.Activities, 1)
}

func (suite *TestSuiteStandard) TestMonthDataEmpty() {
	suite.seedPeriod()

	r := suite.request(http.MethodGet, "/api/data/2024/1", nil, http.StatusOK)

	var response controllers.DataResponse
	suite.decodeResponse(&r, &response)
	assert.NotNil(suite.T(), response.Data.Salaries, "collections must be [] and not null")
	assert.Len(suite.T(), response.Data.Salaries, 0)
	assert.Len(suite.T(), response.Data.Expenses, 0)
}

func (suite *TestSuiteStandard) TestMonthDataInvalidPeriod() {
	suite.request(http.MethodGet, "/api/data/2024/13", nil, http.StatusBadRequest)
	suite.request(http.MethodGet, "/api/data/24/7", nil, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestYearData() {
	suite.seedPeriod()

	suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  8,
		Year:   2024,
	})

	// A different year stays out of the snapshot
	suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  8,
		Year:   2023,
	})

	r := suite.request(http.MethodGet, "/api/data/year/2024", nil, http.StatusOK)

	var response controllers.DataResponse
	suite.decodeResponse(&r, &response)
	assert.Len(suite.T(), response.Data.Salaries, 2)
}
