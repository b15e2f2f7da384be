package controllers_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestSalary(c controllers.SalaryEditable, expectedStatus ...int) controllers.SalaryResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/api/salaries", c, expectedStatus...)

	var response controllers.SalaryResponse
	suite.decodeResponse(&r, &response)

	return response
}

func (suite *TestSuiteStandard) createTestExpense(c controllers.ExpenseEditable, expectedStatus ...int) controllers.ExpenseResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/api/expenses", c, expectedStatus...)

	var response controllers.ExpenseResponse
	suite.decodeResponse(&r, &response)

	return response
}

func (suite *TestSuiteStandard) createTestInvestment(c controllers.InvestmentEditable, expectedStatus ...int) controllers.InvestmentResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/api/investments", c, expectedStatus...)

	var response controllers.InvestmentResponse
	suite.decodeResponse(&r, &response)

	return response
}

func (suite *TestSuiteStandard) createTestActivity(c controllers.ActivityEditable, expectedStatus ...int) controllers.ActivityResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/api/activities", c, expectedStatus...)

	var response controllers.ActivityResponse
	suite.decodeResponse(&r, &response)

	return response
}

func (suite *TestSuiteStandard) TestCreateSalary() {
	response := suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  7,
		Year:   2024,
	})

	assert.Equal(suite.T(), "Asha", response.Data.Person)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(50000)))
	assert.False(suite.T(), response.Data.Date.IsZero(), "date must default to now")
}

func (suite *TestSuiteStandard) TestCreateSalaryNegativeAmount() {
	suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(-1),
		Month:  7,
		Year:   2024,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateSalaryWithoutPerson() {
	suite.createTestSalary(controllers.SalaryEditable{
		Amount: decimal.NewFromInt(50000),
		Month:  7,
		Year:   2024,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateSalaryInvalidPeriod() {
	suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  13,
		Year:   2024,
	}, http.StatusBadRequest)

	suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  7,
		Year:   24,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSalariesFilter() {
	for _, month := range []int{1, 2, 2} {
		suite.createTestSalary(controllers.SalaryEditable{
			Person: "Asha",
			Amount: decimal.NewFromInt(1000),
			Month:  month,
			Year:   2024,
		})
	}

	r := suite.request(http.MethodGet, "/api/salaries?year=2024&month=2", nil, http.StatusOK)

	var list controllers.SalaryListResponse
	suite.decodeResponse(&r, &list)
	assert.Len(suite.T(), list.Data, 2)
}

func (suite *TestSuiteStandard) TestDeleteSalary() {
	response := suite.createTestSalary(controllers.SalaryEditable{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Month:  7,
		Year:   2024,
	})

	suite.request(http.MethodDelete, "/api/salaries/"+response.Data.ID.String(), nil, http.StatusNoContent)
	suite.request(http.MethodDelete, "/api/salaries/"+uuid.New().String(), nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateExpense() {
	response := suite.createTestExpense(controllers.ExpenseEditable{
		Title:    "Groceries",
		Amount:   decimal.NewFromInt(1200),
		Category: "Food",
		PaidBy:   "Asha",
		Month:    7,
		Year:     2024,
	})

	assert.Equal(suite.T(), "Food", response.Data.Category)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidCategory() {
	suite.createTestExpense(controllers.ExpenseEditable{
		Title:    "Groceries",
		Amount:   decimal.NewFromInt(1200),
		Category: "Gambling",
		PaidBy:   "Asha",
		Month:    7,
		Year:     2024,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateExpenseWithoutTitle() {
	suite.createTestExpense(controllers.ExpenseEditable{
		Amount:   decimal.NewFromInt(1200),
		Category: "Food",
		PaidBy:   "Asha",
		Month:    7,
		Year:     2024,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateInvestment() {
	response := suite.createTestInvestment(controllers.InvestmentEditable{
		Type:   "Stocks",
		Amount: decimal.NewFromInt(10000),
		Owner:  "Ravi",
		Month:  7,
		Year:   2024,
	})

	assert.Equal(suite.T(), "Stocks", response.Data.Type)
	assert.Nil(suite.T(), response.Data.PricePerGramAtPurchase)
}

func (suite *TestSuiteStandard) TestCreateInvestmentInvalidType() {
	suite.createTestInvestment(controllers.InvestmentEditable{
		Type:   "Beanie Babies",
		Amount: decimal.NewFromInt(10000),
		Owner:  "Ravi",
		Month:  7,
		Year:   2024,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateActivity() {
	response := suite.createTestActivity(controllers.ActivityEditable{
		Title:  "Tax refund",
		Amount: decimal.NewFromInt(2000),
		Type:   "Income",
		Person: "Asha",
		Month:  7,
		Year:   2024,
	})

	assert.True(suite.T(), response.Data.IsCredit())
}

func (suite *TestSuiteStandard) TestCreateActivityInvalidType() {
	suite.createTestActivity(controllers.ActivityEditable{
		Title:  "Tax refund",
		Amount: decimal.NewFromInt(2000),
		Type:   "Windfall",
		Person: "Asha",
		Month:  7,
		Year:   2024,
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEntriesInvalidBody() {
	for _, path := range []string{"/api/salaries", "/api/expenses", "/api/investments", "/api/activities"} {
		suite.request(http.MethodPost, path, `{ "amount": "not a number" }`, http.StatusBadRequest)
	}
}
