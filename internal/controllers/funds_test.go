package controllers_test

import (
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) getFunds() controllers.FundsResponse {
	r := suite.request(http.MethodGet, "/api/funds", nil, http.StatusOK)

	var response controllers.FundsResponse
	suite.decodeResponse(&r, &response)

	return response
}

func (suite *TestSuiteStandard) TestFundsDefault() {
	funds := suite.getFunds()

	assert.False(suite.T(), funds.Data.Emergency.Enabled)
	assert.False(suite.T(), funds.Data.Vacation.Enabled)
	assert.True(suite.T(), funds.Data.Emergency.Target.IsZero())
}

func (suite *TestSuiteStandard) TestUpdateFunds() {
	r := suite.request(http.MethodPut, "/api/funds", map[string]any{
		"emergency": map[string]any{"enabled": true, "target": "100000", "current": "25000"},
		"vacation":  map[string]any{"enabled": false, "target": "50000", "current": "10000"},
	}, http.StatusOK)

	var response controllers.FundsResponse
	suite.decodeResponse(&r, &response)
	assert.True(suite.T(), response.Data.Emergency.Enabled)
	assert.True(suite.T(), response.Data.Vacation.Target.Equal(decimal.NewFromInt(50000)))
}

func (suite *TestSuiteStandard) TestUpdateFundsPartial() {
	suite.request(http.MethodPut, "/api/funds", map[string]any{
		"vacation": map[string]any{"enabled": true, "target": "50000", "current": "10000"},
	}, http.StatusOK)

	// An update that only carries the emergency goal keeps the vacation goal
	suite.request(http.MethodPut, "/api/funds", map[string]any{
		"emergency": map[string]any{"enabled": true, "target": "100000", "current": "25000"},
	}, http.StatusOK)

	funds := suite.getFunds()
	assert.True(suite.T(), funds.Data.Vacation.Enabled)
	assert.True(suite.T(), funds.Data.Vacation.Current.Equal(decimal.NewFromInt(10000)))
	assert.True(suite.T(), funds.Data.Emergency.Enabled)
}

func (suite *TestSuiteStandard) TestUpdateFundsNegativeAmount() {
	suite.request(http.MethodPut, "/api/funds", map[string]any{
		"emergency": map[string]any{"enabled": true, "target": "-1", "current": "0"},
	}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateFundsInvalidBody() {
	suite.request(http.MethodPut, "/api/funds", `{ "emergency": "yes" }`, http.StatusBadRequest)
}
