package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestGoldValuation() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{ "pricePerGram": "7100" }`))
	}))
	defer upstream.Close()

	os.Setenv("GOLD_PRICE_URL", upstream.URL)
	defer os.Unsetenv("GOLD_PRICE_URL")

	price := decimal.NewFromInt(6500)
	suite.createTestInvestment(controllers.InvestmentEditable{
		Type:                   "Gold",
		Amount:                 decimal.NewFromInt(65000),
		Owner:                  "Asha",
		Month:                  7,
		Year:                   2024,
		PricePerGramAtPurchase: &price,
	})

	// Gold without a purchase price cannot be valued and is skipped
	suite.createTestInvestment(controllers.InvestmentEditable{
		Type:   "Gold",
		Amount: decimal.NewFromInt(5000),
		Owner:  "Ravi",
		Month:  7,
		Year:   2024,
	})

	r := suite.request(http.MethodGet, "/api/investments/gold-valuation", nil, http.StatusOK)

	var response controllers.GoldValuationResponse
	suite.decodeResponse(&r, &response)
	assert.Len(suite.T(), response.Data.Items, 1)
	assert.True(suite.T(), response.Data.Items[0].Grams.Equal(decimal.NewFromInt(10)))
	assert.True(suite.T(), response.Data.TotalCurrentValue.Equal(decimal.NewFromInt(71000)))
}

func (suite *TestSuiteStandard) TestGoldValuationUpstreamDown() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	os.Setenv("GOLD_PRICE_URL", upstream.URL)
	defer os.Unsetenv("GOLD_PRICE_URL")

	suite.request(http.MethodGet, "/api/investments/gold-valuation", nil, http.StatusBadGateway)
}

func (suite *TestSuiteStandard) TestGoldValuationUnconfigured() {
	os.Unsetenv("GOLD_PRICE_URL")

	suite.request(http.MethodGet, "/api/investments/gold-valuation", nil, http.StatusBadGateway)
}
