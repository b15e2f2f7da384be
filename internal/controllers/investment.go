package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/gold"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
)

// goldPrices is the provider the valuation endpoint asks for the
// current price. Set during route registration.
var goldPrices gold.PriceProvider

// RegisterInvestmentRoutes registers the routes for investments with
// the RouterGroup that is passed.
func RegisterInvestmentRoutes(r *gin.RouterGroup, prices gold.PriceProvider) {
	goldPrices = prices

	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetInvestments)
		r.POST("", CreateInvestment)
	}
	{
		r.OPTIONS("/gold-valuation", httputil.OptionsGet)
		r.GET("/gold-valuation", GetGoldValuation)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteInvestment)
	}
}

type InvestmentEditable struct {
	Type                   string           `json:"type" example:"Stocks"`               // One of the investment types
	Amount                 decimal.Decimal  `json:"amount" example:"10000"`              // Amount invested
	Owner                  string           `json:"owner" example:"Asha"`                // Name of the member who owns the investment
	Date                   time.Time        `json:"date" example:"2024-07-05T00:00:00Z"` // Day of the investment, defaults to now
	Month                  int              `json:"month" example:"7"`                   // Calendar month, 1-12
	Year                   int              `json:"year" example:"2024"`                 // Four digit year
	ReturnPercent          *decimal.Decimal `json:"returnPercent" example:"12.5"`        // Expected yearly return in percent
	PricePerGramAtPurchase *decimal.Decimal `json:"pricePerGramAtPurchase" example:"6500"` // Gold only: purchase price per gram
	Notes                  string           `json:"notes"`                               // Free-form notes
}

func (editable InvestmentEditable) model() models.Investment {
	return models.Investment{
		Type:                   editable.Type,
		Amount:                 editable.Amount,
		Owner:                  editable.Owner,
		Date:                   editable.Date,
		Month:                  editable.Month,
		Year:                   editable.Year,
		ReturnPercent:          editable.ReturnPercent,
		PricePerGramAtPurchase: editable.PricePerGramAtPurchase,
		Notes:                  editable.Notes,
	}
}

type InvestmentResponse struct {
	Data  *models.Investment `json:"data"`  // Data for the investment
	Error *string            `json:"error"` // The error, if any occurred
}

type InvestmentListResponse struct {
	Data  []models.Investment `json:"data"`  // List of investments
	Error *string             `json:"error"` // The error, if any occurred
}

type GoldValuationResponse struct {
	Data  *gold.Valuation `json:"data"`  // Current valuation of the gold holdings
	Error *string         `json:"error"` // The error, if any occurred
}

// GetInvestments returns investments, optionally filtered by period
//
//	@Summary		List investments
//	@Description	Returns investment entries. Filter with the query parameters.
//	@Tags			Investments
//	@Produce		json
//	@Success		200		{object}	InvestmentListResponse
//	@Failure		500		{object}	InvestmentListResponse
//	@Param			year	query		int	false	"Filter by year"
//	@Param			month	query		int	false	"Filter by month"
//	@Router			/api/investments [get]
func GetInvestments(c *gin.Context) {
	var filter QueryPeriod
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, InvestmentListResponse{Error: &s})
		return
	}

	var investments []models.Investment
	err := periodScoped(models.DB, filter).Order("date ASC").Find(&investments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, InvestmentListResponse{Data: investments})
}

// CreateInvestment creates a new investment entry
//
//	@Summary		Create investment
//	@Tags			Investments
//	@Produce		json
//	@Success		201			{object}	InvestmentResponse
//	@Failure		400			{object}	InvestmentResponse
//	@Failure		500			{object}	InvestmentResponse
//	@Param			investment	body		InvestmentEditable	true	"Investment"
//	@Router			/api/investments [post]
func CreateInvestment(c *gin.Context) {
	var editable InvestmentEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &s})
		return
	}

	investment := editable.model()
	if err := models.DB.Create(&investment).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), InvestmentResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, InvestmentResponse{Data: &investment})
}

// GetGoldValuation values the gold holdings at the current price
//
//	@Summary		Gold valuation
//	@Description	Values all gold investments with a recorded purchase price
//	@Description	at the current market price per gram.
//	@Tags			Investments
//	@Produce		json
//	@Success		200	{object}	GoldValuationResponse
//	@Failure		502	{object}	GoldValuationResponse
//	@Router			/api/investments/gold-valuation [get]
func GetGoldValuation(c *gin.Context) {
	var investments []models.Investment
	err := models.DB.Where("type = ?", models.InvestmentTypeGold).Order("date ASC").Find(&investments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GoldValuationResponse{Error: &s})
		return
	}

	if goldPrices == nil {
		s := gold.ErrPriceUnavailable.Error()
		c.JSON(status(gold.ErrPriceUnavailable), GoldValuationResponse{Error: &s})
		return
	}

	price, err := goldPrices.PricePerGram(c.Request.Context())
	if err != nil {
		s := gold.ErrPriceUnavailable.Error()
		c.JSON(status(gold.ErrPriceUnavailable), GoldValuationResponse{Error: &s})
		return
	}

	valuation := gold.Value(investments, price)
	c.JSON(http.StatusOK, GoldValuationResponse{Data: &valuation})
}

// DeleteInvestment deletes an investment entry
//
//	@Summary		Delete investment
//	@Tags			Investments
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		URIID	true	"ID of the investment"
//	@Router			/api/investments/{id} [delete]
func DeleteInvestment(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var investment models.Investment
	if err := models.DB.First(&investment, "id = ?", uri.ID.String()).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&investment).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
