package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
	"github.com/spend-tracker/backend/internal/report"
	"github.com/spend-tracker/backend/internal/types"
	"gorm.io/gorm"
)

// RegisterDataRoutes registers the snapshot routes with the RouterGroup
// that is passed.
func RegisterDataRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/year/:year", httputil.OptionsGet)
		r.GET("/year/:year", GetYearData)
	}
	{
		r.OPTIONS("/:year/:month", httputil.OptionsGet)
		r.GET("/:year/:month", GetMonthData)
	}
}

type DataResponse struct {
	Data  *report.Snapshot `json:"data"`  // All entries of the period
	Error *string          `json:"error"` // The error, if any occurred
}

// loadSnapshot fetches all entry collections for one period. A period
// with month 0 covers the whole year.
func loadSnapshot(period types.Period) (report.Snapshot, error) {
	scoped := func(db *gorm.DB) *gorm.DB {
		db = db.Where("year = ?", period.Year)
		if !period.IsYear() {
			db = db.Where("month = ?", period.Month)
		}

		return db.Order("date ASC")
	}

	snapshot := report.Snapshot{
		Salaries:    make([]models.Salary, 0),
		Expenses:    make([]models.Expense, 0),
		Investments: make([]models.Investment, 0),
		Activities:  make([]models.Activity, 0),
	}

	if err := scoped(models.DB).Find(&snapshot.Salaries).Error; err != nil {
		return snapshot, err
	}

	if err := scoped(models.DB).Find(&snapshot.Expenses).Error; err != nil {
		return snapshot, err
	}

	if err := scoped(models.DB).Find(&snapshot.Investments).Error; err != nil {
		return snapshot, err
	}

	if err := scoped(models.DB).Find(&snapshot.Activities).Error; err != nil {
		return snapshot, err
	}

	return snapshot, nil
}

// GetMonthData returns all entries of one month
//
//	@Summary		Month snapshot
//	@Description	Returns every entry recorded for the month
//	@Tags			Data
//	@Produce		json
//	@Success		200		{object}	DataResponse
//	@Failure		400		{object}	DataResponse
//	@Failure		500		{object}	DataResponse
//	@Param			year	path		int	true	"Four digit year"
//	@Param			month	path		int	true	"Calendar month, 1-12"
//	@Router			/api/data/{year}/{month} [get]
func GetMonthData(c *gin.Context) {
	var uri URIYearMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DataResponse{Error: &s})
		return
	}

	period := types.NewPeriod(uri.Year, uri.Month)
	if err := period.Validate(); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DataResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DataResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, DataResponse{Data: &snapshot})
}

// GetYearData returns all entries of one year
//
//	@Summary		Year snapshot
//	@Description	Returns every entry recorded for the year, all months
//	@Tags			Data
//	@Produce		json
//	@Success		200		{object}	DataResponse
//	@Failure		400		{object}	DataResponse
//	@Failure		500		{object}	DataResponse
//	@Param			year	path		int	true	"Four digit year"
//	@Router			/api/data/year/{year} [get]
func GetYearData(c *gin.Context) {
	var uri URIYear
	if err := c.ShouldBindUri(&uri); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, DataResponse{Error: &s})
		return
	}

	period := types.YearPeriod(uri.Year)
	if err := period.Validate(); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DataResponse{Error: &s})
		return
	}

	snapshot, err := loadSnapshot(period)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DataResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, DataResponse{Data: &snapshot})
}
