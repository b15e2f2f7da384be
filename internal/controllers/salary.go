package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterSalaryRoutes registers the routes for salaries with
// the RouterGroup that is passed.
func RegisterSalaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetSalaries)
		r.POST("", CreateSalary)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteSalary)
	}
}

type SalaryEditable struct {
	Person string          `json:"person" example:"Asha"`               // Name of the member the salary belongs to
	Amount decimal.Decimal `json:"amount" example:"50000"`              // Amount received
	Date   time.Time       `json:"date" example:"2024-07-01T00:00:00Z"` // Day the salary was received, defaults to now
	Month  int             `json:"month" example:"7"`                   // Calendar month, 1-12
	Year   int             `json:"year" example:"2024"`                 // Four digit year
}

func (editable SalaryEditable) model() models.Salary {
	return models.Salary{
		Person: editable.Person,
		Amount: editable.Amount,
		Date:   editable.Date,
		Month:  editable.Month,
		Year:   editable.Year,
	}
}

type SalaryResponse struct {
	Data  *models.Salary `json:"data"`  // Data for the salary
	Error *string        `json:"error"` // The error, if any occurred
}

type SalaryListResponse struct {
	Data  []models.Salary `json:"data"`  // List of salaries
	Error *string         `json:"error"` // The error, if any occurred
}

// QueryPeriod are the optional period filters for entry list endpoints.
type QueryPeriod struct {
	Year  int `form:"year" filterField:"false"`  // Four digit year
	Month int `form:"month" filterField:"false"` // Calendar month, 1-12
}

// periodScoped narrows a query to the period filters that are set.
func periodScoped(db *gorm.DB, filter QueryPeriod) *gorm.DB {
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.Month != 0 {
		db = db.Where("month = ?", filter.Month)
	}

	return db
}

// GetSalaries returns salaries, optionally filtered by period
//
//	@Summary		List salaries
//	@Description	Returns salary entries. Filter with the query parameters.
//	@Tags			Salaries
//	@Produce		json
//	@Success		200		{object}	SalaryListResponse
//	@Failure		500		{object}	SalaryListResponse
//	@Param			year	query		int	false	"Filter by year"
//	@Param			month	query		int	false	"Filter by month"
//	@Router			/api/salaries [get]
func GetSalaries(c *gin.Context) {
	var filter QueryPeriod
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, SalaryListResponse{Error: &s})
		return
	}

	var salaries []models.Salary
	err := periodScoped(models.DB, filter).Order("date ASC").Find(&salaries).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SalaryListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SalaryListResponse{Data: salaries})
}

// CreateSalary creates a new salary entry
//
//	@Summary		Create salary
//	@Description	Records a salary payment for a member
//	@Tags			Salaries
//	@Produce		json
//	@Success		201		{object}	SalaryResponse
//	@Failure		400		{object}	SalaryResponse
//	@Failure		500		{object}	SalaryResponse
//	@Param			salary	body		SalaryEditable	true	"Salary"
//	@Router			/api/salaries [post]
func CreateSalary(c *gin.Context) {
	var editable SalaryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), SalaryResponse{Error: &s})
		return
	}

	salary := editable.model()
	if err := models.DB.Create(&salary).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), SalaryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, SalaryResponse{Data: &salary})
}

// DeleteSalary deletes a salary entry
//
//	@Summary		Delete salary
//	@Tags			Salaries
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		URIID	true	"ID of the salary"
//	@Router			/api/salaries/{id} [delete]
func DeleteSalary(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var salary models.Salary
	if err := models.DB.First(&salary, "id = ?", uri.ID.String()).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&salary).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
