package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteExpense)
	}
}

type ExpenseEditable struct {
	Title    string          `json:"title" example:"Groceries"`           // What the money was spent on
	Amount   decimal.Decimal `json:"amount" example:"1200"`               // Amount spent
	Category string          `json:"category" example:"Food"`             // One of the expense categories
	PaidBy   string          `json:"paidBy" example:"Asha"`               // Name of the member who paid
	Date     time.Time       `json:"date" example:"2024-07-13T00:00:00Z"` // Day of the expense, defaults to now
	Month    int             `json:"month" example:"7"`                   // Calendar month, 1-12
	Year     int             `json:"year" example:"2024"`                 // Four digit year
	Notes    string          `json:"notes" example:"Weekly shopping"`     // Free-form notes
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Title:    editable.Title,
		Amount:   editable.Amount,
		Category: editable.Category,
		PaidBy:   editable.PaidBy,
		Date:     editable.Date,
		Month:    editable.Month,
		Year:     editable.Year,
		Notes:    editable.Notes,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`  // Data for the expense
	Error *string         `json:"error"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`  // List of expenses
	Error *string          `json:"error"` // The error, if any occurred
}

// GetExpenses returns expenses, optionally filtered by period
//
//	@Summary		List expenses
//	@Description	Returns expense entries. Filter with the query parameters.
//	@Tags			Expenses
//	@Produce		json
//	@Success		200		{object}	ExpenseListResponse
//	@Failure		500		{object}	ExpenseListResponse
//	@Param			year	query		int	false	"Filter by year"
//	@Param			month	query		int	false	"Filter by month"
//	@Router			/api/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter QueryPeriod
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{Error: &s})
		return
	}

	var expenses []models.Expense
	err := periodScoped(models.DB, filter).Order("date ASC").Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// CreateExpense creates a new expense entry
//
//	@Summary		Create expense
//	@Tags			Expenses
//	@Produce		json
//	@Success		201		{object}	ExpenseResponse
//	@Failure		400		{object}	ExpenseResponse
//	@Failure		500		{object}	ExpenseResponse
//	@Param			expense	body		ExpenseEditable	true	"Expense"
//	@Router			/api/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	expense := editable.model()
	if err := models.DB.Create(&expense).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// DeleteExpense deletes an expense entry
//
//	@Summary		Delete expense
//	@Tags			Expenses
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		URIID	true	"ID of the expense"
//	@Router			/api/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var expense models.Expense
	if err := models.DB.First(&expense, "id = ?", uri.ID.String()).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
