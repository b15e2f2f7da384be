package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
)

// RegisterActivityRoutes registers the routes for activities with
// the RouterGroup that is passed.
func RegisterActivityRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetActivities)
		r.POST("", CreateActivity)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteActivity)
	}
}

type ActivityEditable struct {
	Title  string          `json:"title" example:"Tax refund"`          // What the activity was
	Amount decimal.Decimal `json:"amount" example:"2000"`               // Amount moved
	Type   string          `json:"type" example:"Income"`               // One of the activity types
	Person string          `json:"person" example:"Asha"`               // Name of the member the activity belongs to
	Date   time.Time       `json:"date" example:"2024-07-20T00:00:00Z"` // Day of the activity, defaults to now
	Month  int             `json:"month" example:"7"`                   // Calendar month, 1-12
	Year   int             `json:"year" example:"2024"`                 // Four digit year
	Notes  string          `json:"notes"`                               // Free-form notes
}

func (editable ActivityEditable) model() models.Activity {
	return models.Activity{
		Title:  editable.Title,
		Amount: editable.Amount,
		Type:   editable.Type,
		Person: editable.Person,
		Date:   editable.Date,
		Month:  editable.Month,
		Year:   editable.Year,
		Notes:  editable.Notes,
	}
}

type ActivityResponse struct {
	Data  *models.Activity `json:"data"`  // Data for the activity
	Error *string          `json:"error"` // The error, if any occurred
}

type ActivityListResponse struct {
	Data  []models.Activity `json:"data"`  // List of activities
	Error *string           `json:"error"` // The error, if any occurred
}

// GetActivities returns activities, optionally filtered by period
//
//	@Summary		List activities
//	@Description	Returns cash activity entries. Filter with the query parameters.
//	@Tags			Activities
//	@Produce		json
//	@Success		200		{object}	ActivityListResponse
//	@Failure		500		{object}	ActivityListResponse
//	@Param			year	query		int	false	"Filter by year"
//	@Param			month	query		int	false	"Filter by month"
//	@Router			/api/activities [get]
func GetActivities(c *gin.Context) {
	var filter QueryPeriod
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ActivityListResponse{Error: &s})
		return
	}

	var activities []models.Activity
	err := periodScoped(models.DB, filter).Order("date ASC").Find(&activities).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ActivityListResponse{Data: activities})
}

// CreateActivity creates a new activity entry
//
//	@Summary		Create activity
//	@Tags			Activities
//	@Produce		json
//	@Success		201			{object}	ActivityResponse
//	@Failure		400			{object}	ActivityResponse
//	@Failure		500			{object}	ActivityResponse
//	@Param			activity	body		ActivityEditable	true	"Activity"
//	@Router			/api/activities [post]
func CreateActivity(c *gin.Context) {
	var editable ActivityEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{Error: &s})
		return
	}

	activity := editable.model()
	if err := models.DB.Create(&activity).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), ActivityResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ActivityResponse{Data: &activity})
}

// DeleteActivity deletes an activity entry
//
//	@Summary		Delete activity
//	@Tags			Activities
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		URIID	true	"ID of the activity"
//	@Router			/api/activities/{id} [delete]
func DeleteActivity(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var activity models.Activity
	if err := models.DB.First(&activity, "id = ?", uri.ID.String()).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&activity).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
