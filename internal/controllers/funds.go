package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
	"github.com/spend-tracker/backend/internal/report"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegisterFundsRoutes registers the fund goal routes with the
// RouterGroup that is passed.
func RegisterFundsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPut)
		r.GET("", GetFunds)
		r.PUT("", UpdateFunds)
	}
}

type FundsResponse struct {
	Data  *report.Funds `json:"data"`  // Both fund goals
	Error *string       `json:"error"` // The error, if any occurred
}

// loadFunds reads both fund goal rows. Missing rows come back as the
// zero goal, so the first read of a fresh database works without
// seeding.
func loadFunds(db *gorm.DB) (report.Funds, error) {
	var records []models.FundGoalRecord
	if err := db.Find(&records).Error; err != nil {
		return report.Funds{}, err
	}

	var funds report.Funds
	for _, record := range records {
		goal := report.FundGoal{
			Enabled: record.Enabled,
			Target:  record.Target,
			Current: record.Current,
		}

		switch record.Name {
		case models.FundEmergency:
			funds.Emergency = goal
		case models.FundVacation:
			funds.Vacation = goal
		}
	}

	return funds, nil
}

// saveFunds writes both fund goal rows in one transaction. Either both
// goals end up saved or neither does.
func saveFunds(db *gorm.DB, funds report.Funds) error {
	records := []models.FundGoalRecord{
		{Name: models.FundEmergency, Enabled: funds.Emergency.Enabled, Target: funds.Emergency.Target, Current: funds.Emergency.Current},
		{Name: models.FundVacation, Enabled: funds.Vacation.Enabled, Target: funds.Vacation.Target, Current: funds.Vacation.Current},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, record := range records {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				UpdateAll: true,
			}).Create(&record).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// GetFunds returns both fund goals
//
//	@Summary		Get fund goals
//	@Description	Returns the emergency and vacation fund goals
//	@Tags			Funds
//	@Produce		json
//	@Success		200	{object}	FundsResponse
//	@Failure		500	{object}	FundsResponse
//	@Router			/api/funds [get]
func GetFunds(c *gin.Context) {
	funds, err := loadFunds(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, FundsResponse{Data: &funds})
}

// UpdateFunds applies a partial update to the fund goals
//
//	@Summary		Update fund goals
//	@Description	Updates the fund goals. Goals missing from the body keep
//	@Description	their stored state.
//	@Tags			Funds
//	@Produce		json
//	@Success		200		{object}	FundsResponse
//	@Failure		400		{object}	FundsResponse
//	@Failure		500		{object}	FundsResponse
//	@Param			funds	body		report.FundsPatch	true	"Partial fund goals"
//	@Router			/api/funds [put]
func UpdateFunds(c *gin.Context) {
	var patch report.FundsPatch
	if err := httputil.BindData(c, &patch); err != nil {
		s := err.Error()
		c.JSON(status(err), FundsResponse{Error: &s})
		return
	}

	current, err := loadFunds(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FundsResponse{Error: &s})
		return
	}

	next := report.MergeFundUpdate(current, patch)
	if err := saveFunds(models.DB, next); err != nil {
		s := err.Error()
		c.JSON(status(err), FundsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, FundsResponse{Data: &next})
}
