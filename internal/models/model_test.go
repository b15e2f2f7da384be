package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spend-tracker/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateSetsID() {
	member := models.Member{Name: "Asha"}
	suite.Require().Nil(models.DB.Create(&member).Error)

	assert.NotEqual(suite.T(), uuid.Nil, member.ID)
	assert.False(suite.T(), member.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestTimestampsUTC() {
	salary := models.Salary{
		Person: "Asha",
		Amount: decimal.NewFromInt(50000),
		Date:   time.Date(2024, 7, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
		Month:  7,
		Year:   2024,
	}
	suite.Require().Nil(models.DB.Create(&salary).Error)

	var loaded models.Salary
	suite.Require().Nil(models.DB.First(&loaded, "id = ?", salary.ID).Error)
	assert.Equal(suite.T(), time.UTC, loaded.CreatedAt.Location())
	assert.Equal(suite.T(), time.UTC, loaded.Date.Location())
}

func (suite *TestSuiteStandard) TestMemberNameUnique() {
	suite.Require().Nil(models.DB.Create(&models.Member{Name: "Asha"}).Error)

	err := models.DB.Create(&models.Member{Name: "Asha"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrMemberNameNotUnique)
}

func (suite *TestSuiteStandard) TestResourceNotFound() {
	err := models.DB.First(&models.Member{}, "id = ?", uuid.New()).Error
	suite.Require().NotNil(err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "member")

	err = models.DB.First(&models.Salary{}, "id = ?", uuid.New()).Error
	suite.Require().NotNil(err)
	assert.Contains(suite.T(), err.Error(), "salary", "pluralized table names are prettified")
}

func (suite *TestSuiteStandard) TestClosedDBReturnsGeneralError() {
	sqlDB, _ := models.DB.DB()
	sqlDB.Close()

	err := models.DB.Create(&models.Member{Name: "Asha"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestSessionExpired() {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	assert.True(suite.T(), session.Expired())

	session.ExpiresAt = time.Now().Add(time.Minute)
	assert.False(suite.T(), session.Expired())
}

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{Email: "  Asha@Example.com ", PasswordHash: "x"}
	suite.Require().Nil(models.DB.Create(&user).Error)

	assert.Equal(suite.T(), "asha@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestFundGoalValidation() {
	err := models.DB.Create(&models.FundGoalRecord{Name: "yacht"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrInvalidFundName)

	err = models.DB.Create(&models.FundGoalRecord{
		Name:   models.FundEmergency,
		Target: decimal.NewFromInt(-1),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNegative)
}
