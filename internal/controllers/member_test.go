package controllers_test

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) createTestMember(name string, expectedStatus ...int) controllers.MemberResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := suite.request(http.MethodPost, "/api/members", controllers.MemberEditable{Name: name}, expectedStatus...)

	var response controllers.MemberResponse
	suite.decodeResponse(&r, &response)

	return response
}

func (suite *TestSuiteStandard) TestMembersEmpty() {
	r := suite.request(http.MethodGet, "/api/members", nil, http.StatusOK)

	var response controllers.MemberListResponse
	suite.decodeResponse(&r, &response)
	assert.NotNil(suite.T(), response.Data, "list must be [] and not null")
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCreateMember() {
	response := suite.createTestMember("Asha")
	assert.Equal(suite.T(), "Asha", response.Data.Name)

	r := suite.request(http.MethodGet, "/api/members", nil, http.StatusOK)

	var list controllers.MemberListResponse
	suite.decodeResponse(&r, &list)
	assert.Len(suite.T(), list.Data, 1)
}

func (suite *TestSuiteStandard) TestCreateMemberTrimsName() {
	response := suite.createTestMember("  Ravi  ")
	assert.Equal(suite.T(), "Ravi", response.Data.Name)
}

func (suite *TestSuiteStandard) TestCreateMemberEmptyName() {
	suite.createTestMember("   ", http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateMemberDuplicateName() {
	suite.createTestMember("Asha")
	suite.createTestMember("Asha", http.StatusConflict)
}

func (suite *TestSuiteStandard) TestDeleteMember() {
	response := suite.createTestMember("Asha")

	suite.request(http.MethodDelete, "/api/members/"+response.Data.ID.String(), nil, http.StatusNoContent)

	r := suite.request(http.MethodGet, "/api/members", nil, http.StatusOK)

	var list controllers.MemberListResponse
	suite.decodeResponse(&r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestDeleteMemberNotFound() {
	suite.request(http.MethodDelete, "/api/members/"+uuid.New().String(), nil, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteMemberInvalidUUID() {
	suite.request(http.MethodDelete, "/api/members/NotAUUID", nil, http.StatusBadRequest)
}
