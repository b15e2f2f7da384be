package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
)

// RegisterMemberRoutes registers the routes for members with
// the RouterGroup that is passed.
func RegisterMemberRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetMembers)
		r.POST("", CreateMember)
	}
	{
		r.OPTIONS("/:id", httputil.OptionsDelete)
		r.DELETE("/:id", DeleteMember)
	}
}

type MemberEditable struct {
	Name string `json:"name" example:"Asha"` // Display name of the household member
}

func (editable MemberEditable) model() models.Member {
	return models.Member{
		Name: editable.Name,
	}
}

type MemberResponse struct {
	Data  *Member `json:"data"`  // Data for the member
	Error *string `json:"error"` // The error, if any occurred
}

type MemberListResponse struct {
	Data  []Member `json:"data"`  // List of members
	Error *string  `json:"error"` // The error, if any occurred
}

type Member struct {
	models.Member
}

// GetMembers returns all household members
//
//	@Summary		List members
//	@Description	Returns the household roster
//	@Tags			Members
//	@Produce		json
//	@Success		200	{object}	MemberListResponse
//	@Failure		500	{object}	MemberListResponse
//	@Router			/api/members [get]
func GetMembers(c *gin.Context) {
	var members []models.Member
	err := models.DB.Order("created_at ASC").Find(&members).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MemberListResponse{Error: &s})
		return
	}

	data := make([]Member, 0, len(members))
	for _, member := range members {
		data = append(data, Member{member})
	}

	c.JSON(http.StatusOK, MemberListResponse{Data: data})
}

// CreateMember creates a new household member
//
//	@Summary		Create member
//	@Description	Adds a member to the household roster
//	@Tags			Members
//	@Produce		json
//	@Success		201		{object}	MemberResponse
//	@Failure		400		{object}	MemberResponse
//	@Failure		409		{object}	MemberResponse
//	@Failure		500		{object}	MemberResponse
//	@Param			member	body		MemberEditable	true	"Member"
//	@Router			/api/members [post]
func CreateMember(c *gin.Context) {
	var editable MemberEditable
	if err := httputil.BindData(c, &editable); err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{Error: &s})
		return
	}

	member := editable.model()
	if err := models.DB.Create(&member).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), MemberResponse{Error: &s})
		return
	}

	data := Member{member}
	c.JSON(http.StatusCreated, MemberResponse{Data: &data})
}

// DeleteMember deletes a member from the roster
//
//	@Summary		Delete member
//	@Description	Removes a member from the roster. Entries referencing the
//	@Description	name are kept and keep aggregating under it.
//	@Tags			Members
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		404	{object}	httpError
//	@Param			id	path		URIID	true	"ID of the member"
//	@Router			/api/members/{id} [delete]
func DeleteMember(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var member models.Member
	if err := models.DB.First(&member, "id = ?", uri.ID.String()).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := models.DB.Delete(&member).Error; err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
