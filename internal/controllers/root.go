package controllers

import (
	"net/http"

	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type RootResponse struct {
	Links RootLinks `json:"links"` // Links of the API
}

type RootLinks struct {
	Auth        string `json:"auth" example:"https://example.com/api/auth"`               // URL of the auth endpoints
	Members     string `json:"members" example:"https://example.com/api/members"`         // URL of the member collection
	Salaries    string `json:"salaries" example:"https://example.com/api/salaries"`       // URL of the salary collection
	Expenses    string `json:"expenses" example:"https://example.com/api/expenses"`       // URL of the expense collection
	Investments string `json:"investments" example:"https://example.com/api/investments"` // URL of the investment collection
	Activities  string `json:"activities" example:"https://example.com/api/activities"`   // URL of the activity collection
	Data        string `json:"data" example:"https://example.com/api/data"`               // URL of the snapshot endpoints
	Dashboard   string `json:"dashboard" example:"https://example.com/api/dashboard"`     // URL of the dashboard endpoint
	Funds       string `json:"funds" example:"https://example.com/api/funds"`             // URL of the fund goals
}

// GetRoot returns the link list for the API
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/api [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.ContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Auth:        url + "/api/auth",
			Members:     url + "/api/members",
			Salaries:    url + "/api/salaries",
			Expenses:    url + "/api/expenses",
			Investments: url + "/api/investments",
			Activities:  url + "/api/activities",
			Data:        url + "/api/data",
			Dashboard:   url + "/api/dashboard",
			Funds:       url + "/api/funds",
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/api [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
