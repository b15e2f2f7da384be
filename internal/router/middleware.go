package router

import (
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spend-tracker/backend/internal/models"
)

// URLMiddleware stores the base URL the API is reachable at in the
// request context so the link list can render absolute URLs.
func URLMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		base := os.Getenv("API_URL")
		if base == "" {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}

			base = scheme + "://" + c.Request.Host
		}

		baseURL, err := url.Parse(base)
		if err != nil {
			c.Set(string(models.ContextURL), "")
			return
		}

		c.Set(string(models.ContextURL), baseURL.String())
	}
}
