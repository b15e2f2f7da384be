package router

import (
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spend-tracker/backend/internal/controllers"
	"github.com/spend-tracker/backend/internal/gold"
)

// Config carries the dependencies the route handlers need.
type Config struct {
	GoldPrices gold.PriceProvider
}

// Router sets up the gin engine with all middlewares and routes.
func Router(config Config) (*gin.Engine, error) {
	r := gin.New()

	// Client IPs are never used, so the X-Forwarded-For header does not
	// need to be processed
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// The pprof endpoints are off unless explicitly enabled
	if enable, err := strconv.ParseBool(os.Getenv("ENABLE_PPROF")); err == nil && enable {
		pprof.Register(r)
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. Client IPs are not processed, therefore
	// nobody needs to be trusted here.
	_ = r.SetTrustedProxies([]string{})

	r.GET("/healthz", GetHealth)

	api := r.Group("/api")
	controllers.RegisterRootRoutes(api)
	controllers.RegisterAuthRoutes(api.Group("/auth"))

	// Everything below requires a signed-in user
	authed := api.Group("", controllers.RequireSession())
	controllers.RegisterMemberRoutes(authed.Group("/members"))
	controllers.RegisterSalaryRoutes(authed.Group("/salaries"))
	controllers.RegisterExpenseRoutes(authed.Group("/expenses"))
	controllers.RegisterInvestmentRoutes(authed.Group("/investments"), config.GoldPrices)
	controllers.RegisterActivityRoutes(authed.Group("/activities"))
	controllers.RegisterDataRoutes(authed.Group("/data"))
	controllers.RegisterDashboardRoutes(authed.Group("/dashboard"))
	controllers.RegisterFundsRoutes(authed.Group("/funds"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

// GetHealth returns an empty HTTP 204 as long as the process is serving
//
//	@Summary		Health
//	@Description	Liveness probe endpoint
//	@Tags			General
//	@Success		204
//	@Router			/healthz [get]
func GetHealth(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
