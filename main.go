package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spend-tracker/backend/internal/gold"
	"github.com/spend-tracker/backend/internal/models"
	"github.com/spend-tracker/backend/internal/router"
)

func main() {
	// A .env file is optional, environment variables set in the shell win
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate all models
	err = models.Connect("data/gorm.db")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Router(router.Config{
		GoldPrices: goldPrices(),
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// goldPrices builds the price provider for the valuation endpoint.
// Without GOLD_PRICE_URL the endpoint reports the price as unavailable.
// With REDIS_URL the price is cached for fifteen minutes.
func goldPrices() gold.PriceProvider {
	url, ok := os.LookupEnv("GOLD_PRICE_URL")
	if !ok {
		log.Info().Msg("GOLD_PRICE_URL is not set, gold valuation is disabled")
		return nil
	}

	var client *redis.Client
	if redisURL, ok := os.LookupEnv("REDIS_URL"); ok {
		options, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		client = redis.NewClient(options)
	}

	return gold.CachedProvider{
		Provider: gold.HTTPProvider{URL: url},
		Redis:    client,
		TTL:      15 * time.Minute,
	}
}
