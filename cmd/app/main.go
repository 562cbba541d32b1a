package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fooddelivery/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	app := cmd.NewCompositionRoot(configs, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file found, using environment variables and defaults")
	}

	return cmd.Config{
		HTTPPort:               envString("HTTP_PORT", "8080"),
		MaxDemand:              envInt("MAX_DEMAND", 16),
		TrackInterval:          envDuration("TRACK_INTERVAL", 3*time.Second),
		ProactiveDelay:         envDuration("PROACTIVE_DELAY", 10*time.Second),
		AvailablePollInterval:  envDuration("AVAILABLE_POLL_INTERVAL", 500*time.Millisecond),
		ChatPollInterval:       envDuration("CHAT_POLL_INTERVAL", 250*time.Millisecond),
		KitchenPrepTime:        envDuration("KITCHEN_PREP_TIME", 5*time.Second),
		StaleAssignmentTimeout: envDuration("STALE_ASSIGNMENT_TIMEOUT", time.Minute),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Warnf("Invalid %s=%q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		log.Warnf("Invalid %s=%q, using default %s", key, value, fallback)
		return fallback
	}
	return parsed
}

func startWebServer(app cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
