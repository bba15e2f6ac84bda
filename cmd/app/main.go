package main

import (
	"context"
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"

	"logistics/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	logger, err := configs.NewLogger(os.Stderr)
	if err != nil {
		log.Fatalf("Invalid logging configuration: %v", err)
	}

	rnd := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // accident simulation
	app, err := cmd.NewCompositionRoot(configs, logger, rnd)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := cmd.RunScenario(context.Background(), &app, os.Stdout); err != nil {
		log.Fatalf("Scenario failed: %v", err)
	}

	if err := app.DumpMetrics(os.Stderr); err != nil {
		log.Fatalf("Failed to write metrics: %v", err)
	}
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	metricsDump, _ := strconv.ParseBool(os.Getenv("METRICS_DUMP"))

	return cmd.Config{
		LogLevel:     os.Getenv("LOG_LEVEL"),
		LogFormat:    os.Getenv("LOG_FORMAT"),
		ReportFormat: os.Getenv("REPORT_FORMAT"),
		MetricsDump:  metricsDump,
	}
}
