package main

import (
	"log"

	"csvscope/adapters/tabular"
	"csvscope/internal"
	"csvscope/internal/config"
	"csvscope/internal/session"
	"csvscope/internal/viz"
	"csvscope/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.DefaultLogger
	logger.Info("[Main] starting %s", appConfig.Window.Title)

	sess := session.New()
	reader := tabular.NewReader(appConfig.Data.MaxFileSize)
	renderer := viz.NewRenderer(viz.Options{
		Width:         appConfig.Chart.Width,
		Height:        appConfig.Chart.Height,
		HistogramBins: appConfig.Chart.HistogramBins,
		MaxCategories: appConfig.Chart.MaxCategories,
	})

	shell := ui.New(appConfig, sess, reader, renderer)
	shell.Run()

	logger.Info("[Main] shutdown complete")
}
