package main

import (
	"embed"
	"log"

	"heartdash/adapters/tabular"
	"heartdash/domain/dataset"
	"heartdash/internal"
	"heartdash/internal/config"
	"heartdash/internal/report"
	"heartdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

//go:embed ui/templates/*.html ui/templates/fragments/*.html ui/static/css/*.css
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(internal.ParseLogLevel(appConfig.Logging.Level))
	gin.SetMode(appConfig.Server.GinMode)

	// The dataset is read once; a missing or malformed file stops the process.
	records, err := tabular.NewDataReader(appConfig.Data.File).WithLogger(logger).Read()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	ds, err := dataset.FromRecords(appConfig.Data.File, records)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	rows, cols := ds.Shape()
	logger.Info("loaded %s: %d rows, %d columns", appConfig.Data.File, rows, cols)

	renderer := report.NewRenderer(ds, appConfig.Data.TargetColumn, logger)

	server := ui.NewServer(embeddedFiles)
	if err := server.Initialize(renderer, logger); err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Fatal(server.Start(appConfig.Addr()))
}
