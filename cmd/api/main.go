package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"posprep/adapters/excel"
	"posprep/adapters/fuzzy"
	"posprep/app"
	"posprep/domain/workbook"
	"posprep/internal/api"
	"posprep/internal/config"
	"posprep/internal/logging"
)

func main() {
	// Optional .env for local development; environment wins in deploys.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	gin.SetMode(cfg.Server.GinMode)

	logger := logging.NewDefaultLogger()
	matcher := fuzzy.Select(os.Getenv("VERIFY_SUGGESTIONS_DISABLED") == "", logger)

	svc := app.NewValidationService(
		cfg.Engine,
		workbook.DefaultCatalog(),
		excel.NewDocumentReader(),
		excel.NewFixWriter(),
		matcher,
		logger,
	)

	server := api.NewServer(svc, logger)
	logger.Info("verification API listening on :%s", cfg.Server.Port)
	if err := server.Router().Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
