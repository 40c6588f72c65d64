package main

import (
	"log"

	"github.com/avolkov/whereis/internal/config"
	"github.com/avolkov/whereis/internal/db"
	"github.com/avolkov/whereis/internal/logging"
	"github.com/avolkov/whereis/internal/photostore/local"
	"github.com/avolkov/whereis/internal/service"
	"github.com/avolkov/whereis/internal/vision"
	claudevision "github.com/avolkov/whereis/internal/vision/claude"
	"github.com/avolkov/whereis/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	photoStg, err := local.NewLocalPhotoStore(cfg.PhotoPath)
	if err != nil {
		logger.Error("failed to initialize photo store", "error", err)
		return
	}

	var describer vision.Describer
	if cfg.AnthropicAPIKey != "" {
		logger.Info("photo description enabled", "model", cfg.AnthropicModel)
		describer = claudevision.New(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	}

	itemService := service.NewItemService(database, logger)
	server := web.NewServer(itemService, photoStg, describer, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
