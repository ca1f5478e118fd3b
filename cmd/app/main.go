package main

import (
	"museum/config"
	"museum/di"
	"museum/helper"
	"museum/shared/logger"
	"museum/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	timezone.Init(cfg)

	if cfg.DB.SQLite.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
