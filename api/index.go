package handler

import (
	"museum/config"
	"museum/di"
	"museum/helper"
	"museum/shared/logger"
	"museum/shared/timezone"
	"museum/transport/http"
	nethttp "net/http"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	server *http.HTTP
	once   sync.Once
)

// Handler is the serverless entry point. The service graph is built on the first request
// and reused while the instance stays warm.
func Handler(w nethttp.ResponseWriter, r *nethttp.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		logger.InitLogger()

		cfg := config.Get()

		logger.SetLogLevel(cfg)

		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("Invalid configuration")
		}

		timezone.Init(cfg)

		if cfg.DB.SQLite.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				log.Error().Err(err).Msg("Migration failed")
			}
		}

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
