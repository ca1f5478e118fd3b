//go:build wireinject
// +build wireinject

package di

import (
	"museum/config"
	"museum/infras/harvard"
	"museum/infras/otel"
	"museum/infras/redis"
	"museum/infras/sqlite"
	museumHandler "museum/internal/handlers/museum"
	"museum/shared/cache"
	"museum/transport/http"
	"museum/transport/http/middleware"
	"museum/transport/http/router"
	"museum/transport/http/view"

	commentRepository "museum/internal/domains/comment/repository"
	commentService "museum/internal/domains/comment/service"
	museumService "museum/internal/domains/museum/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	sqlite.New,
	otel.New,
	redis.New,
	harvard.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	view.New,
)

var commentDomain = wire.NewSet(
	commentRepository.New,
	commentService.New,
)

var museumDomain = wire.NewSet(
	museumService.New,
)

var domains = wire.NewSet(
	commentDomain,
	museumDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	museumHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
