//go:build wireinject
// +build wireinject

package di

import (
	"venue/config"
	"venue/infras/memstore"
	"venue/infras/otel"
	"venue/infras/redis"
	"venue/shared/cache"
	"venue/transport/http"
	"venue/transport/http/middleware"
	"venue/transport/http/router"

	bookingRepository "venue/internal/domains/booking/repository"
	bookingService "venue/internal/domains/booking/service"
	roomRepository "venue/internal/domains/room/repository"
	roomService "venue/internal/domains/room/service"
	bookingHandler "venue/internal/handlers/booking"
	roomHandler "venue/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	memstore.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
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
