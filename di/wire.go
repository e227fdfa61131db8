//go:build wireinject
// +build wireinject

package di

import (
	"chukchukgo/config"
	"chukchukgo/infras/jwt"
	"chukchukgo/infras/kafka"
	"chukchukgo/infras/otel"
	"chukchukgo/infras/postgres"
	"chukchukgo/infras/redis"
	"chukchukgo/infras/s3"
	"chukchukgo/shared/cache"
	"chukchukgo/transport/http"
	"chukchukgo/transport/http/middleware"
	"chukchukgo/transport/http/router"

	"github.com/google/wire"

	authService "chukchukgo/internal/domains/auth/service"
	"chukchukgo/internal/domains/booking/eticket"
	bookingRepository "chukchukgo/internal/domains/booking/repository"
	bookingService "chukchukgo/internal/domains/booking/service"
	paymentService "chukchukgo/internal/domains/payment/service"
	trainRepository "chukchukgo/internal/domains/train/repository"
	trainService "chukchukgo/internal/domains/train/service"
	userRepository "chukchukgo/internal/domains/user/repository"
	authHandler "chukchukgo/internal/handlers/auth"
	bookingHandler "chukchukgo/internal/handlers/booking"
	paymentHandler "chukchukgo/internal/handlers/payment"
	trainHandler "chukchukgo/internal/handlers/train"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var trainDomain = wire.NewSet(
	trainRepository.New,
	trainService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	eticket.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentService.New,
)

var domains = wire.NewSet(
	authDomain,
	trainDomain,
	bookingDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	trainHandler.New,
	bookingHandler.New,
	paymentHandler.New,
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
