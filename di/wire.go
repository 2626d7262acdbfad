//go:build wireinject
// +build wireinject

package di

import (
	"decor/config"
	"decor/infras/geo"
	"decor/infras/jwt"
	"decor/infras/kafka"
	"decor/infras/otel"
	"decor/infras/postgres"
	"decor/infras/redis"
	"decor/infras/s3"
	"decor/permissions"
	"decor/shared/cache"
	"decor/transport/http"
	"decor/transport/http/middleware"
	"decor/transport/http/router"

	"github.com/google/wire"

	"decor/internal/domains/catalog"

	authService "decor/internal/domains/auth/service"
	bookingService "decor/internal/domains/booking/service"
	momentRepository "decor/internal/domains/moment/repository"
	momentService "decor/internal/domains/moment/service"
	productRepository "decor/internal/domains/product/repository"
	productService "decor/internal/domains/product/service"
	serviceRepository "decor/internal/domains/service/repository"
	serviceService "decor/internal/domains/service/service"
	testimonialRepository "decor/internal/domains/testimonial/repository"
	testimonialService "decor/internal/domains/testimonial/service"
	userRepository "decor/internal/domains/user/repository"
	userService "decor/internal/domains/user/service"

	authHandler "decor/internal/handlers/auth"
	bookingHandler "decor/internal/handlers/booking"
	catalogHandler "decor/internal/handlers/catalog"
	momentHandler "decor/internal/handlers/moment"
	productHandler "decor/internal/handlers/product"
	serviceHandler "decor/internal/handlers/service"
	testimonialHandler "decor/internal/handlers/testimonial"
	userHandler "decor/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	geo.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	serviceRepository.New,
	productRepository.New,
	testimonialRepository.New,
	momentRepository.New,
	catalog.New,
	wire.Bind(new(catalog.Refresher), new(catalog.Catalog)),
)

var editorDomains = wire.NewSet(
	serviceService.New,
	productService.New,
	testimonialService.New,
	momentService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	editorDomains,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	catalogHandler.New,
	serviceHandler.New,
	productHandler.New,
	testimonialHandler.New,
	momentHandler.New,
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
