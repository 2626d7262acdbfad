// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

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
	"decor/internal/domains/auth/service"
	service8 "decor/internal/domains/booking/service"
	"decor/internal/domains/catalog"
	repository5 "decor/internal/domains/moment/repository"
	service7 "decor/internal/domains/moment/service"
	repository3 "decor/internal/domains/product/repository"
	service5 "decor/internal/domains/product/service"
	repository2 "decor/internal/domains/service/repository"
	service3 "decor/internal/domains/service/service"
	repository4 "decor/internal/domains/testimonial/repository"
	service6 "decor/internal/domains/testimonial/service"
	"decor/internal/domains/user/repository"
	service2 "decor/internal/domains/user/service"
	"decor/internal/handlers/auth"
	"decor/internal/handlers/booking"
	catalog2 "decor/internal/handlers/catalog"
	"decor/internal/handlers/moment"
	"decor/internal/handlers/product"
	service4 "decor/internal/handlers/service"
	"decor/internal/handlers/testimonial"
	"decor/internal/handlers/user"
	"decor/permissions"
	"decor/shared/cache"
	"decor/transport/http"
	"decor/transport/http/middleware"
	"decor/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	repositoryService := repository2.New(connection, otelOtel)
	repositoryProduct := repository3.New(connection, otelOtel)
	repositoryTestimonial := repository4.New(connection, otelOtel)
	repositoryMoment := repository5.New(connection, otelOtel)
	catalogCatalog := catalog.New(repositoryService, repositoryProduct, repositoryTestimonial, repositoryMoment, configConfig, otelOtel)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT, catalogCatalog)
	handler := auth.New(serviceAuth, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service2.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	catalogHandler := catalog2.New(catalogCatalog, otelOtel)
	s3S3 := s3.New(configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceService := service3.New(repositoryService, configConfig, redisCache, otelOtel, s3S3, kafkaClient, catalogCatalog)
	serviceHandler := service4.New(serviceService, otelOtel)
	serviceProduct := service5.New(repositoryProduct, repositoryService, configConfig, redisCache, otelOtel, s3S3, kafkaClient, catalogCatalog)
	productHandler := product.New(serviceProduct, otelOtel)
	serviceTestimonial := service6.New(repositoryTestimonial, configConfig, redisCache, otelOtel, kafkaClient, catalogCatalog)
	testimonialHandler := testimonial.New(serviceTestimonial, otelOtel)
	serviceMoment := service7.New(repositoryMoment, configConfig, redisCache, otelOtel, s3S3, kafkaClient, catalogCatalog)
	momentHandler := moment.New(serviceMoment, otelOtel)
	locator := geo.New(configConfig, otelOtel)
	serviceBooking := service8.New(catalogCatalog, locator, kafkaClient, configConfig, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:        handler,
		User:        userHandler,
		Catalog:     catalogHandler,
		Service:     serviceHandler,
		Product:     productHandler,
		Testimonial: testimonialHandler,
		Moment:      momentHandler,
		Booking:     bookingHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, authRole, catalogCatalog)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, s3.New, kafka.New, geo.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var catalogDomain = wire.NewSet(repository2.New, repository3.New, repository4.New, repository5.New, catalog.New, wire.Bind(new(catalog.Refresher), new(catalog.Catalog)))

var editorDomains = wire.NewSet(service3.New, service5.New, service6.New, service7.New)

var bookingDomain = wire.NewSet(service8.New)

var authDomain = wire.NewSet(repository.New, service2.New, service.New)

var domains = wire.NewSet(
	catalogDomain,
	editorDomains,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, user.New, catalog2.New, service4.New, product.New, testimonial.New, moment.New, booking.New, router.New)
