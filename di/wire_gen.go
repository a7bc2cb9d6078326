// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"shareit/config"
	"shareit/infras/kafka"
	"shareit/infras/otel"
	"shareit/infras/postgres"
	"shareit/infras/redis"
	repository5 "shareit/internal/domains/booking/repository"
	service2 "shareit/internal/domains/booking/service"
	repository4 "shareit/internal/domains/comment/repository"
	service4 "shareit/internal/domains/comment/service"
	repository2 "shareit/internal/domains/item/repository"
	service3 "shareit/internal/domains/item/service"
	repository3 "shareit/internal/domains/request/repository"
	service5 "shareit/internal/domains/request/service"
	"shareit/internal/domains/user/repository"
	"shareit/internal/domains/user/service"
	"shareit/internal/handlers/booking"
	"shareit/internal/handlers/item"
	"shareit/internal/handlers/request"
	"shareit/internal/handlers/user"
	"shareit/permissions"
	"shareit/shared/cache"
	"shareit/shared/clock"
	"shareit/transport/http"
	"shareit/transport/http/middleware"
	"shareit/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceUser := service.New(repositoryUser, configConfig, redisCache, otelOtel)
	handler := user.New(serviceUser, otelOtel)
	repositoryItem := repository2.New(connection, otelOtel)
	itemRequest := repository3.New(connection, otelOtel)
	comment := repository4.New(connection, otelOtel)
	repositoryBooking := repository5.New(connection, otelOtel)
	clockClock := clock.NewSystem()
	projection := service2.NewProjection(repositoryBooking, repositoryItem, clockClock, otelOtel)
	serviceItem := service3.New(repositoryItem, repositoryUser, itemRequest, comment, projection, configConfig, redisCache, otelOtel)
	eligibility := service2.NewEligibility(repositoryBooking, clockClock, otelOtel)
	serviceComment := service4.New(comment, repositoryUser, repositoryItem, eligibility, clockClock, configConfig, otelOtel)
	itemHandler := item.New(serviceItem, serviceComment, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service2.New(repositoryBooking, repositoryUser, repositoryItem, clockClock, kafkaClient, configConfig, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	serviceItemRequest := service5.New(itemRequest, repositoryUser, repositoryItem, clockClock, configConfig, otelOtel)
	requestHandler := request.New(serviceItemRequest, otelOtel)
	domainHandlers := router.DomainHandlers{
		User:    handler,
		Item:    itemHandler,
		Booking: bookingHandler,
		Request: requestHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	exemptionData := permissions.Get()
	identity := middleware.NewIdentityMiddleware(otelOtel, exemptionData)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware, identity)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewIdentityMiddleware, permissions.Get)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, clock.NewSystem)

var userDomain = wire.NewSet(repository.New, service.New)

var itemDomain = wire.NewSet(repository2.New, service3.New)

var bookingDomain = wire.NewSet(repository5.New, service2.New, service2.NewProjection, service2.NewEligibility)

var requestDomain = wire.NewSet(repository3.New, service5.New)

var commentDomain = wire.NewSet(repository4.New, service4.New)

var domains = wire.NewSet(
	userDomain,
	itemDomain,
	bookingDomain,
	requestDomain,
	commentDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), user.New, item.New, booking.New, request.New, router.New)
