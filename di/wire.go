//go:build wireinject
// +build wireinject

package di

import (
	"pousada/config"
	"pousada/infras/jwt"
	"pousada/infras/otel"
	"pousada/infras/postgres"
	"pousada/infras/redis"
	"pousada/infras/s3"
	"pousada/permissions"
	"pousada/shared/cache"
	"pousada/transport/http"
	"pousada/transport/http/middleware"
	"pousada/transport/http/router"

	cabinRepository "pousada/internal/domains/cabin/repository"
	cabinService "pousada/internal/domains/cabin/service"
	catalogRepository "pousada/internal/domains/catalog/repository"
	catalogService "pousada/internal/domains/catalog/service"
	contentRepository "pousada/internal/domains/content/repository"
	contentService "pousada/internal/domains/content/service"
	guestRepository "pousada/internal/domains/guest/repository"
	guestService "pousada/internal/domains/guest/service"
	orderRepository "pousada/internal/domains/order/repository"
	orderService "pousada/internal/domains/order/service"
	propertyRepository "pousada/internal/domains/property/repository"
	propertyService "pousada/internal/domains/property/service"
	resourceRepository "pousada/internal/domains/resource/repository"
	resourceService "pousada/internal/domains/resource/service"
	stayRepository "pousada/internal/domains/stay/repository"
	stayService "pousada/internal/domains/stay/service"

	cabinHandler "pousada/internal/handlers/cabin"
	catalogHandler "pousada/internal/handlers/catalog"
	contentHandler "pousada/internal/handlers/content"
	guestHandler "pousada/internal/handlers/guest"
	orderHandler "pousada/internal/handlers/order"
	propertyHandler "pousada/internal/handlers/property"
	resourceHandler "pousada/internal/handlers/resource"
	stayHandler "pousada/internal/handlers/stay"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var cabinDomain = wire.NewSet(
	cabinRepository.New,
	cabinService.New,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var resourceDomain = wire.NewSet(
	resourceRepository.New,
	resourceService.New,
)

var contentDomain = wire.NewSet(
	contentRepository.New,
	contentService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var stayDomain = wire.NewSet(
	stayRepository.New,
	stayService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	cabinDomain,
	catalogDomain,
	resourceDomain,
	contentDomain,
	guestDomain,
	stayDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	cabinHandler.New,
	catalogHandler.New,
	resourceHandler.New,
	contentHandler.New,
	guestHandler.New,
	stayHandler.New,
	orderHandler.New,
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
