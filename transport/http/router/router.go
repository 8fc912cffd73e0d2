package router

import (
	"pousada/internal/handlers/cabin"
	"pousada/internal/handlers/catalog"
	"pousada/internal/handlers/content"
	"pousada/internal/handlers/guest"
	"pousada/internal/handlers/order"
	"pousada/internal/handlers/property"
	"pousada/internal/handlers/resource"
	"pousada/internal/handlers/stay"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property property.Handler
	Cabin    cabin.Handler
	Catalog  catalog.Handler
	Resource resource.Handler
	Content  content.Handler
	Guest    guest.Handler
	Stay     stay.Handler
	Order    order.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Cabin.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Resource.Router(routerGroup)
		r.DomainHandlers.Content.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Stay.Router(routerGroup)
		r.DomainHandlers.Order.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
