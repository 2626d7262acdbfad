package router

import (
	"decor/internal/handlers/auth"
	"decor/internal/handlers/booking"
	"decor/internal/handlers/catalog"
	"decor/internal/handlers/moment"
	"decor/internal/handlers/product"
	"decor/internal/handlers/service"
	"decor/internal/handlers/testimonial"
	"decor/internal/handlers/user"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth        auth.Handler
	User        user.Handler
	Catalog     catalog.Handler
	Service     service.Handler
	Product     product.Handler
	Testimonial testimonial.Handler
	Moment      moment.Handler
	Booking     booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Service.Router(routerGroup)
		r.DomainHandlers.Product.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Moment.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
