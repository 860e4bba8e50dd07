package router

import (
	"inn/config"
	"inn/internal/handlers/auth"
	"inn/internal/handlers/booking"
	"inn/internal/handlers/payment"
	"inn/internal/handlers/review"
	"inn/internal/handlers/room"
	"inn/internal/handlers/user"
	"inn/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth    auth.Handler
	Room    room.Handler
	Booking booking.Handler
	Payment payment.Handler
	Review  review.Handler
	User    user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	appMiddleware  middleware.AppMiddleware
	authMiddleware middleware.AuthRole
	config         *config.Config
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.appMiddleware.Tracing)
	router.Use(r.appMiddleware.RateLimit())

	if r.config.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowCredentials: r.config.App.CORS.AllowCredentials,
			AllowedHeaders:   r.config.App.CORS.AllowedHeaders,
			AllowedMethods:   r.config.App.CORS.AllowedMethods,
			AllowedOrigins:   r.config.App.CORS.AllowedOrigins,
			MaxAge:           r.config.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(r.authMiddleware.APIKey)
			protected.Use(r.authMiddleware.Auth)
			protected.Use(r.authMiddleware.RBAC)

			r.DomainHandlers.Auth.ProtectedRouter(protected)
			r.DomainHandlers.Room.Router(protected)
			r.DomainHandlers.Booking.Router(protected)
			r.DomainHandlers.Payment.Router(protected)
			r.DomainHandlers.Review.Router(protected)
			r.DomainHandlers.User.Router(protected)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.AuthRole, config *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		appMiddleware:  appMiddleware,
		authMiddleware: authMiddleware,
		config:         config,
	}
}
