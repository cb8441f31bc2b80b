package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/oKauaDev/establo/internal/middleware"
	"github.com/oKauaDev/establo/internal/service"
	"github.com/oKauaDev/establo/pkg/response"
)

// Router wires the HTTP surface of the application.
type Router struct {
	users          *service.UserService
	establishments *service.EstablishmentService
	products       *service.ProductService
	logger         *zap.Logger
}

// NewRouter creates a router over the three domain services.
func NewRouter(
	users *service.UserService,
	establishments *service.EstablishmentService,
	products *service.ProductService,
	logger *zap.Logger,
) *Router {
	return &Router{
		users:          users,
		establishments: establishments,
		products:       products,
		logger:         logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/", rt.healthCheck)
	router.Get("/health", rt.healthCheck)

	router.Route("/user", func(r chi.Router) {
		userHandler := NewUserHandler(rt.users, rt.logger)
		r.Post("/create", userHandler.Create)
		r.Get("/find/{id}", userHandler.Get)
		r.Put("/edit/{id}", userHandler.Edit)
		r.Delete("/delete/{id}", userHandler.Delete)
		r.Get("/list", userHandler.List)
	})

	router.Route("/establishment", func(r chi.Router) {
		establishmentHandler := NewEstablishmentHandler(rt.establishments, rt.logger)
		r.Post("/create", establishmentHandler.Create)
		r.Get("/find/{id}", establishmentHandler.Get)
		r.Put("/edit/{id}", establishmentHandler.Edit)
		r.Delete("/delete/{id}", establishmentHandler.Delete)
		r.Get("/query", establishmentHandler.Query)
		r.Get("/list", establishmentHandler.List)
		r.Get("/rules/{id}", establishmentHandler.GetRules)
		r.Put("/rules/{id}/edit", establishmentHandler.EditRules)
	})

	router.Route("/product", func(r chi.Router) {
		productHandler := NewProductHandler(rt.products, rt.logger)
		r.Post("/create", productHandler.Create)
		r.Get("/find/{id}", productHandler.Get)
		r.Put("/edit/{id}", productHandler.Edit)
		r.Delete("/delete/{id}", productHandler.Delete)
		r.Get("/list", productHandler.List)
		r.Get("/list/{establishment}", productHandler.ListByEstablishment)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, "server is running", nil)
}
