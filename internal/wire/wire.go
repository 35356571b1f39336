package wire

import (
	"handcrafted-haven/internal/adaptor"
	"handcrafted-haven/internal/usecase"
	"handcrafted-haven/pkg/middleware"
	"handcrafted-haven/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled router.
type App struct {
	Router *chi.Mux
}

// Wiring initializes handlers and routes on top of the given services.
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.NewRateLimiter(config.RateLimit.RPS, config.RateLimit.Burst).Middleware)

	// Auth endpoints get a stricter bucket on top of the global one.
	authLimiter := middleware.NewRateLimiter(2, 5)

	wireAuth(r, handler.Auth, authLimiter)
	wireProduct(r, handler.Product)
	wireSeller(r, handler.Seller)
	wireHealth(r, handler.Health)

	return r
}
