package wire

import (
	"net/http"

	"movie-catalog/internal/adaptor"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the composed router.
type App struct {
	Router *chi.Mux
}

// Wiring composes services, handlers, and routes.
func Wiring(service *usecase.Service, verifier auth.TokenVerifier, config *utils.Config, logger *zap.Logger) *App {
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, verifier, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router. Each method+path pair maps to
// exactly one handler; the authorization requirement is attached per route
// group.
func setupRouter(
	handler *adaptor.Handler,
	verifier auth.TokenVerifier,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireMovie(r, handler.Movie)
	wireCast(r, handler.Cast)
	wireReview(r, handler.Review, verifier, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
