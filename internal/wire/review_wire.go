package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	verifier auth.TokenVerifier,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /movies/reviews/{movieId} - reviews for a movie, optional
	// reviewId/ReviewerId filters
	r.Get("/movies/reviews/{movieId}", reviewHandler.ListReviews)

	// GET /reviews/{reviewId}/{movieId}/translation?language=CODE
	r.Get("/reviews/{reviewId}/{movieId}/translation", reviewHandler.TranslateReview)

	// ==================== PROTECTED ROUTES (require token cookie) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.CookieAuth(verifier, log))

		// POST /movies/reviews - create review with caller-supplied reviewId
		r.Post("/movies/reviews", reviewHandler.CreateReview)

		// PUT /movies/{movieId}/reviews/{reviewId} - replace all mutable fields
		r.Put("/movies/{movieId}/reviews/{reviewId}", reviewHandler.UpdateReview)

		// PATCH /movies/{movieId}/reviews/{reviewId} - update Content only
		r.Patch("/movies/{movieId}/reviews/{reviewId}", reviewHandler.UpdateReviewContent)
	})
}
