package adaptor

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// pathInt extracts a numeric path parameter. The second return is false
// when the parameter is missing or not an integer; a response has already
// been written in that case.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		utils.ResponseBadRequest(w, "Missing path parameter: "+name, nil)
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseBadRequest(w, "Path parameter "+name+" must be an integer", nil)
		return 0, false
	}

	return value, true
}

// ListReviews handles GET /movies/reviews/{movieId} (public)
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(w, r, "movieId")
	if !ok {
		return
	}

	// Optional equality filters, AND-combined when both present
	query := r.URL.Query()

	var reviewID *int
	if raw := query.Get("reviewId"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Query parameter reviewId must be an integer", nil)
			return
		}
		reviewID = &value
	}

	reviewerID := query.Get("ReviewerId")

	reviews, err := h.service.ListReviews(r.Context(), movieID, reviewID, reviewerID)
	if err != nil {
		handleServiceError(h.log, w, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// CreateReview handles POST /movies/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid review. Must match Review schema.", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review added successfully", review)
}

// UpdateReview handles PUT /movies/{movieId}/reviews/{reviewId} (protected).
// Replaces all mutable fields; unknown body fields are rejected.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(w, r, "movieId")
	if !ok {
		return
	}
	reviewID, ok := pathInt(w, r, "reviewId")
	if !ok {
		return
	}

	var req request.UpdateReviewRequest
	if err := utils.DecodeJSONStrict(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid input. Must match review update schema.", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input. Must match review update schema.", validationErrors)
		return
	}

	if err := h.service.UpdateReview(r.Context(), movieID, reviewID, &req); err != nil {
		handleServiceError(h.log, w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", nil)
}

// UpdateReviewContent handles PATCH /movies/{movieId}/reviews/{reviewId}
// (protected). Only Content is updatable; unknown body fields are rejected.
func (h *ReviewHandler) UpdateReviewContent(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(w, r, "movieId")
	if !ok {
		return
	}
	reviewID, ok := pathInt(w, r, "reviewId")
	if !ok {
		return
	}

	var req request.UpdateReviewContentRequest
	if err := utils.DecodeJSONStrict(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid input. Only 'Content' is updatable.", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid input. Only 'Content' is updatable.", validationErrors)
		return
	}

	if err := h.service.UpdateReviewContent(r.Context(), movieID, reviewID, &req); err != nil {
		handleServiceError(h.log, w, err, "update review content")
		return
	}

	utils.ResponseSuccess(w, "Review content updated successfully", nil)
}

// TranslateReview handles GET /reviews/{reviewId}/{movieId}/translation (public)
func (h *ReviewHandler) TranslateReview(w http.ResponseWriter, r *http.Request) {
	reviewID, ok := pathInt(w, r, "reviewId")
	if !ok {
		return
	}
	movieID, ok := pathInt(w, r, "movieId")
	if !ok {
		return
	}

	language := r.URL.Query().Get("language")
	if language == "" {
		utils.ResponseBadRequest(w, "Missing query parameter: language", nil)
		return
	}

	translation, err := h.service.TranslateReview(r.Context(), movieID, reviewID, language)
	if err != nil {
		handleServiceError(h.log, w, err, "translate review")
		return
	}

	utils.ResponseSuccess(w, "success", translation)
}
