package adaptor

import (
	"errors"
	"io"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies (public)
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /movies/{movieId} (public)
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathInt(w, r, "movieId")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		handleServiceError(h.log, w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// AddMovie handles POST /movies (public)
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.AddMovieRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			utils.ResponseBadRequest(w, "Missing request body", nil)
			return
		}
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid movie. Must match Movie schema.", validationErrors)
		return
	}

	movie, err := h.service.AddMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "add movie")
		return
	}

	utils.ResponseCreated(w, "Movie added successfully", movie)
}
