package adaptor

import (
	"net/http"
	"strconv"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type CastHandler struct {
	service usecase.CastService
	log     *zap.Logger
}

func NewCastHandler(service usecase.CastService, log *zap.Logger) *CastHandler {
	return &CastHandler{
		service: service,
		log:     log.With(zap.String("handler", "cast")),
	}
}

// GetCastMembers handles GET /movies/cast (public).
// movieId is a required query parameter; actorName and roleName narrow the
// result when present.
func (h *CastHandler) GetCastMembers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	rawMovieID := query.Get("movieId")
	if rawMovieID == "" {
		utils.ResponseBadRequest(w, "Missing query parameter: movieId", nil)
		return
	}

	movieID, err := strconv.Atoi(rawMovieID)
	if err != nil {
		utils.ResponseBadRequest(w, "Query parameter movieId must be an integer", nil)
		return
	}

	req := &request.CastQuery{
		MovieID:   movieID,
		ActorName: query.Get("actorName"),
		RoleName:  query.Get("roleName"),
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid cast query", validationErrors)
		return
	}

	cast, err := h.service.GetCastMembers(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "get cast members")
		return
	}

	utils.ResponseSuccess(w, "success", cast)
}
