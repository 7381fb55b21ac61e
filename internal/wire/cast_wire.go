package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCast(r chi.Router, castHandler *adaptor.CastHandler) {
	// GET /movies/cast?movieId=N[&actorName=..][&roleName=..]
	r.Get("/movies/cast", castHandler.GetCastMembers)
}
