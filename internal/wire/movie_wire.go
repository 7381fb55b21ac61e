package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /movies - full catalog
	r.Get("/movies", movieHandler.GetMovies)

	// GET /movies/{movieId} - movie details
	r.Get("/movies/{movieId}", movieHandler.GetMovieByID)

	// POST /movies - add a movie
	r.Post("/movies", movieHandler.AddMovie)
}
