package response

import (
	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID               int     `json:"id"`
	Adult            bool    `json:"adult"`
	BackdropPath     string  `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       string  `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:               movie.ID,
		Adult:            movie.Adult,
		BackdropPath:     movie.BackdropPath,
		GenreIDs:         movie.GenreIDs,
		OriginalLanguage: movie.OriginalLanguage,
		OriginalTitle:    movie.OriginalTitle,
		Overview:         movie.Overview,
		Popularity:       movie.Popularity,
		PosterPath:       movie.PosterPath,
		ReleaseDate:      movie.ReleaseDate,
		Title:            movie.Title,
		Video:            movie.Video,
		VoteAverage:      movie.VoteAverage,
		VoteCount:        movie.VoteCount,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, movie := range movies {
		out[i] = MovieToResponse(movie)
	}
	return out
}
