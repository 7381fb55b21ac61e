package repository

import (
	"movie-catalog/pkg/database"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Repository struct {
	Movie  MovieRepository
	Cast   CastRepository
	Review ReviewRepository
}

func NewRepository(db database.DynamoAPI, tables utils.TableConfig, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(db, tables.Movies, log),
		Cast:   NewCastRepository(db, tables.MovieCast, log),
		Review: NewReviewRepository(db, tables.MovieReviews, log),
	}
}
