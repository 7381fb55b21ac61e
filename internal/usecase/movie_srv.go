package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, id int) (*response.MovieResponse, error)
	AddMovie(ctx context.Context, req *request.AddMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	s.log.Info("Movies listed", zap.Int("count", len(movies)))

	return response.MoviesToResponse(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.Int("movie_id", id))
		return nil, fmt.Errorf("get movie: %w", err)
	}

	if movie == nil {
		return nil, fmt.Errorf("movie %d not found", id)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) AddMovie(ctx context.Context, req *request.AddMovieRequest) (*response.MovieResponse, error) {
	movie := &entity.Movie{
		ID:               req.ID,
		Adult:            req.Adult,
		BackdropPath:     req.BackdropPath,
		GenreIDs:         req.GenreIDs,
		OriginalLanguage: req.OriginalLanguage,
		OriginalTitle:    req.OriginalTitle,
		Overview:         req.Overview,
		Popularity:       req.Popularity,
		PosterPath:       req.PosterPath,
		ReleaseDate:      req.ReleaseDate,
		Title:            req.Title,
		Video:            req.Video,
		VoteAverage:      req.VoteAverage,
		VoteCount:        req.VoteCount,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to add movie", zap.Error(err), zap.Int("movie_id", req.ID))
		return nil, fmt.Errorf("add movie: %w", err)
	}

	s.log.Info("Movie added", zap.Int("movie_id", req.ID), zap.String("title", req.Title))

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
