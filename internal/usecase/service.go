package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/translation"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Movie  MovieService
	Cast   CastService
	Review ReviewService
}

func NewService(repo *repository.Repository, cognito auth.CognitoAPI, translator *translation.Translator, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(cognito, config.Cognito, log),
		Movie:  NewMovieService(repo, log),
		Cast:   NewCastService(repo, log),
		Review: NewReviewService(repo, translator, log),
	}
}
