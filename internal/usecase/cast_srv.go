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

type CastService interface {
	// GetCastMembers returns the cast entries for query.MovieID, narrowed
	// by the optional actorName/roleName equality filters.
	GetCastMembers(ctx context.Context, query *request.CastQuery) ([]response.CastMemberResponse, error)
}

type castService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCastService(repo *repository.Repository, log *zap.Logger) CastService {
	return &castService{
		repo: repo,
		log:  log.With(zap.String("service", "cast")),
	}
}

func (s *castService) GetCastMembers(ctx context.Context, query *request.CastQuery) ([]response.CastMemberResponse, error) {
	cast, err := s.repo.Cast.FindByMovieID(ctx, query.MovieID)
	if err != nil {
		s.log.Error("Failed to list cast members",
			zap.Error(err),
			zap.Int("movie_id", query.MovieID),
		)
		return nil, fmt.Errorf("list cast members: %w", err)
	}

	filtered := make([]*entity.CastMember, 0, len(cast))
	for _, member := range cast {
		if query.ActorName != "" && member.ActorName != query.ActorName {
			continue
		}
		if query.RoleName != "" && member.RoleName != query.RoleName {
			continue
		}
		filtered = append(filtered, member)
	}

	s.log.Info("Cast members listed",
		zap.Int("movie_id", query.MovieID),
		zap.Int("count", len(filtered)),
	)

	return response.CastToResponse(filtered), nil
}
