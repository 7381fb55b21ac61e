package usecase

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"

	"go.uber.org/zap"
)

type fakeCastRepo struct {
	findByMovieID func(int) ([]*entity.CastMember, error)
}

func (f *fakeCastRepo) FindByMovieID(ctx context.Context, movieID int) ([]*entity.CastMember, error) {
	return f.findByMovieID(movieID)
}

func TestGetCastMembers(t *testing.T) {
	stored := []*entity.CastMember{
		{MovieID: 848326, ActorName: "Daisy Ridley", RoleName: "Kira"},
		{MovieID: 848326, ActorName: "John Boyega", RoleName: "Aterius"},
		{MovieID: 848326, ActorName: "Daisy Ridley", RoleName: "Narrator"},
	}

	srv := NewCastService(&repository.Repository{
		Cast: &fakeCastRepo{
			findByMovieID: func(movieID int) ([]*entity.CastMember, error) {
				return stored, nil
			},
		},
	}, zap.NewNop())

	tests := []struct {
		name  string
		query request.CastQuery
		want  int
	}{
		{"all for movie", request.CastQuery{MovieID: 848326}, 3},
		{"by actor", request.CastQuery{MovieID: 848326, ActorName: "Daisy Ridley"}, 2},
		{"by role", request.CastQuery{MovieID: 848326, RoleName: "Aterius"}, 1},
		{"actor and role", request.CastQuery{MovieID: 848326, ActorName: "Daisy Ridley", RoleName: "Narrator"}, 1},
		{"disjoint filters", request.CastQuery{MovieID: 848326, ActorName: "John Boyega", RoleName: "Kira"}, 0},
		{"unknown actor", request.CastQuery{MovieID: 848326, ActorName: "Nobody"}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := srv.GetCastMembers(context.Background(), &tc.query)
			if err != nil {
				t.Fatalf("GetCastMembers returned error: %v", err)
			}
			if len(got) != tc.want {
				t.Errorf("got %d members, want %d", len(got), tc.want)
			}
		})
	}
}

func TestGetCastMembersStoreFault(t *testing.T) {
	srv := NewCastService(&repository.Repository{
		Cast: &fakeCastRepo{
			findByMovieID: func(movieID int) ([]*entity.CastMember, error) {
				return nil, errors.New("throughput exceeded")
			},
		},
	}, zap.NewNop())

	if _, err := srv.GetCastMembers(context.Background(), &request.CastQuery{MovieID: 1}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
