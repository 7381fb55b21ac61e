package usecase

import (
	"context"
	"testing"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"

	"go.uber.org/zap"
)

type fakeMovieRepo struct {
	findByID func(int) (*entity.Movie, error)
	findAll  func() ([]*entity.Movie, error)
	create   func(*entity.Movie) error
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id int) (*entity.Movie, error) {
	return f.findByID(id)
}

func (f *fakeMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	return f.findAll()
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	return f.create(movie)
}

func newMovieService(repo repository.MovieRepository) MovieService {
	return NewMovieService(&repository.Repository{Movie: repo}, zap.NewNop())
}

func TestGetMovies(t *testing.T) {
	srv := newMovieService(&fakeMovieRepo{
		findAll: func() ([]*entity.Movie, error) {
			return []*entity.Movie{
				{ID: 848326, Title: "Rebel Moon"},
				{ID: 500, Title: "Reservoir Dogs"},
			}, nil
		},
	})

	movies, err := srv.GetMovies(context.Background())
	if err != nil {
		t.Fatalf("GetMovies returned error: %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("got %d movies, want 2", len(movies))
	}
	if movies[0].Title != "Rebel Moon" {
		t.Errorf("first title = %q", movies[0].Title)
	}
}

func TestGetMovieByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := newMovieService(&fakeMovieRepo{
			findByID: func(id int) (*entity.Movie, error) {
				return &entity.Movie{ID: id, Title: "Rebel Moon"}, nil
			},
		})

		movie, err := srv.GetMovieByID(context.Background(), 848326)
		if err != nil {
			t.Fatalf("GetMovieByID returned error: %v", err)
		}
		if movie.ID != 848326 || movie.Title != "Rebel Moon" {
			t.Errorf("movie = %+v", movie)
		}
	})

	t.Run("absent", func(t *testing.T) {
		srv := newMovieService(&fakeMovieRepo{
			findByID: func(id int) (*entity.Movie, error) {
				return nil, nil
			},
		})

		_, err := srv.GetMovieByID(context.Background(), 9999)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if got := err.Error(); got != "movie 9999 not found" {
			t.Errorf("error = %q", got)
		}
	})
}

func TestAddMovie(t *testing.T) {
	var stored *entity.Movie
	srv := newMovieService(&fakeMovieRepo{
		create: func(movie *entity.Movie) error {
			stored = movie
			return nil
		},
	})

	resp, err := srv.AddMovie(context.Background(), &request.AddMovieRequest{
		ID:          848326,
		Title:       "Rebel Moon",
		ReleaseDate: "2023-12-15",
		GenreIDs:    []int{878, 12},
		VoteAverage: 6.3,
	})
	if err != nil {
		t.Fatalf("AddMovie returned error: %v", err)
	}

	if stored == nil || stored.ID != 848326 || stored.Title != "Rebel Moon" {
		t.Errorf("stored movie = %+v", stored)
	}
	if resp.ID != 848326 {
		t.Errorf("response ID = %d", resp.ID)
	}
}
