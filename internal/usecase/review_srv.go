package usecase

import (
	"context"
	"fmt"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/data/repository"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/pkg/translation"

	"go.uber.org/zap"
)

type ReviewService interface {
	// ListReviews returns all reviews for a movie, optionally filtered by
	// reviewId and ReviewerId (equality, AND-combined). An empty result is
	// not an error.
	ListReviews(ctx context.Context, movieID int, reviewID *int, reviewerID string) ([]response.ReviewResponse, error)
	// CreateReview stores the review under its caller-supplied key.
	// Re-creating an existing (movieId, reviewId) replaces the item.
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	// UpdateReview replaces all mutable fields of a review.
	UpdateReview(ctx context.Context, movieID, reviewID int, req *request.UpdateReviewRequest) error
	// UpdateReviewContent replaces only the review content.
	UpdateReviewContent(ctx context.Context, movieID, reviewID int, req *request.UpdateReviewContentRequest) error
	// TranslateReview fetches a review and returns its content translated
	// into the target language. Unknown keys fail before any translation
	// call is made.
	TranslateReview(ctx context.Context, movieID, reviewID int, language string) (*response.TranslationResponse, error)
}

type reviewService struct {
	repo       *repository.Repository
	translator *translation.Translator
	log        *zap.Logger
}

func NewReviewService(repo *repository.Repository, translator *translation.Translator, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:       repo,
		translator: translator,
		log:        log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) ListReviews(ctx context.Context, movieID int, reviewID *int, reviewerID string) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByMovieID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	filtered := make([]*entity.Review, 0, len(reviews))
	for _, review := range reviews {
		if reviewID != nil && review.ReviewID != *reviewID {
			continue
		}
		if reviewerID != "" && review.ReviewerID != reviewerID {
			continue
		}
		filtered = append(filtered, review)
	}

	s.log.Info("Reviews listed",
		zap.Int("movie_id", movieID),
		zap.Int("count", len(filtered)),
		zap.Int("total", len(reviews)),
	)

	return response.ReviewsToResponse(filtered), nil
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	review := &entity.Review{
		MovieID:    req.MovieID,
		ReviewID:   req.ReviewID,
		ReviewerID: req.ReviewerID,
		ReviewDate: req.ReviewDate,
		Content:    req.Content,
	}

	// movieId is not checked against the Movies table; the reference is
	// deliberately unenforced.
	if err := s.repo.Review.Put(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int("movie_id", req.MovieID),
			zap.Int("review_id", req.ReviewID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int("movie_id", req.MovieID),
		zap.Int("review_id", req.ReviewID),
		zap.String("reviewer_id", req.ReviewerID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, movieID, reviewID int, req *request.UpdateReviewRequest) error {
	if err := s.repo.Review.Update(ctx, movieID, reviewID, req.ReviewDate, req.ReviewerID, req.Content); err != nil {
		s.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
		)
		return fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.Int("movie_id", movieID),
		zap.Int("review_id", reviewID),
	)

	return nil
}

func (s *reviewService) UpdateReviewContent(ctx context.Context, movieID, reviewID int, req *request.UpdateReviewContentRequest) error {
	if err := s.repo.Review.UpdateContent(ctx, movieID, reviewID, req.Content); err != nil {
		s.log.Error("Failed to update review content",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
		)
		return fmt.Errorf("update review content: %w", err)
	}

	s.log.Info("Review content updated",
		zap.Int("movie_id", movieID),
		zap.Int("review_id", reviewID),
	)

	return nil
}

func (s *reviewService) TranslateReview(ctx context.Context, movieID, reviewID int, language string) (*response.TranslationResponse, error) {
	review, err := s.repo.Review.FindByKey(ctx, movieID, reviewID)
	if err != nil {
		s.log.Error("Failed to fetch review for translation",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
		)
		return nil, fmt.Errorf("fetch review: %w", err)
	}

	if review == nil {
		return nil, fmt.Errorf("review %d/%d not found", movieID, reviewID)
	}

	translated, err := s.translator.Translate(ctx, language, review.Content)
	if err != nil {
		s.log.Error("Failed to translate review",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
			zap.String("language", language),
		)
		return nil, fmt.Errorf("translate review: %w", err)
	}

	s.log.Info("Review translated",
		zap.Int("movie_id", movieID),
		zap.Int("review_id", reviewID),
		zap.String("language", language),
	)

	return &response.TranslationResponse{
		TranslatedText: translated,
		OriginalText:   review.Content,
		LanguageCode:   language,
	}, nil
}
