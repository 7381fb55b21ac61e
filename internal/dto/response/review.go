package response

import (
	"movie-catalog/internal/data/entity"
)

// ReviewResponse keeps the stored attribute spelling on the wire.
type ReviewResponse struct {
	MovieID    int    `json:"movieId"`
	ReviewID   int    `json:"reviewId"`
	ReviewerID string `json:"ReviewerId"`
	ReviewDate string `json:"ReviewDate"`
	Content    string `json:"Content"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		MovieID:    review.MovieID,
		ReviewID:   review.ReviewID,
		ReviewerID: review.ReviewerID,
		ReviewDate: review.ReviewDate,
		Content:    review.Content,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	out := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		out[i] = ReviewToResponse(review)
	}
	return out
}
