package request

// CreateReviewRequest carries a caller-supplied review identity. Extra
// fields in the body are tolerated on create.
type CreateReviewRequest struct {
	MovieID    int    `json:"movieId" validate:"required,gt=0"`
	ReviewID   int    `json:"reviewId" validate:"required,gt=0"`
	ReviewerID string `json:"ReviewerId" validate:"required"`
	ReviewDate string `json:"ReviewDate" validate:"required"`
	Content    string `json:"Content" validate:"required"`
}

// UpdateReviewRequest replaces every mutable review field. Decoded
// strictly; unknown fields are rejected.
type UpdateReviewRequest struct {
	ReviewDate string `json:"ReviewDate" validate:"required,datetime=2006-01-02"`
	ReviewerID string `json:"ReviewerId" validate:"required,email"`
	Content    string `json:"Content" validate:"required"`
}

// UpdateReviewContentRequest updates only the review content. Decoded
// strictly; unknown fields are rejected.
type UpdateReviewContentRequest struct {
	Content string `json:"Content" validate:"required"`
}
