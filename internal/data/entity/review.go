package entity

// Review rows live in the MovieReviews table (pk: movieId, sk: reviewId).
// The upper-cased attribute names are historical and kept as stored.
type Review struct {
	MovieID    int    `dynamodbav:"movieId"`
	ReviewID   int    `dynamodbav:"reviewId"`
	ReviewerID string `dynamodbav:"ReviewerId"`
	ReviewDate string `dynamodbav:"ReviewDate"` // YYYY-MM-DD
	Content    string `dynamodbav:"Content"`
}
