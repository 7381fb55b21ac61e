package repository

import (
	"context"
	"fmt"
	"strconv"

	"movie-catalog/internal/data/entity"
	"movie-catalog/pkg/database"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	// FindByMovieID returns all reviews under a movie in store order
	// (ascending reviewId).
	FindByMovieID(ctx context.Context, movieID int) ([]*entity.Review, error)
	// FindByKey returns the review or nil when the key is absent.
	FindByKey(ctx context.Context, movieID, reviewID int) (*entity.Review, error)
	// Put writes the full item. A put with an existing (movieId, reviewId)
	// silently replaces the prior item; duplicate creates are last-write-wins.
	Put(ctx context.Context, review *entity.Review) error
	// Update sets all mutable fields. The store upserts when the key is
	// absent; callers that need existence to be checked must read first.
	Update(ctx context.Context, movieID, reviewID int, reviewDate, reviewerID, content string) error
	// UpdateContent sets only the Content attribute, leaving the rest
	// untouched. Upserts like Update.
	UpdateContent(ctx context.Context, movieID, reviewID int, content string) error
}

type reviewRepository struct {
	db    database.DynamoAPI
	table string
	log   *zap.Logger
}

func NewReviewRepository(db database.DynamoAPI, table string, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:    db,
		table: table,
		log:   log.With(zap.String("repository", "review")),
	}
}

func reviewKey(movieID, reviewID int) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"movieId":  &types.AttributeValueMemberN{Value: strconv.Itoa(movieID)},
		"reviewId": &types.AttributeValueMemberN{Value: strconv.Itoa(reviewID)},
	}
}

func (r *reviewRepository) FindByMovieID(ctx context.Context, movieID int) ([]*entity.Review, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("movieId = :movieId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":movieId": &types.AttributeValueMemberN{Value: strconv.Itoa(movieID)},
		},
	})
	if err != nil {
		r.log.Error("Failed to query reviews",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("query reviews for movie %d: %w", movieID, err)
	}

	var reviews []*entity.Review
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reviews); err != nil {
		r.log.Error("Failed to unmarshal review items", zap.Error(err))
		return nil, fmt.Errorf("unmarshal reviews for movie %d: %w", movieID, err)
	}

	return reviews, nil
}

func (r *reviewRepository) FindByKey(ctx context.Context, movieID, reviewID int) (*entity.Review, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       reviewKey(movieID, reviewID),
	})
	if err != nil {
		r.log.Error("Failed to get review",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
		)
		return nil, fmt.Errorf("get review %d/%d: %w", movieID, reviewID, err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var review entity.Review
	if err := attributevalue.UnmarshalMap(out.Item, &review); err != nil {
		r.log.Error("Failed to unmarshal review item", zap.Error(err))
		return nil, fmt.Errorf("unmarshal review %d/%d: %w", movieID, reviewID, err)
	}

	return &review, nil
}

func (r *reviewRepository) Put(ctx context.Context, review *entity.Review) error {
	item, err := attributevalue.MarshalMap(review)
	if err != nil {
		return fmt.Errorf("marshal review %d/%d: %w", review.MovieID, review.ReviewID, err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.log.Error("Failed to put review",
			zap.Error(err),
			zap.Int("movie_id", review.MovieID),
			zap.Int("review_id", review.ReviewID),
		)
		return fmt.Errorf("put review %d/%d: %w", review.MovieID, review.ReviewID, err)
	}

	return nil
}

func (r *reviewRepository) Update(ctx context.Context, movieID, reviewID int, reviewDate, reviewerID, content string) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              reviewKey(movieID, reviewID),
		UpdateExpression: aws.String("SET ReviewDate = :date, ReviewerId = :reviewer, Content = :content"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date":     &types.AttributeValueMemberS{Value: reviewDate},
			":reviewer": &types.AttributeValueMemberS{Value: reviewerID},
			":content":  &types.AttributeValueMemberS{Value: content},
		},
	})
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
		)
		return fmt.Errorf("update review %d/%d: %w", movieID, reviewID, err)
	}

	return nil
}

func (r *reviewRepository) UpdateContent(ctx context.Context, movieID, reviewID int, content string) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(r.table),
		Key:              reviewKey(movieID, reviewID),
		UpdateExpression: aws.String("SET Content = :content"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":content": &types.AttributeValueMemberS{Value: content},
		},
	})
	if err != nil {
		r.log.Error("Failed to update review content",
			zap.Error(err),
			zap.Int("movie_id", movieID),
			zap.Int("review_id", reviewID),
		)
		return fmt.Errorf("update review content %d/%d: %w", movieID, reviewID, err)
	}

	return nil
}
