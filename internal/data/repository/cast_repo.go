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

type CastRepository interface {
	// FindByMovieID returns all cast entries under a movie in store order
	// (ascending actorName).
	FindByMovieID(ctx context.Context, movieID int) ([]*entity.CastMember, error)
}

type castRepository struct {
	db    database.DynamoAPI
	table string
	log   *zap.Logger
}

func NewCastRepository(db database.DynamoAPI, table string, log *zap.Logger) CastRepository {
	return &castRepository{
		db:    db,
		table: table,
		log:   log.With(zap.String("repository", "cast")),
	}
}

func (r *castRepository) FindByMovieID(ctx context.Context, movieID int) ([]*entity.CastMember, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		KeyConditionExpression: aws.String("movieId = :movieId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":movieId": &types.AttributeValueMemberN{Value: strconv.Itoa(movieID)},
		},
	})
	if err != nil {
		r.log.Error("Failed to query cast members",
			zap.Error(err),
			zap.Int("movie_id", movieID),
		)
		return nil, fmt.Errorf("query cast for movie %d: %w", movieID, err)
	}

	var cast []*entity.CastMember
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &cast); err != nil {
		r.log.Error("Failed to unmarshal cast items", zap.Error(err))
		return nil, fmt.Errorf("unmarshal cast for movie %d: %w", movieID, err)
	}

	return cast, nil
}
