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

type MovieRepository interface {
	// FindByID returns the movie or nil when the id is unknown.
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	// FindAll scans the whole table, following pagination until exhausted.
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	// Create writes the full item; an existing id is silently replaced.
	Create(ctx context.Context, movie *entity.Movie) error
}

type movieRepository struct {
	db    database.DynamoAPI
	table string
	log   *zap.Logger
}

func NewMovieRepository(db database.DynamoAPI, table string, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:    db,
		table: table,
		log:   log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) FindByID(ctx context.Context, id int) (*entity.Movie, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberN{Value: strconv.Itoa(id)},
		},
	})
	if err != nil {
		r.log.Error("Failed to get movie", zap.Error(err), zap.Int("movie_id", id))
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}

	if len(out.Item) == 0 {
		return nil, nil
	}

	var movie entity.Movie
	if err := attributevalue.UnmarshalMap(out.Item, &movie); err != nil {
		r.log.Error("Failed to unmarshal movie item", zap.Error(err))
		return nil, fmt.Errorf("unmarshal movie %d: %w", id, err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	var movies []*entity.Movie
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			r.log.Error("Failed to scan movies", zap.Error(err))
			return nil, fmt.Errorf("scan movies: %w", err)
		}

		var page []*entity.Movie
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			r.log.Error("Failed to unmarshal movie items", zap.Error(err))
			return nil, fmt.Errorf("unmarshal movies: %w", err)
		}
		movies = append(movies, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return movies, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	item, err := attributevalue.MarshalMap(movie)
	if err != nil {
		return fmt.Errorf("marshal movie %d: %w", movie.ID, err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.log.Error("Failed to put movie", zap.Error(err), zap.Int("movie_id", movie.ID))
		return fmt.Errorf("put movie %d: %w", movie.ID, err)
	}

	return nil
}
