package repository

import (
	"context"
	"errors"
	"testing"

	"movie-catalog/internal/data/entity"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(params)
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(params)
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(params)
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(params)
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(params)
}

func mustMarshalReview(t *testing.T, review entity.Review) map[string]types.AttributeValue {
	t.Helper()
	item, err := attributevalue.MarshalMap(review)
	if err != nil {
		t.Fatalf("marshal review: %v", err)
	}
	return item
}

func TestReviewFindByMovieID(t *testing.T) {
	stored := []entity.Review{
		{MovieID: 848326, ReviewID: 1001, ReviewerID: "a@b.com", ReviewDate: "2025-01-01", Content: "ok"},
		{MovieID: 848326, ReviewID: 1002, ReviewerID: "c@d.com", ReviewDate: "2025-01-02", Content: "great"},
	}

	var gotInput *dynamodb.QueryInput
	db := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			gotInput = in
			items := make([]map[string]types.AttributeValue, len(stored))
			for i, rv := range stored {
				items[i] = mustMarshalReview(t, rv)
			}
			return &dynamodb.QueryOutput{Items: items}, nil
		},
	}

	repo := NewReviewRepository(db, "MovieReviews", zap.NewNop())

	reviews, err := repo.FindByMovieID(context.Background(), 848326)
	if err != nil {
		t.Fatalf("FindByMovieID returned error: %v", err)
	}

	if got := aws.ToString(gotInput.TableName); got != "MovieReviews" {
		t.Errorf("queried table %q, want MovieReviews", got)
	}
	if got := aws.ToString(gotInput.KeyConditionExpression); got != "movieId = :movieId" {
		t.Errorf("key condition = %q", got)
	}

	if len(reviews) != 2 {
		t.Fatalf("got %d reviews, want 2", len(reviews))
	}
	if reviews[0].ReviewID != 1001 || reviews[0].Content != "ok" {
		t.Errorf("first review = %+v", reviews[0])
	}
	if reviews[1].ReviewerID != "c@d.com" {
		t.Errorf("second reviewer = %q", reviews[1].ReviewerID)
	}
}

func TestReviewFindByKey(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		db := &fakeDynamo{
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				key, ok := in.Key["reviewId"].(*types.AttributeValueMemberN)
				if !ok || key.Value != "1001" {
					t.Errorf("reviewId key = %+v", in.Key["reviewId"])
				}
				return &dynamodb.GetItemOutput{
					Item: mustMarshalReview(t, entity.Review{
						MovieID: 848326, ReviewID: 1001, ReviewerID: "a@b.com",
						ReviewDate: "2025-01-01", Content: "Hello",
					}),
				}, nil
			},
		}

		repo := NewReviewRepository(db, "MovieReviews", zap.NewNop())

		review, err := repo.FindByKey(context.Background(), 848326, 1001)
		if err != nil {
			t.Fatalf("FindByKey returned error: %v", err)
		}
		if review == nil || review.Content != "Hello" {
			t.Fatalf("review = %+v, want Content Hello", review)
		}
	})

	t.Run("absent", func(t *testing.T) {
		db := &fakeDynamo{
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return &dynamodb.GetItemOutput{}, nil
			},
		}

		repo := NewReviewRepository(db, "MovieReviews", zap.NewNop())

		review, err := repo.FindByKey(context.Background(), 1, 2)
		if err != nil {
			t.Fatalf("FindByKey returned error: %v", err)
		}
		if review != nil {
			t.Fatalf("review = %+v, want nil", review)
		}
	})

	t.Run("store fault", func(t *testing.T) {
		db := &fakeDynamo{
			getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
				return nil, errors.New("throughput exceeded")
			},
		}

		repo := NewReviewRepository(db, "MovieReviews", zap.NewNop())

		if _, err := repo.FindByKey(context.Background(), 1, 2); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

func TestReviewPut(t *testing.T) {
	var gotItem map[string]types.AttributeValue
	db := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			gotItem = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
	}

	repo := NewReviewRepository(db, "MovieReviews", zap.NewNop())

	err := repo.Put(context.Background(), &entity.Review{
		MovieID: 848326, ReviewID: 1001, ReviewerID: "a@b.com",
		ReviewDate: "2025-01-01", Content: "ok",
	})
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	// Stored attribute names must match the table's historical spelling.
	for _, attr := range []string{"movieId", "reviewId", "ReviewerId", "ReviewDate", "Content"} {
		if _, ok := gotItem[attr]; !ok {
			t.Errorf("stored item missing attribute %q", attr)
		}
	}
}

func TestReviewUpdate(t *testing.T) {
	var gotInput *dynamodb.UpdateItemInput
	db := &fakeDynamo{
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			gotInput = in
			return &dynamodb.UpdateItemOutput{}, nil
		},
	}

	repo := NewReviewRepository(db, "MovieReviews", zap.NewNop())

	t.Run("full", func(t *testing.T) {
		err := repo.Update(context.Background(), 848326, 1001, "2025-02-01", "a@b.com", "revised")
		if err != nil {
			t.Fatalf("Update returned error: %v", err)
		}

		want := "SET ReviewDate = :date, ReviewerId = :reviewer, Content = :content"
		if got := aws.ToString(gotInput.UpdateExpression); got != want {
			t.Errorf("update expression = %q, want %q", got, want)
		}
	})

	t.Run("content only", func(t *testing.T) {
		err := repo.UpdateContent(context.Background(), 848326, 1001, "revised")
		if err != nil {
			t.Fatalf("UpdateContent returned error: %v", err)
		}

		if got := aws.ToString(gotInput.UpdateExpression); got != "SET Content = :content" {
			t.Errorf("update expression = %q", got)
		}
		value, ok := gotInput.ExpressionAttributeValues[":content"].(*types.AttributeValueMemberS)
		if !ok || value.Value != "revised" {
			t.Errorf(":content = %+v", gotInput.ExpressionAttributeValues[":content"])
		}
	})
}
