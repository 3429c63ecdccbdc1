package repository

import (
	"context"

	"taalpal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepository stores graded test attempts. The collection is an
// append-only ledger: results are inserted once and never updated.
type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("test_results")}
}

func (r *ResultRepository) Create(ctx context.Context, result *models.TestResult) error {
	_, err := r.Col.InsertOne(ctx, result)
	return wrapStorageErr(err)
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.TestResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "completedAt", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer cur.Close(ctx)
	var results []models.TestResult
	for cur.Next(ctx) {
		var res models.TestResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, wrapStorageErr(cur.Err())
}

func (r *ResultRepository) FindByTest(ctx context.Context, testID string) ([]models.TestResult, error) {
	cur, err := r.Col.Find(ctx, bson.M{"testId": testID})
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer cur.Close(ctx)
	var results []models.TestResult
	for cur.Next(ctx) {
		var res models.TestResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, wrapStorageErr(cur.Err())
}
