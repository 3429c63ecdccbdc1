package repository

import (
	"context"

	"taalpal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestRepository struct {
	Col *mongo.Collection
}

func NewTestRepository(db *mongo.Database) *TestRepository {
	return &TestRepository{Col: db.Collection("tests")}
}

// TestFilter narrows test listings. Zero values mean "any".
type TestFilter struct {
	Type  string
	Level string
}

func (r *TestRepository) FindAll(ctx context.Context, filter TestFilter) ([]models.Test, error) {
	q := bson.M{"isActive": true}
	if filter.Type != "" {
		q["type"] = filter.Type
	}
	if filter.Level != "" {
		q["level"] = filter.Level
	}
	cur, err := r.Col.Find(ctx, q)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer cur.Close(ctx)
	var tests []models.Test
	for cur.Next(ctx) {
		var t models.Test
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, wrapStorageErr(cur.Err())
}

func (r *TestRepository) FindByTestID(ctx context.Context, testID string) (*models.Test, error) {
	var test models.Test
	err := r.Col.FindOne(ctx, bson.M{"testId": testID}).Decode(&test)
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &test, nil
}

func (r *TestRepository) Upsert(ctx context.Context, test *models.Test) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"testId": test.TestID}, test, opts)
	return wrapStorageErr(err)
}
