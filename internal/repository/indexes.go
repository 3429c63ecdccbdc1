package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories rely on. Safe to
// call on every boot; Mongo treats existing identical indexes as no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"grammar_topics": {
			{Keys: bson.D{{Key: "topicId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "level", Value: 1}}},
		},
		"vocabulary_topics": {
			{Keys: bson.D{{Key: "topicId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}, {Key: "level", Value: 1}}},
		},
		"tests": {
			{Keys: bson.D{{Key: "testId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "level", Value: 1}}},
		},
		"test_results": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "testId", Value: 1}}},
			{Keys: bson.D{{Key: "completedAt", Value: -1}}},
		},
		"progress": {
			// The unique user index is what makes lazy creation safe
			// under concurrency: the loser of an insert race gets a
			// duplicate-key error and retries as an update.
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "lastActiveDate", Value: -1}}},
		},
	}

	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return wrapStorageErr(err)
		}
	}
	return nil
}
