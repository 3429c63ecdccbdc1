package repository

import (
	"context"

	"taalpal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GrammarRepository struct {
	Col *mongo.Collection
}

func NewGrammarRepository(db *mongo.Database) *GrammarRepository {
	return &GrammarRepository{Col: db.Collection("grammar_topics")}
}

// ContentFilter narrows topic listings. Zero values mean "any".
type ContentFilter struct {
	Category string
	Level    string
}

func (f ContentFilter) query() bson.M {
	q := bson.M{"isActive": true}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Level != "" {
		q["level"] = f.Level
	}
	return q
}

func (r *GrammarRepository) FindAll(ctx context.Context, filter ContentFilter) ([]models.GrammarTopic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "title", Value: 1}})
	cur, err := r.Col.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer cur.Close(ctx)
	var topics []models.GrammarTopic
	for cur.Next(ctx) {
		var t models.GrammarTopic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, wrapStorageErr(cur.Err())
}

func (r *GrammarRepository) FindByTopicID(ctx context.Context, topicID string) (*models.GrammarTopic, error) {
	var topic models.GrammarTopic
	err := r.Col.FindOne(ctx, bson.M{"topicId": topicID}).Decode(&topic)
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &topic, nil
}

func (r *GrammarRepository) Create(ctx context.Context, topic *models.GrammarTopic) error {
	_, err := r.Col.InsertOne(ctx, topic)
	return wrapStorageErr(err)
}

func (r *GrammarRepository) Upsert(ctx context.Context, topic *models.GrammarTopic) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"topicId": topic.TopicID}, topic, opts)
	return wrapStorageErr(err)
}

func (r *GrammarRepository) Update(ctx context.Context, topicID string, topic *models.GrammarTopic) error {
	res, err := r.Col.ReplaceOne(ctx, bson.M{"topicId": topicID}, topic)
	if err != nil {
		return wrapStorageErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
