package repository

import (
	"context"

	"taalpal/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VocabularyRepository struct {
	Col *mongo.Collection
}

func NewVocabularyRepository(db *mongo.Database) *VocabularyRepository {
	return &VocabularyRepository{Col: db.Collection("vocabulary_topics")}
}

func (r *VocabularyRepository) FindAll(ctx context.Context, filter ContentFilter) ([]models.VocabularyTopic, error) {
	opts := options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "title", Value: 1}})
	cur, err := r.Col.Find(ctx, filter.query(), opts)
	if err != nil {
		return nil, wrapStorageErr(err)
	}
	defer cur.Close(ctx)
	var topics []models.VocabularyTopic
	for cur.Next(ctx) {
		var t models.VocabularyTopic
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, wrapStorageErr(cur.Err())
}

func (r *VocabularyRepository) FindByTopicID(ctx context.Context, topicID string) (*models.VocabularyTopic, error) {
	var topic models.VocabularyTopic
	err := r.Col.FindOne(ctx, bson.M{"topicId": topicID}).Decode(&topic)
	if err != nil {
		return nil, wrapFindErr(err)
	}
	return &topic, nil
}

func (r *VocabularyRepository) Create(ctx context.Context, topic *models.VocabularyTopic) error {
	_, err := r.Col.InsertOne(ctx, topic)
	return wrapStorageErr(err)
}

func (r *VocabularyRepository) Upsert(ctx context.Context, topic *models.VocabularyTopic) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx, bson.M{"topicId": topic.TopicID}, topic, opts)
	return wrapStorageErr(err)
}

func (r *VocabularyRepository) Update(ctx context.Context, topicID string, topic *models.VocabularyTopic) error {
	res, err := r.Col.ReplaceOne(ctx, bson.M{"topicId": topicID}, topic)
	if err != nil {
		return wrapStorageErr(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
