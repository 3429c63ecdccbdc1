package service

import (
	"context"
	"time"

	"taalpal/internal/models"
	"taalpal/internal/repository"
)

type VocabularyService struct {
	Repo *repository.VocabularyRepository
}

func NewVocabularyService(repo *repository.VocabularyRepository) *VocabularyService {
	return &VocabularyService{Repo: repo}
}

func (s *VocabularyService) ListTopics(ctx context.Context, filter repository.ContentFilter) ([]models.VocabularyTopic, error) {
	return s.Repo.FindAll(ctx, filter)
}

func (s *VocabularyService) GetTopic(ctx context.Context, topicID string) (*models.VocabularyTopic, error) {
	return s.Repo.FindByTopicID(ctx, topicID)
}

func (s *VocabularyService) GetWords(ctx context.Context, topicID string) ([]models.Word, error) {
	topic, err := s.Repo.FindByTopicID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	return topic.Words, nil
}

func (s *VocabularyService) CreateTopic(ctx context.Context, topic *models.VocabularyTopic) error {
	now := time.Now()
	topic.NormalizeTotals()
	topic.IsActive = true
	topic.CreatedAt = now
	topic.UpdatedAt = now
	return s.Repo.Create(ctx, topic)
}

func (s *VocabularyService) UpdateTopic(ctx context.Context, topicID string, topic *models.VocabularyTopic) error {
	existing, err := s.Repo.FindByTopicID(ctx, topicID)
	if err != nil {
		return err
	}
	topic.ID = ""
	topic.TopicID = topicID
	topic.NormalizeTotals()
	topic.IsActive = existing.IsActive
	topic.CreatedAt = existing.CreatedAt
	topic.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, topicID, topic)
}
