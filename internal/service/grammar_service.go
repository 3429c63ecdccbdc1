package service

import (
	"context"
	"fmt"
	"time"

	"taalpal/internal/models"
	"taalpal/internal/repository"
)

type GrammarService struct {
	Repo *repository.GrammarRepository
}

func NewGrammarService(repo *repository.GrammarRepository) *GrammarService {
	return &GrammarService{Repo: repo}
}

func (s *GrammarService) ListTopics(ctx context.Context, filter repository.ContentFilter) ([]models.GrammarTopic, error) {
	return s.Repo.FindAll(ctx, filter)
}

func (s *GrammarService) GetTopic(ctx context.Context, topicID string) (*models.GrammarTopic, error) {
	return s.Repo.FindByTopicID(ctx, topicID)
}

// GetLesson resolves a lesson by its position in the topic's order.
func (s *GrammarService) GetLesson(ctx context.Context, topicID string, order int) (*models.Lesson, error) {
	topic, err := s.Repo.FindByTopicID(ctx, topicID)
	if err != nil {
		return nil, err
	}
	for i := range topic.Lessons {
		if topic.Lessons[i].Order == order {
			return &topic.Lessons[i], nil
		}
	}
	return nil, fmt.Errorf("lesson %d of topic %s: %w", order, topicID, repository.ErrNotFound)
}

// CreateTopic is the administrative import path; normal traffic never
// writes content.
func (s *GrammarService) CreateTopic(ctx context.Context, topic *models.GrammarTopic) error {
	now := time.Now()
	topic.NormalizeTotals()
	topic.IsActive = true
	topic.CreatedAt = now
	topic.UpdatedAt = now
	return s.Repo.Create(ctx, topic)
}

// UpdateTopic replaces an existing topic's content. Identity and
// creation time come from the stored document, not the payload.
func (s *GrammarService) UpdateTopic(ctx context.Context, topicID string, topic *models.GrammarTopic) error {
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
