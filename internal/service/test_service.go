package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"taalpal/internal/models"
	"taalpal/internal/progress"
	"taalpal/internal/repository"
)

type TestService struct {
	Repo       *repository.TestRepository
	ResultRepo *repository.ResultRepository
	Progress   *ProgressService
}

func NewTestService(repo *repository.TestRepository, resultRepo *repository.ResultRepository, progressService *ProgressService) *TestService {
	return &TestService{Repo: repo, ResultRepo: resultRepo, Progress: progressService}
}

func (s *TestService) ListTests(ctx context.Context, filter repository.TestFilter) ([]models.Test, error) {
	tests, err := s.Repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range tests {
		tests[i] = *tests[i].Sanitized()
	}
	return tests, nil
}

func (s *TestService) GetTest(ctx context.Context, testID string) (*models.Test, error) {
	test, err := s.Repo.FindByTestID(ctx, testID)
	if err != nil {
		return nil, err
	}
	return test.Sanitized(), nil
}

// Submit grades a full attempt, appends the immutable result record and
// folds a summary into the user's progress aggregate.
func (s *TestService) Submit(ctx context.Context, testID, userID string, answers []models.SubmittedAnswer) (*models.TestResult, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", progress.ErrInvalidEvent)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: answers are required", progress.ErrInvalidEvent)
	}

	test, err := s.Repo.FindByTestID(ctx, testID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(answers))
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(test.Questions) {
			return nil, fmt.Errorf("%w: questionIndex %d out of range", progress.ErrInvalidEvent, a.QuestionIndex)
		}
		if seen[a.QuestionIndex] {
			return nil, fmt.Errorf("%w: duplicate questionIndex %d", progress.ErrInvalidEvent, a.QuestionIndex)
		}
		seen[a.QuestionIndex] = true
		if a.TimeSpent < 0 {
			return nil, fmt.Errorf("%w: timeSpent must not be negative", progress.ErrInvalidEvent)
		}
	}

	result := test.Grade(userID, answers, time.Now())
	if err := s.ResultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	summary := models.TestResultSummary{
		TestID:      result.TestID,
		Score:       result.Score,
		Percentage:  result.Percentage,
		CompletedAt: result.CompletedAt,
	}
	if err := s.Progress.RecordTestSummary(ctx, userID, summary, result.TimeSpent); err != nil {
		// The graded result is already persisted; only the derived
		// summary is missing. Log it and return the result.
		log.Printf("test %s: failed to record progress summary for user %s: %v", testID, userID, err)
	}
	return result, nil
}

func (s *TestService) GetResultsByUser(ctx context.Context, userID string) ([]models.TestResult, error) {
	return s.ResultRepo.FindByUser(ctx, userID)
}

// GetResultsByTest lists all graded attempts of one test across users.
func (s *TestService) GetResultsByTest(ctx context.Context, testID string) ([]models.TestResult, error) {
	if _, err := s.Repo.FindByTestID(ctx, testID); err != nil {
		return nil, err
	}
	return s.ResultRepo.FindByTest(ctx, testID)
}
