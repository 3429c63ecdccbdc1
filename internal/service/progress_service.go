package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taalpal/internal/models"
	"taalpal/internal/progress"
	"taalpal/internal/repository"
)

// ProgressStore is the persistence contract the tracker needs. The
// interface exists so the read-modify-write loop can be exercised
// against a fake store in tests.
type ProgressStore interface {
	FindByUser(ctx context.Context, userID string) (*models.Progress, error)
	Insert(ctx context.Context, p *models.Progress) error
	Replace(ctx context.Context, p *models.Progress) error
}

// maxWriteAttempts bounds the optimistic-concurrency retry loop.
const maxWriteAttempts = 3

type ProgressService struct {
	Store ProgressStore
}

func NewProgressService(store ProgressStore) *ProgressService {
	return &ProgressService{Store: store}
}

func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*models.Progress, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userId is required", progress.ErrInvalidEvent)
	}
	return s.Store.FindByUser(ctx, userID)
}

// CompleteLesson applies one lesson-completion event and returns the
// updated topic snapshot. The aggregate is created lazily on first
// touch; a write conflict triggers a fresh read-apply-write round.
func (s *ProgressService) CompleteLesson(ctx context.Context, userID string, ev progress.LessonCompletion) (*models.TopicProgress, error) {
	var snapshot *models.TopicProgress
	err := s.update(ctx, userID, func(p *models.Progress, now time.Time) error {
		snap, err := progress.ApplyLessonCompletion(p, ev, now)
		if err != nil {
			return err
		}
		progress.UpdateStreak(p, now)
		progress.EvaluateAchievements(p, now)
		snapshot = snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

// RecordActivity counts a user-visible activity day toward the streak.
func (s *ProgressService) RecordActivity(ctx context.Context, userID string) (*models.Progress, error) {
	var out *models.Progress
	err := s.update(ctx, userID, func(p *models.Progress, now time.Time) error {
		progress.UpdateStreak(p, now)
		progress.EvaluateAchievements(p, now)
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RecordTestSummary folds a graded attempt into the aggregate.
func (s *ProgressService) RecordTestSummary(ctx context.Context, userID string, summary models.TestResultSummary, timeSpent int) error {
	return s.update(ctx, userID, func(p *models.Progress, now time.Time) error {
		if err := progress.ApplyTestSummary(p, summary, timeSpent, now); err != nil {
			return err
		}
		progress.UpdateStreak(p, now)
		progress.EvaluateAchievements(p, now)
		return nil
	})
}

// UpdatePreferences replaces the preferences record.
func (s *ProgressService) UpdatePreferences(ctx context.Context, userID string, prefs models.Preferences) (*models.Progress, error) {
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}
	var out *models.Progress
	err := s.update(ctx, userID, func(p *models.Progress, now time.Time) error {
		p.Preferences = prefs
		p.UpdatedAt = now
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// update is the shared read-modify-write loop. It loads (or lazily
// creates) the aggregate, applies the mutation, and writes it back under
// the version check, retrying a bounded number of times on conflicts.
// Validation failures abort before anything is written.
func (s *ProgressService) update(ctx context.Context, userID string, apply func(p *models.Progress, now time.Time) error) error {
	if userID == "" {
		return fmt.Errorf("%w: userId is required", progress.ErrInvalidEvent)
	}

	var lastErr error
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		now := time.Now()
		created := false
		p, err := s.Store.FindByUser(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			p = progress.New(userID, now)
			created = true
		} else if err != nil {
			return err
		}

		if err := apply(p, now); err != nil {
			return err
		}

		if created {
			err = s.Store.Insert(ctx, p)
		} else {
			err = s.Store.Replace(ctx, p)
		}
		if errors.Is(err, repository.ErrVersionConflict) {
			lastErr = err
			continue
		}
		return err
	}
	return lastErr
}

func validatePreferences(prefs models.Preferences) error {
	switch prefs.Difficulty {
	case "easy", "medium", "hard":
	default:
		return fmt.Errorf("%w: difficulty must be easy, medium or hard", progress.ErrInvalidEvent)
	}
	if prefs.Language == "" {
		return fmt.Errorf("%w: language is required", progress.ErrInvalidEvent)
	}
	return nil
}
