package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taalpal/internal/models"
	"taalpal/internal/progress"
	"taalpal/internal/repository"
)

// fakeProgressStore is an in-memory ProgressStore with the same version
// semantics as the Mongo repository: Insert fails with a conflict when
// the user already has a document, Replace only matches the version it
// was read at. conflictsLeft forces that many artificial write conflicts
// before writes start succeeding.
type fakeProgressStore struct {
	docs          map[string]*models.Progress
	conflictsLeft int
	inserts       int
	replaces      int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{docs: map[string]*models.Progress{}}
}

func cloneProgress(p *models.Progress) *models.Progress {
	out := *p
	out.GrammarProgress = append([]models.TopicProgress(nil), p.GrammarProgress...)
	for i, tp := range out.GrammarProgress {
		out.GrammarProgress[i].LessonsProgress = append([]models.LessonProgress(nil), tp.LessonsProgress...)
	}
	out.VocabularyProgress = append([]models.TopicProgress(nil), p.VocabularyProgress...)
	for i, tp := range out.VocabularyProgress {
		out.VocabularyProgress[i].LessonsProgress = append([]models.LessonProgress(nil), tp.LessonsProgress...)
	}
	out.TestResults = append([]models.TestResultSummary(nil), p.TestResults...)
	out.Achievements = append([]models.Achievement(nil), p.Achievements...)
	return &out
}

func (s *fakeProgressStore) FindByUser(ctx context.Context, userID string) (*models.Progress, error) {
	p, ok := s.docs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneProgress(p), nil
}

func (s *fakeProgressStore) Insert(ctx context.Context, p *models.Progress) error {
	s.inserts++
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		// Simulates losing the unique-index race: another writer
		// inserted the document first.
		s.docs[p.UserID] = cloneProgress(p)
		s.docs[p.UserID].Version = 1
		return repository.ErrVersionConflict
	}
	if _, ok := s.docs[p.UserID]; ok {
		return repository.ErrVersionConflict
	}
	p.Version = 1
	s.docs[p.UserID] = cloneProgress(p)
	return nil
}

func (s *fakeProgressStore) Replace(ctx context.Context, p *models.Progress) error {
	s.replaces++
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return repository.ErrVersionConflict
	}
	stored, ok := s.docs[p.UserID]
	if !ok || stored.Version != p.Version {
		return repository.ErrVersionConflict
	}
	p.Version++
	s.docs[p.UserID] = cloneProgress(p)
	return nil
}

func lessonEvent() progress.LessonCompletion {
	return progress.LessonCompletion{
		TopicID:   "werkwoorden-present",
		TopicType: models.TopicTypeGrammar,
		LessonID:  "l1",
		Score:     80,
		TimeSpent: 120,
	}
}

func TestCompleteLessonCreatesAggregateLazily(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store)

	snap, err := svc.CompleteLesson(context.Background(), "u1", lessonEvent())
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "werkwoorden-present", snap.TopicID)
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 0, store.replaces)

	stored, ok := store.docs["u1"]
	require.True(t, ok)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "A2", stored.Level)
	assert.Equal(t, 1, stored.Version)
	require.Len(t, stored.GrammarProgress, 1)
	assert.True(t, stored.GrammarProgress[0].LessonsProgress[0].Completed)
}

func TestCompleteLessonReplacesExistingAggregate(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store)

	_, err := svc.CompleteLesson(context.Background(), "u1", lessonEvent())
	require.NoError(t, err)

	ev := lessonEvent()
	ev.LessonID = "l2"
	_, err = svc.CompleteLesson(context.Background(), "u1", ev)
	require.NoError(t, err)

	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 1, store.replaces)
	assert.Equal(t, 2, store.docs["u1"].Version)
	assert.Len(t, store.docs["u1"].GrammarProgress[0].LessonsProgress, 2)
}

func TestCompleteLessonRetriesOnConflict(t *testing.T) {
	store := newFakeProgressStore()
	store.docs["u1"] = progress.New("u1", time.Now())
	store.docs["u1"].Version = 1
	store.conflictsLeft = 2
	svc := NewProgressService(store)

	_, err := svc.CompleteLesson(context.Background(), "u1", lessonEvent())
	require.NoError(t, err)
	assert.Equal(t, 3, store.replaces)
	assert.Equal(t, 2, store.docs["u1"].Version)
}

func TestCompleteLessonGivesUpAfterBoundedRetries(t *testing.T) {
	store := newFakeProgressStore()
	store.docs["u1"] = progress.New("u1", time.Now())
	store.docs["u1"].Version = 1
	store.conflictsLeft = maxWriteAttempts
	svc := NewProgressService(store)

	_, err := svc.CompleteLesson(context.Background(), "u1", lessonEvent())
	assert.ErrorIs(t, err, repository.ErrVersionConflict)
	assert.Equal(t, maxWriteAttempts, store.replaces)
}

func TestCompleteLessonInsertRaceFallsBackToReplace(t *testing.T) {
	store := newFakeProgressStore()
	store.conflictsLeft = 1
	svc := NewProgressService(store)

	_, err := svc.CompleteLesson(context.Background(), "u1", lessonEvent())
	require.NoError(t, err)
	assert.Equal(t, 1, store.inserts)
	assert.Equal(t, 1, store.replaces)
}

func TestCompleteLessonValidationAbortsBeforeWriting(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store)

	ev := lessonEvent()
	ev.LessonID = ""
	_, err := svc.CompleteLesson(context.Background(), "u1", ev)
	assert.ErrorIs(t, err, progress.ErrInvalidEvent)
	assert.Equal(t, 0, store.inserts)
	assert.Equal(t, 0, store.replaces)
	assert.Empty(t, store.docs)
}

func TestCompleteLessonRequiresUserID(t *testing.T) {
	svc := NewProgressService(newFakeProgressStore())
	_, err := svc.CompleteLesson(context.Background(), "", lessonEvent())
	assert.ErrorIs(t, err, progress.ErrInvalidEvent)
}

func TestGetProgressNotFoundPassesThrough(t *testing.T) {
	svc := NewProgressService(newFakeProgressStore())
	_, err := svc.GetProgress(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRecordActivityBumpsStreak(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store)

	out, err := svc.RecordActivity(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, out.StreakDays)
	assert.False(t, out.LastActiveDate.IsZero())
	assert.Equal(t, 1, store.docs["u1"].Version)
}

func TestUpdatePreferencesValidation(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store)

	_, err := svc.UpdatePreferences(context.Background(), "u1", models.Preferences{
		Language: "en", Difficulty: "impossible",
	})
	assert.ErrorIs(t, err, progress.ErrInvalidEvent)

	_, err = svc.UpdatePreferences(context.Background(), "u1", models.Preferences{
		Difficulty: "hard",
	})
	assert.ErrorIs(t, err, progress.ErrInvalidEvent)

	out, err := svc.UpdatePreferences(context.Background(), "u1", models.Preferences{
		Language: "nl", Difficulty: "hard", Notifications: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "nl", out.Preferences.Language)
	assert.Equal(t, "hard", store.docs["u1"].Preferences.Difficulty)
}

func TestRecordTestSummaryAppends(t *testing.T) {
	store := newFakeProgressStore()
	svc := NewProgressService(store)

	summary := models.TestResultSummary{TestID: "quick-test-a2", Score: 4, Percentage: 80, CompletedAt: time.Now()}
	require.NoError(t, svc.RecordTestSummary(context.Background(), "u1", summary, 300))

	stored := store.docs["u1"]
	require.Len(t, stored.TestResults, 1)
	assert.Equal(t, "quick-test-a2", stored.TestResults[0].TestID)
	assert.Equal(t, 300, stored.TotalStudyTime)
}
