package progress

import (
	"testing"
	"time"

	"taalpal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func completion(lessonID string) LessonCompletion {
	return LessonCompletion{
		TopicID:   "t1",
		TopicType: models.TopicTypeGrammar,
		LessonID:  lessonID,
		Score:     80,
		TimeSpent: 120,
	}
}

func TestApplyLessonCompletion(t *testing.T) {
	p := New("u1", testNow)

	snap, err := ApplyLessonCompletion(p, completion("l1"), testNow)
	require.NoError(t, err)

	assert.Equal(t, "t1", snap.TopicID)
	assert.Equal(t, float64(100), snap.OverallProgress, "single tracked lesson, completed")
	assert.Equal(t, 120, snap.TotalTimeSpent)
	assert.Equal(t, 120, p.TotalStudyTime)

	require.Len(t, p.GrammarProgress, 1)
	lesson := p.GrammarProgress[0].LessonsProgress[0]
	assert.True(t, lesson.Completed)
	assert.Equal(t, 80, lesson.Score)
	assert.Equal(t, 1, lesson.Attempts)
	require.NotNil(t, lesson.CompletedAt)
}

func TestOverallProgressAcrossLessons(t *testing.T) {
	p := New("u1", testNow)

	// Track a second lesson as not yet completed so the topic has two
	// known lessons with one done.
	_, err := ApplyLessonCompletion(p, completion("l1"), testNow)
	require.NoError(t, err)
	p.GrammarProgress[0].LessonsProgress = append(p.GrammarProgress[0].LessonsProgress, models.LessonProgress{LessonID: "l2"})
	assert.Equal(t, float64(50), OverallProgress(&p.GrammarProgress[0]))

	snap, err := ApplyLessonCompletion(p, completion("l2"), testNow)
	require.NoError(t, err)
	assert.Equal(t, float64(100), snap.OverallProgress)
	assert.Equal(t, 240, snap.TotalTimeSpent)
}

func TestOverallProgressZeroLessons(t *testing.T) {
	topic := models.TopicProgress{TopicID: "empty"}
	assert.Equal(t, float64(0), OverallProgress(&topic))
}

func TestRecompletionIsMonotonic(t *testing.T) {
	p := New("u1", testNow)

	_, err := ApplyLessonCompletion(p, completion("l1"), testNow)
	require.NoError(t, err)
	first := p.GrammarProgress[0].LessonsProgress[0]

	ev := completion("l1")
	ev.Score = 40
	later := testNow.Add(time.Hour)
	_, err = ApplyLessonCompletion(p, ev, later)
	require.NoError(t, err)

	lesson := p.GrammarProgress[0].LessonsProgress[0]
	assert.True(t, lesson.Completed, "completion never reverts")
	assert.Equal(t, 2, lesson.Attempts)
	assert.Equal(t, 40, lesson.Score, "last write wins")
	assert.Equal(t, 240, lesson.TimeSpent)
	assert.Equal(t, first.CompletedAt, lesson.CompletedAt, "first completion timestamp is kept")
}

func TestApplyLessonCompletionValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*LessonCompletion)
	}{
		{"missing topic", func(ev *LessonCompletion) { ev.TopicID = "" }},
		{"missing lesson", func(ev *LessonCompletion) { ev.LessonID = "" }},
		{"bad topic type", func(ev *LessonCompletion) { ev.TopicType = "listening" }},
		{"negative score", func(ev *LessonCompletion) { ev.Score = -1 }},
		{"negative time", func(ev *LessonCompletion) { ev.TimeSpent = -10 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New("u1", testNow)
			ev := completion("l1")
			tc.mutate(&ev)
			_, err := ApplyLessonCompletion(p, ev, testNow)
			assert.ErrorIs(t, err, ErrInvalidEvent)
			assert.Empty(t, p.GrammarProgress, "nothing applied on validation failure")
			assert.Zero(t, p.TotalStudyTime)
		})
	}
}

func TestVocabularyCollectionIsIndependent(t *testing.T) {
	p := New("u1", testNow)

	ev := completion("l1")
	ev.TopicType = models.TopicTypeVocabulary
	_, err := ApplyLessonCompletion(p, ev, testNow)
	require.NoError(t, err)

	assert.Empty(t, p.GrammarProgress)
	require.Len(t, p.VocabularyProgress, 1)
}

func TestUpdateStreak(t *testing.T) {
	cases := []struct {
		name       string
		lastActive time.Time
		start      int
		want       int
	}{
		{"next day continues", testNow.AddDate(0, 0, -1), 3, 4},
		{"gap resets", testNow.AddDate(0, 0, -5), 9, 1},
		{"same day unchanged", testNow, 3, 3},
		{"same calendar day earlier hour", testNow.Add(-6 * time.Hour), 3, 3},
		{"future date is a no-op", testNow.AddDate(0, 0, 2), 3, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New("u1", testNow)
			p.LastActiveDate = tc.lastActive
			p.StreakDays = tc.start

			UpdateStreak(p, testNow)

			assert.Equal(t, tc.want, p.StreakDays)
			assert.Equal(t, testNow, p.LastActiveDate, "last active always advances")
		})
	}
}

func TestStreakAcrossMidnight(t *testing.T) {
	p := New("u1", testNow)
	// 23:50 yesterday to 00:10 today is 20 minutes but one calendar day.
	p.LastActiveDate = time.Date(2024, 3, 9, 23, 50, 0, 0, time.UTC)
	p.StreakDays = 1

	UpdateStreak(p, time.Date(2024, 3, 10, 0, 10, 0, 0, time.UTC))
	assert.Equal(t, 2, p.StreakDays)
}

func TestApplyTestSummary(t *testing.T) {
	p := New("u1", testNow)

	summary := models.TestResultSummary{TestID: "quick-test-a2", Score: 4, Percentage: 80, CompletedAt: testNow}
	require.NoError(t, ApplyTestSummary(p, summary, 300, testNow))

	require.Len(t, p.TestResults, 1)
	assert.Equal(t, summary, p.TestResults[0])
	assert.Equal(t, 300, p.TotalStudyTime)

	err := ApplyTestSummary(p, models.TestResultSummary{}, 10, testNow)
	assert.ErrorIs(t, err, ErrInvalidEvent)
}

func TestEvaluateAchievements(t *testing.T) {
	p := New("u1", testNow)

	assert.Empty(t, EvaluateAchievements(p, testNow), "fresh aggregate earns nothing")

	_, err := ApplyLessonCompletion(p, completion("l1"), testNow)
	require.NoError(t, err)

	earned := EvaluateAchievements(p, testNow)
	ids := make([]string, 0, len(earned))
	for _, a := range earned {
		ids = append(ids, a.AchievementID)
	}
	assert.Contains(t, ids, AchievementFirstLesson)
	assert.Contains(t, ids, AchievementTopicComplete, "one-lesson topic is fully complete")

	// Awards are idempotent.
	assert.Empty(t, EvaluateAchievements(p, testNow))

	p.StreakDays = 7
	earned = EvaluateAchievements(p, testNow)
	require.Len(t, earned, 1)
	assert.Equal(t, AchievementStreakWeek, earned[0].AchievementID)
}
