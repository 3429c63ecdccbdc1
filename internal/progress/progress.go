// Package progress holds the pure update rules for the per-user
// aggregate. Every function takes the aggregate plus an event and
// mutates it to the next state without touching storage, so the rules
// stay testable without a live database.
package progress

import (
	"errors"
	"fmt"
	"time"

	"taalpal/internal/models"
)

// ErrInvalidEvent marks malformed input. Nothing is applied when a
// function returns it.
var ErrInvalidEvent = errors.New("invalid progress event")

const (
	DefaultLevel      = "A2"
	DefaultLanguage   = "en"
	DefaultDifficulty = "medium"
)

// LessonCompletion is one lesson-completed event as delivered by the
// API layer. Identifiers are taken at face value; the tracker does not
// cross-check them against the content store.
type LessonCompletion struct {
	TopicID   string
	TopicType string
	LessonID  string
	Score     int
	TimeSpent int
}

func (ev LessonCompletion) validate() error {
	if ev.TopicID == "" {
		return fmt.Errorf("%w: topicId is required", ErrInvalidEvent)
	}
	if ev.LessonID == "" {
		return fmt.Errorf("%w: lessonId is required", ErrInvalidEvent)
	}
	if ev.TopicType != models.TopicTypeGrammar && ev.TopicType != models.TopicTypeVocabulary {
		return fmt.Errorf("%w: topicType must be grammar or vocabulary", ErrInvalidEvent)
	}
	if ev.Score < 0 {
		return fmt.Errorf("%w: score must not be negative", ErrInvalidEvent)
	}
	if ev.TimeSpent < 0 {
		return fmt.Errorf("%w: timeSpent must not be negative", ErrInvalidEvent)
	}
	return nil
}

// New builds a fresh aggregate for a user seen for the first time.
func New(userID string, now time.Time) *models.Progress {
	return &models.Progress{
		UserID:             userID,
		Level:              DefaultLevel,
		GrammarProgress:    []models.TopicProgress{},
		VocabularyProgress: []models.TopicProgress{},
		TestResults:        []models.TestResultSummary{},
		LastActiveDate:     now,
		Achievements:       []models.Achievement{},
		Preferences: models.Preferences{
			Language:       DefaultLanguage,
			Notifications:  true,
			StudyReminders: true,
			Difficulty:     DefaultDifficulty,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyLessonCompletion records one completion event and returns a
// snapshot of the affected topic. Completion is monotonic: a lesson that
// has been completed stays completed, while attempts, score and time
// keep accumulating on re-completion. Score follows the last write.
func ApplyLessonCompletion(p *models.Progress, ev LessonCompletion, now time.Time) (*models.TopicProgress, error) {
	if err := ev.validate(); err != nil {
		return nil, err
	}

	topics := p.TopicCollection(ev.TopicType)
	topic := findTopic(topics, ev.TopicID)
	if topic == nil {
		*topics = append(*topics, models.TopicProgress{
			TopicID:   ev.TopicID,
			TopicType: ev.TopicType,
		})
		topic = &(*topics)[len(*topics)-1]
	}

	lesson := findLesson(topic, ev.LessonID)
	if lesson == nil {
		topic.LessonsProgress = append(topic.LessonsProgress, models.LessonProgress{
			LessonID: ev.LessonID,
		})
		lesson = &topic.LessonsProgress[len(topic.LessonsProgress)-1]
	}

	lesson.Attempts++
	lesson.Completed = true
	lesson.Score = ev.Score
	lesson.TimeSpent += ev.TimeSpent
	if lesson.CompletedAt == nil {
		at := now
		lesson.CompletedAt = &at
	}

	topic.TotalTimeSpent += ev.TimeSpent
	topic.OverallProgress = OverallProgress(topic)
	topic.LastAccessedAt = now

	p.TotalStudyTime += ev.TimeSpent
	p.UpdatedAt = now

	snapshot := *topic
	return &snapshot, nil
}

// OverallProgress recomputes the completion percentage from scratch.
// A topic with no tracked lessons reports 0, not a division error.
func OverallProgress(topic *models.TopicProgress) float64 {
	total := len(topic.LessonsProgress)
	if total == 0 {
		return 0
	}
	completed := 0
	for _, lp := range topic.LessonsProgress {
		if lp.Completed {
			completed++
		}
	}
	return float64(completed) * 100 / float64(total)
}

// UpdateStreak advances the consecutive-day counter. Dates are compared
// on calendar days: one day since the last activity continues the
// streak, a longer gap restarts it at 1, and a same-day (or earlier,
// under clock skew) call changes nothing. The last-active date always
// moves to now.
func UpdateStreak(p *models.Progress, now time.Time) {
	days := daysBetween(p.LastActiveDate, now)
	switch {
	case days == 1:
		p.StreakDays++
	case days > 1:
		p.StreakDays = 1
	}
	p.LastActiveDate = now
	p.UpdatedAt = now
}

func daysBetween(from, to time.Time) int {
	f := truncateDay(from)
	t := truncateDay(to)
	return int(t.Sub(f) / (24 * time.Hour))
}

func truncateDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ApplyTestSummary appends a graded test attempt to the aggregate's
// summary list and accounts its time toward total study time.
func ApplyTestSummary(p *models.Progress, summary models.TestResultSummary, timeSpent int, now time.Time) error {
	if summary.TestID == "" {
		return fmt.Errorf("%w: testId is required", ErrInvalidEvent)
	}
	if timeSpent < 0 {
		return fmt.Errorf("%w: timeSpent must not be negative", ErrInvalidEvent)
	}
	p.TestResults = append(p.TestResults, summary)
	p.TotalStudyTime += timeSpent
	p.UpdatedAt = now
	return nil
}

func findTopic(topics *[]models.TopicProgress, topicID string) *models.TopicProgress {
	for i := range *topics {
		if (*topics)[i].TopicID == topicID {
			return &(*topics)[i]
		}
	}
	return nil
}

func findLesson(topic *models.TopicProgress, lessonID string) *models.LessonProgress {
	for i := range topic.LessonsProgress {
		if topic.LessonsProgress[i].LessonID == lessonID {
			return &topic.LessonsProgress[i]
		}
	}
	return nil
}
