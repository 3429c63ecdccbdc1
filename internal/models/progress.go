package models

import "time"

const (
	TopicTypeGrammar    = "grammar"
	TopicTypeVocabulary = "vocabulary"
)

type LessonProgress struct {
	LessonID    string     `bson:"lessonId" json:"lessonId"`
	Completed   bool       `bson:"completed" json:"completed"`
	Score       int        `bson:"score" json:"score"`
	TimeSpent   int        `bson:"timeSpent" json:"timeSpent"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	Attempts    int        `bson:"attempts" json:"attempts"`
}

type TopicProgress struct {
	TopicID         string           `bson:"topicId" json:"topicId"`
	TopicType       string           `bson:"topicType" json:"topicType"`
	LessonsProgress []LessonProgress `bson:"lessonsProgress" json:"lessonsProgress"`
	OverallProgress float64          `bson:"overallProgress" json:"overallProgress"`
	TotalTimeSpent  int              `bson:"totalTimeSpent" json:"totalTimeSpent"`
	LastAccessedAt  time.Time        `bson:"lastAccessedAt" json:"lastAccessedAt"`
}

type TestResultSummary struct {
	TestID      string    `bson:"testId" json:"testId"`
	Score       int       `bson:"score" json:"score"`
	Percentage  float64   `bson:"percentage" json:"percentage"`
	CompletedAt time.Time `bson:"completedAt" json:"completedAt"`
}

type Achievement struct {
	AchievementID string    `bson:"achievementId" json:"achievementId"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	EarnedAt      time.Time `bson:"earnedAt" json:"earnedAt"`
}

type Preferences struct {
	Language       string `bson:"language" json:"language"`
	Notifications  bool   `bson:"notifications" json:"notifications"`
	StudyReminders bool   `bson:"studyReminders" json:"studyReminders"`
	Difficulty     string `bson:"difficulty" json:"difficulty"`
}

// Progress is the per-user aggregate root. One document per user id,
// which may be a durable account id or an anonymous session id. The
// Version field drives optimistic-concurrency writes: every persisted
// mutation bumps it and the update filter matches the version it read.
type Progress struct {
	ID                 string              `bson:"_id,omitempty" json:"id,omitempty"`
	UserID             string              `bson:"userId" json:"userId"`
	Level              string              `bson:"level" json:"level"`
	GrammarProgress    []TopicProgress     `bson:"grammarProgress" json:"grammarProgress"`
	VocabularyProgress []TopicProgress     `bson:"vocabularyProgress" json:"vocabularyProgress"`
	TestResults        []TestResultSummary `bson:"testResults" json:"testResults"`
	StreakDays         int                 `bson:"streakDays" json:"streakDays"`
	LastActiveDate     time.Time           `bson:"lastActiveDate" json:"lastActiveDate"`
	TotalStudyTime     int                 `bson:"totalStudyTime" json:"totalStudyTime"`
	Achievements       []Achievement       `bson:"achievements" json:"achievements"`
	Preferences        Preferences         `bson:"preferences" json:"preferences"`
	Version            int                 `bson:"version" json:"-"`
	CreatedAt          time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// TopicCollection returns the progress slice for a topic type, or nil
// for an unknown type.
func (p *Progress) TopicCollection(topicType string) *[]TopicProgress {
	switch topicType {
	case TopicTypeGrammar:
		return &p.GrammarProgress
	case TopicTypeVocabulary:
		return &p.VocabularyProgress
	default:
		return nil
	}
}
