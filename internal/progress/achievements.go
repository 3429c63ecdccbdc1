package progress

import (
	"time"

	"taalpal/internal/models"
)

const (
	AchievementFirstLesson   = "first-lesson"
	AchievementTopicComplete = "topic-complete"
	AchievementStreakWeek    = "streak-7"
	AchievementFirstPass     = "first-test-pass"
)

// EvaluateAchievements derives achievements from the current aggregate
// state and appends the ones not yet earned. The list is append-only and
// each achievement id is awarded at most once. The newly earned entries
// are returned so callers can publish them.
func EvaluateAchievements(p *models.Progress, now time.Time) []models.Achievement {
	var earned []models.Achievement

	award := func(id, title, description string) {
		if hasAchievement(p, id) {
			return
		}
		a := models.Achievement{
			AchievementID: id,
			Title:         title,
			Description:   description,
			EarnedAt:      now,
		}
		p.Achievements = append(p.Achievements, a)
		earned = append(earned, a)
	}

	if countCompletedLessons(p) >= 1 {
		award(AchievementFirstLesson, "First Steps", "Completed your first lesson")
	}
	if hasFullyCompletedTopic(p) {
		award(AchievementTopicComplete, "Topic Master", "Completed every lesson of a topic")
	}
	if p.StreakDays >= 7 {
		award(AchievementStreakWeek, "Week Streak", "Studied seven days in a row")
	}
	if hasPassedTest(p) {
		award(AchievementFirstPass, "Test Passed", "Passed your first test")
	}

	return earned
}

func hasAchievement(p *models.Progress, id string) bool {
	for _, a := range p.Achievements {
		if a.AchievementID == id {
			return true
		}
	}
	return false
}

func countCompletedLessons(p *models.Progress) int {
	n := 0
	for _, topics := range [][]models.TopicProgress{p.GrammarProgress, p.VocabularyProgress} {
		for _, tp := range topics {
			for _, lp := range tp.LessonsProgress {
				if lp.Completed {
					n++
				}
			}
		}
	}
	return n
}

func hasFullyCompletedTopic(p *models.Progress) bool {
	for _, topics := range [][]models.TopicProgress{p.GrammarProgress, p.VocabularyProgress} {
		for _, tp := range topics {
			if len(tp.LessonsProgress) > 0 && tp.OverallProgress >= 100 {
				return true
			}
		}
	}
	return false
}

func hasPassedTest(p *models.Progress) bool {
	// Summaries carry no pass flag; 60 is the default passing score.
	for _, tr := range p.TestResults {
		if tr.Percentage >= 60 {
			return true
		}
	}
	return false
}
