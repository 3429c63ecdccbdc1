package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	QuestionMultipleChoice = "multiple-choice"
	QuestionFillBlank      = "fill-blank"
	QuestionTrueFalse      = "true-false"
	QuestionMatching       = "matching"
	QuestionOrdering       = "ordering"
)

type Question struct {
	Question      string      `bson:"question" json:"question"`
	Type          string      `bson:"type" json:"type"`
	Options       []string    `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswer interface{} `bson:"correctAnswer" json:"correctAnswer,omitempty"`
	Explanation   string      `bson:"explanation" json:"explanation"`
	Difficulty    string      `bson:"difficulty" json:"difficulty"`
	Points        int         `bson:"points" json:"points"`
	Category      string      `bson:"category,omitempty" json:"category,omitempty"`
	Tags          []string    `bson:"tags,omitempty" json:"tags,omitempty"`
	TimeLimit     int         `bson:"timeLimit" json:"timeLimit"`
	Hints         []string    `bson:"hints,omitempty" json:"hints,omitempty"`
}

type Test struct {
	ID             string     `bson:"_id,omitempty" json:"id,omitempty"`
	TestID         string     `bson:"testId" json:"testId"`
	Title          string     `bson:"title" json:"title"`
	Description    string     `bson:"description" json:"description"`
	Type           string     `bson:"type" json:"type"`
	Level          string     `bson:"level" json:"level"`
	Questions      []Question `bson:"questions" json:"questions"`
	TotalQuestions int        `bson:"totalQuestions" json:"totalQuestions"`
	TotalPoints    int        `bson:"totalPoints" json:"totalPoints"`
	TimeLimit      int        `bson:"timeLimit" json:"timeLimit"`
	PassingScore   float64    `bson:"passingScore" json:"passingScore"`
	Categories     []string   `bson:"categories,omitempty" json:"categories,omitempty"`
	Difficulty     string     `bson:"difficulty" json:"difficulty"`
	IsActive       bool       `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// SubmittedAnswer is one entry of a test submission, in question order.
type SubmittedAnswer struct {
	QuestionIndex int         `bson:"questionIndex" json:"questionIndex"`
	UserAnswer    interface{} `bson:"userAnswer" json:"userAnswer"`
	TimeSpent     int         `bson:"timeSpent" json:"timeSpent"`
}

type GradedAnswer struct {
	QuestionIndex int         `bson:"questionIndex" json:"questionIndex"`
	UserAnswer    interface{} `bson:"userAnswer" json:"userAnswer"`
	IsCorrect     bool        `bson:"isCorrect" json:"isCorrect"`
	TimeSpent     int         `bson:"timeSpent" json:"timeSpent"`
}

// TestResult is one graded attempt. Records are append-only: a retake
// produces a new document instead of touching an old one.
type TestResult struct {
	ID          string         `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string         `bson:"userId" json:"userId"`
	TestID      string         `bson:"testId" json:"testId"`
	Answers     []GradedAnswer `bson:"answers" json:"answers"`
	Score       int            `bson:"score" json:"score"`
	Percentage  float64        `bson:"percentage" json:"percentage"`
	TimeSpent   int            `bson:"timeSpent" json:"timeSpent"`
	Passed      bool           `bson:"passed" json:"passed"`
	CompletedAt time.Time      `bson:"completedAt" json:"completedAt"`
}

// NormalizeTotals recalculates the derived question and point counters.
func (t *Test) NormalizeTotals() {
	t.TotalQuestions = len(t.Questions)
	total := 0
	for _, q := range t.Questions {
		total += q.Points
	}
	t.TotalPoints = total
}

// Grade scores a full submission against the test's questions. Every
// question type has exactly one comparison rule and there is no partial
// credit. A question's points are awarded at most once, whatever the
// submission repeats. A test whose questions carry zero total points
// grades to 0%.
func (t *Test) Grade(userID string, answers []SubmittedAnswer, now time.Time) *TestResult {
	result := &TestResult{
		UserID:      userID,
		TestID:      t.TestID,
		Answers:     make([]GradedAnswer, 0, len(answers)),
		CompletedAt: now,
	}

	totalPoints := 0
	for _, q := range t.Questions {
		totalPoints += q.Points
	}

	scored := make(map[int]bool, len(t.Questions))
	for _, a := range answers {
		graded := GradedAnswer{
			QuestionIndex: a.QuestionIndex,
			UserAnswer:    a.UserAnswer,
			TimeSpent:     a.TimeSpent,
		}
		if a.QuestionIndex >= 0 && a.QuestionIndex < len(t.Questions) {
			q := t.Questions[a.QuestionIndex]
			if q.IsCorrect(a.UserAnswer) {
				graded.IsCorrect = true
				if !scored[a.QuestionIndex] {
					result.Score += q.Points
				}
			}
			scored[a.QuestionIndex] = true
		}
		result.TimeSpent += a.TimeSpent
		result.Answers = append(result.Answers, graded)
	}

	if totalPoints > 0 {
		result.Percentage = float64(result.Score) * 100 / float64(totalPoints)
	}
	result.Passed = result.Percentage >= t.PassingScore
	return result
}

// IsCorrect applies the comparison rule for the question's type. Stored
// and submitted answers can arrive as different Go types depending on
// whether they were decoded from JSON or BSON, so scalars are normalized
// before comparing.
func (q *Question) IsCorrect(answer interface{}) bool {
	switch q.Type {
	case QuestionMultipleChoice, QuestionTrueFalse:
		want, okW := toNumber(q.CorrectAnswer)
		got, okG := toNumber(answer)
		return okW && okG && want == got
	case QuestionFillBlank:
		want, okW := toText(q.CorrectAnswer)
		got, okG := toText(answer)
		return okW && okG && normalizeText(want) == normalizeText(got)
	case QuestionOrdering:
		return sequencesEqual(q.CorrectAnswer, answer, true)
	case QuestionMatching:
		return sequencesEqual(q.CorrectAnswer, answer, false)
	default:
		return false
	}
}

func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}

func toText(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// canonical renders a scalar answer element in a type-insensitive form so
// that 2, int32(2) and 2.0 compare equal.
func canonical(v interface{}) string {
	if n, ok := toNumber(v); ok {
		return fmt.Sprintf("n:%g", n)
	}
	if s, ok := toText(v); ok {
		return "s:" + normalizeText(s)
	}
	return fmt.Sprintf("x:%v", v)
}

// toSlice also accepts primitive.A, the slice type the mongo driver
// decodes BSON arrays into when the target field is an interface{}.
func toSlice(v interface{}) ([]interface{}, bool) {
	switch s := v.(type) {
	case []interface{}:
		return s, true
	case primitive.A:
		return s, true
	case []string:
		out := make([]interface{}, len(s))
		for i, e := range s {
			out[i] = e
		}
		return out, true
	default:
		return nil, false
	}
}

func sequencesEqual(want, got interface{}, ordered bool) bool {
	ws, okW := toSlice(want)
	gs, okG := toSlice(got)
	if !okW || !okG || len(ws) != len(gs) {
		return false
	}
	wc := make([]string, len(ws))
	gc := make([]string, len(gs))
	for i := range ws {
		wc[i] = canonical(ws[i])
		gc[i] = canonical(gs[i])
	}
	if !ordered {
		sort.Strings(wc)
		sort.Strings(gc)
	}
	for i := range wc {
		if wc[i] != gc[i] {
			return false
		}
	}
	return true
}

// Sanitized returns a copy safe to hand to clients taking a test: the
// correct answers are stripped so the front end cannot read them.
func (t *Test) Sanitized() *Test {
	out := *t
	out.Questions = make([]Question, len(t.Questions))
	for i, q := range t.Questions {
		q.CorrectAnswer = nil
		out.Questions[i] = q
	}
	return &out
}
