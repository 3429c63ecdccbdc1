package models

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func twoQuestionTest() *Test {
	return &Test{
		TestID:       "t-1",
		PassingScore: 60,
		Questions: []Question{
			{
				Question:      "What is the correct conjugation of \"zijn\" for \"ik\"?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"ben", "bent", "is", "zijn"},
				CorrectAnswer: 0,
				Points:        1,
			},
			{
				Question:      "What does \"goedemorgen\" mean?",
				Type:          QuestionMultipleChoice,
				Options:       []string{"good evening", "good afternoon", "good morning", "good night"},
				CorrectAnswer: 2,
				Points:        1,
			},
		},
	}
}

func TestGradeOneOfTwoCorrect(t *testing.T) {
	test := twoQuestionTest()
	now := time.Now()

	result := test.Grade("u1", []SubmittedAnswer{
		{QuestionIndex: 0, UserAnswer: 0, TimeSpent: 20},
		{QuestionIndex: 1, UserAnswer: 1, TimeSpent: 15},
	}, now)

	if result.Score != 1 {
		t.Errorf("Expected score 1, got %d", result.Score)
	}
	if result.Percentage != 50 {
		t.Errorf("Expected percentage 50, got %f", result.Percentage)
	}
	if result.Passed {
		t.Error("Expected passed=false with passing score 60")
	}
	if result.TimeSpent != 35 {
		t.Errorf("Expected total time 35, got %d", result.TimeSpent)
	}
	if len(result.Answers) != 2 {
		t.Fatalf("Expected 2 graded answers, got %d", len(result.Answers))
	}
	if !result.Answers[0].IsCorrect || result.Answers[1].IsCorrect {
		t.Error("Expected first answer correct and second incorrect")
	}
	if !result.CompletedAt.Equal(now) {
		t.Error("Expected completedAt to be the grading time")
	}
}

func TestGradeZeroPointsTest(t *testing.T) {
	test := &Test{
		TestID:       "empty",
		PassingScore: 60,
		Questions: []Question{
			{Type: QuestionMultipleChoice, CorrectAnswer: 0, Points: 0},
		},
	}

	result := test.Grade("u1", []SubmittedAnswer{{QuestionIndex: 0, UserAnswer: 0}}, time.Now())
	if result.Percentage != 0 {
		t.Errorf("Expected percentage 0 for a zero-point test, got %f", result.Percentage)
	}
	if result.Passed {
		t.Error("Expected passed=false for a zero-point test")
	}
}

func TestGradeNumbersDecodedDifferently(t *testing.T) {
	// JSON decodes numbers as float64, BSON as int32/int64. Either way
	// the comparison must hold.
	test := twoQuestionTest()
	test.Questions[0].CorrectAnswer = int32(0)

	result := test.Grade("u1", []SubmittedAnswer{
		{QuestionIndex: 0, UserAnswer: float64(0)},
	}, time.Now())
	if result.Score != 1 {
		t.Errorf("Expected int32 stored answer to match float64 submission, got score %d", result.Score)
	}
}

func TestQuestionIsCorrect(t *testing.T) {
	testCases := []struct {
		name     string
		question Question
		answer   interface{}
		want     bool
	}{
		{"true-false match", Question{Type: QuestionTrueFalse, CorrectAnswer: 1}, float64(1), true},
		{"true-false mismatch", Question{Type: QuestionTrueFalse, CorrectAnswer: 1}, float64(0), false},
		{"fill-blank exact", Question{Type: QuestionFillBlank, CorrectAnswer: "ga"}, "ga", true},
		{"fill-blank case and spacing", Question{Type: QuestionFillBlank, CorrectAnswer: "ga"}, "  Ga ", true},
		{"fill-blank wrong word", Question{Type: QuestionFillBlank, CorrectAnswer: "ga"}, "gaat", false},
		{"fill-blank non-string", Question{Type: QuestionFillBlank, CorrectAnswer: "ga"}, 2, false},
		{"ordering in order", Question{Type: QuestionOrdering, CorrectAnswer: []string{"a", "b", "c"}}, []interface{}{"a", "b", "c"}, true},
		{"ordering out of order", Question{Type: QuestionOrdering, CorrectAnswer: []string{"a", "b", "c"}}, []interface{}{"b", "a", "c"}, false},
		{"ordering wrong length", Question{Type: QuestionOrdering, CorrectAnswer: []string{"a", "b", "c"}}, []interface{}{"a", "b"}, false},
		{"matching any order", Question{Type: QuestionMatching, CorrectAnswer: []string{"de:hond", "het:huis"}}, []interface{}{"het:huis", "de:hond"}, true},
		{"matching wrong pair", Question{Type: QuestionMatching, CorrectAnswer: []string{"de:hond", "het:huis"}}, []interface{}{"het:hond", "de:huis"}, false},
		{"unknown type never correct", Question{Type: "essay", CorrectAnswer: "x"}, "x", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.question.IsCorrect(tc.answer); got != tc.want {
				t.Errorf("IsCorrect(%v) = %v, want %v", tc.answer, got, tc.want)
			}
		})
	}
}

func TestGradeOrderingAfterBSONRoundTrip(t *testing.T) {
	// Stored in Mongo, the []string correct answer comes back as
	// primitive.A. Grading must still match it.
	test := &Test{
		TestID:       "ordering",
		PassingScore: 60,
		Questions: []Question{
			{
				Question:      "Put the days in order",
				Type:          QuestionOrdering,
				CorrectAnswer: []string{"maandag", "dinsdag", "woensdag"},
				Points:        1,
			},
		},
	}

	raw, err := bson.Marshal(test)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var stored Test
	if err := bson.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	result := stored.Grade("u1", []SubmittedAnswer{
		{QuestionIndex: 0, UserAnswer: []interface{}{"maandag", "dinsdag", "woensdag"}},
	}, time.Now())
	if result.Score != 1 {
		t.Errorf("Expected the stored ordering answer to match, got score %d", result.Score)
	}
	if !result.Passed {
		t.Error("Expected a fully correct submission to pass")
	}

	wrong := stored.Grade("u1", []SubmittedAnswer{
		{QuestionIndex: 0, UserAnswer: []interface{}{"woensdag", "dinsdag", "maandag"}},
	}, time.Now())
	if wrong.Score != 0 {
		t.Errorf("Expected the reversed order to score 0, got %d", wrong.Score)
	}
}

func TestGradeScoresEachQuestionOnce(t *testing.T) {
	test := twoQuestionTest()
	result := test.Grade("u1", []SubmittedAnswer{
		{QuestionIndex: 0, UserAnswer: 0},
		{QuestionIndex: 0, UserAnswer: 0},
	}, time.Now())
	if result.Score != 1 {
		t.Errorf("Expected a repeated correct answer to score once, got %d", result.Score)
	}
	if result.Percentage != 50 {
		t.Errorf("Expected percentage 50, got %f", result.Percentage)
	}
	if result.Passed {
		t.Error("Expected passed=false, one distinct question is below passing score")
	}
}

func TestGradeIgnoresOutOfRangeIndex(t *testing.T) {
	test := twoQuestionTest()
	result := test.Grade("u1", []SubmittedAnswer{
		{QuestionIndex: 7, UserAnswer: 0, TimeSpent: 5},
	}, time.Now())
	if result.Score != 0 {
		t.Errorf("Expected out-of-range index to score nothing, got %d", result.Score)
	}
	if len(result.Answers) != 1 || result.Answers[0].IsCorrect {
		t.Error("Expected the answer to be recorded as incorrect")
	}
}

func TestNormalizeTotals(t *testing.T) {
	test := twoQuestionTest()
	test.Questions[1].Points = 3
	test.NormalizeTotals()
	if test.TotalQuestions != 2 {
		t.Errorf("Expected totalQuestions 2, got %d", test.TotalQuestions)
	}
	if test.TotalPoints != 4 {
		t.Errorf("Expected totalPoints 4, got %d", test.TotalPoints)
	}
}

func TestSanitizedStripsAnswers(t *testing.T) {
	test := twoQuestionTest()
	clean := test.Sanitized()
	for i, q := range clean.Questions {
		if q.CorrectAnswer != nil {
			t.Errorf("Question %d still carries its correct answer", i)
		}
	}
	if test.Questions[0].CorrectAnswer == nil {
		t.Error("Sanitized must not mutate the original test")
	}
}
