package models

import "time"

type Example struct {
	Dutch         string `bson:"dutch" json:"dutch"`
	English       string `bson:"english" json:"english"`
	Pronunciation string `bson:"pronunciation,omitempty" json:"pronunciation,omitempty"`
	Difficulty    string `bson:"difficulty" json:"difficulty"`
}

type Exercise struct {
	Question      string   `bson:"question" json:"question"`
	Options       []string `bson:"options" json:"options"`
	CorrectAnswer int      `bson:"correctAnswer" json:"correctAnswer"`
	Explanation   string   `bson:"explanation" json:"explanation"`
}

type Lesson struct {
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	Examples  []Example  `bson:"examples" json:"examples"`
	Exercises []Exercise `bson:"exercises" json:"exercises"`
	Order     int        `bson:"order" json:"order"`
}

type GrammarTopic struct {
	ID            string    `bson:"_id,omitempty" json:"id,omitempty"`
	TopicID       string    `bson:"topicId" json:"topicId"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Level         string    `bson:"level" json:"level"`
	Category      string    `bson:"category" json:"category"`
	Lessons       []Lesson  `bson:"lessons" json:"lessons"`
	TotalLessons  int       `bson:"totalLessons" json:"totalLessons"`
	EstimatedTime int       `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"`
	Prerequisites []string  `bson:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	Tags          []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeTotals keeps the derived counter in sync with the embedded
// lessons. Called by the service layer before every write.
func (g *GrammarTopic) NormalizeTotals() {
	g.TotalLessons = len(g.Lessons)
}
