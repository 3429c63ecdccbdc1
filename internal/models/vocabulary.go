package models

import "time"

type WordExample struct {
	Dutch   string `bson:"dutch" json:"dutch"`
	English string `bson:"english" json:"english"`
}

type Word struct {
	Dutch         string        `bson:"dutch" json:"dutch"`
	English       string        `bson:"english" json:"english"`
	Pronunciation string        `bson:"pronunciation,omitempty" json:"pronunciation,omitempty"`
	PartOfSpeech  string        `bson:"partOfSpeech" json:"partOfSpeech"`
	Gender        string        `bson:"gender,omitempty" json:"gender,omitempty"`
	Plural        string        `bson:"plural,omitempty" json:"plural,omitempty"`
	Difficulty    string        `bson:"difficulty" json:"difficulty"`
	Frequency     int           `bson:"frequency" json:"frequency"`
	Examples      []WordExample `bson:"examples,omitempty" json:"examples,omitempty"`
	Synonyms      []string      `bson:"synonyms,omitempty" json:"synonyms,omitempty"`
	Antonyms      []string      `bson:"antonyms,omitempty" json:"antonyms,omitempty"`
	ImageURL      string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	AudioURL      string        `bson:"audioUrl,omitempty" json:"audioUrl,omitempty"`
}

type VocabularyTopic struct {
	ID            string    `bson:"_id,omitempty" json:"id,omitempty"`
	TopicID       string    `bson:"topicId" json:"topicId"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Category      string    `bson:"category" json:"category"`
	Level         string    `bson:"level" json:"level"`
	Words         []Word    `bson:"words" json:"words"`
	TotalWords    int       `bson:"totalWords" json:"totalWords"`
	Icon          string    `bson:"icon,omitempty" json:"icon,omitempty"`
	Color         string    `bson:"color" json:"color"`
	EstimatedTime int       `bson:"estimatedTime,omitempty" json:"estimatedTime,omitempty"`
	Tags          []string  `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (v *VocabularyTopic) NormalizeTotals() {
	v.TotalWords = len(v.Words)
}
