// Package seed carries the initial course content loaded by cmd/seed.
// Content documents are reference data: normal traffic only reads them.
package seed

import "taalpal/internal/models"

func GrammarTopics() []models.GrammarTopic {
	return []models.GrammarTopic{
		{
			TopicID:       "werkwoorden-present",
			Title:         "Werkwoorden - Present Tense",
			Description:   "Learn how to conjugate Dutch verbs in the present tense",
			Category:      "verbs",
			Level:         "A2",
			EstimatedTime: 45,
			Tags:          []string{"verbs", "conjugation", "present-tense"},
			Lessons: []models.Lesson{
				{
					Title:   "Regular Verb Conjugation",
					Content: "Dutch regular verbs follow predictable patterns. Most verbs add -t for jij/hij/zij and -en for wij/jullie/zij.",
					Examples: []models.Example{
						{Dutch: "Ik werk", English: "I work", Pronunciation: "ik verk", Difficulty: "beginner"},
						{Dutch: "Jij werkt", English: "You work", Pronunciation: "yay verkt", Difficulty: "beginner"},
						{Dutch: "Hij werkt", English: "He works", Pronunciation: "hay verkt", Difficulty: "beginner"},
						{Dutch: "Wij werken", English: "We work", Pronunciation: "vay verken", Difficulty: "beginner"},
					},
					Exercises: []models.Exercise{
						{
							Question:      "Complete: Ik _____ elke dag. (werken)",
							Options:       []string{"werk", "werkt", "werken", "gewerkt"},
							CorrectAnswer: 0,
							Explanation:   `With "ik" (I), we use the stem of the verb: werk`,
						},
					},
					Order: 1,
				},
				{
					Title:   "Irregular Verbs - Zijn, Hebben, Gaan",
					Content: "The most important irregular verbs in Dutch are zijn (to be), hebben (to have), and gaan (to go).",
					Examples: []models.Example{
						{Dutch: "Ik ben", English: "I am", Pronunciation: "ik ben", Difficulty: "beginner"},
						{Dutch: "Ik heb", English: "I have", Pronunciation: "ik hep", Difficulty: "beginner"},
						{Dutch: "Ik ga", English: "I go", Pronunciation: "ik khah", Difficulty: "beginner"},
						{Dutch: "Jij bent", English: "You are", Pronunciation: "yay bent", Difficulty: "beginner"},
					},
					Exercises: []models.Exercise{
						{
							Question:      "Choose the correct form: Jij _____ naar school.",
							Options:       []string{"ga", "gaat", "gaan", "gegaan"},
							CorrectAnswer: 1,
							Explanation:   `With "jij" (you), "gaan" becomes "gaat"`,
						},
					},
					Order: 2,
				},
			},
		},
		{
			TopicID:       "scheidbare-werkwoorden",
			Title:         "Scheidbare Werkwoorden (Separable Verbs)",
			Description:   "Learn about Dutch separable verbs and how they work in sentences",
			Category:      "verbs",
			Level:         "A2",
			EstimatedTime: 30,
			Tags:          []string{"verbs", "separable", "word-order"},
			Lessons: []models.Lesson{
				{
					Title:   "What are Separable Verbs?",
					Content: "Separable verbs consist of a prefix and a main verb. In main clauses, the prefix goes to the end.",
					Examples: []models.Example{
						{Dutch: "Ik sta op om 7 uur", English: "I get up at 7 o'clock", Pronunciation: "ik stah op om zeven uur", Difficulty: "beginner"},
						{Dutch: "Hij belt zijn moeder op", English: "He calls his mother", Pronunciation: "hay belt zayn moeder op", Difficulty: "beginner"},
						{Dutch: "Wij gaan uit vanavond", English: "We go out tonight", Pronunciation: "vay khahn oyt vanahvont", Difficulty: "beginner"},
					},
					Exercises: []models.Exercise{
						{
							Question:      "Where does \"op\" go in: Ik _____ om 6 uur _____. (opstaan)",
							Options:       []string{"sta ... op", "opstaan", "op ... sta", "staan ... op"},
							CorrectAnswer: 0,
							Explanation:   `In main clauses, separable verbs split: "sta" stays with the subject, "op" goes to the end`,
						},
					},
					Order: 1,
				},
			},
		},
		{
			TopicID:       "hoofdzin",
			Title:         "Hoofdzin (Main Clause Structure)",
			Description:   "Master the basic word order in Dutch main clauses",
			Category:      "sentence-structure",
			Level:         "A2",
			EstimatedTime: 40,
			Tags:          []string{"sentence-structure", "word-order", "main-clause"},
			Lessons: []models.Lesson{
				{
					Title:   "Basic Word Order: Subject + Verb + Object",
					Content: "Dutch main clauses follow the pattern: Subject + Verb + Object. The verb is always in the second position.",
					Examples: []models.Example{
						{Dutch: "Ik lees een boek", English: "I read a book", Pronunciation: "ik lays en book", Difficulty: "beginner"},
						{Dutch: "Zij eet een appel", English: "She eats an apple", Pronunciation: "zay ayt en ahpel", Difficulty: "beginner"},
						{Dutch: "Wij kopen nieuwe schoenen", English: "We buy new shoes", Pronunciation: "vay kopen neewe skhonen", Difficulty: "beginner"},
					},
					Exercises: []models.Exercise{
						{
							Question:      "Put in correct order: een / ik / drink / koffie",
							Options:       []string{"Ik drink een koffie", "Een koffie drink ik", "Drink ik een koffie", "Ik een koffie drink"},
							CorrectAnswer: 0,
							Explanation:   "Main clause order: Subject (Ik) + Verb (drink) + Object (een koffie)",
						},
					},
					Order: 1,
				},
			},
		},
	}
}

func VocabularyTopics() []models.VocabularyTopic {
	return []models.VocabularyTopic{
		{
			TopicID:       "groeten",
			Title:         "Groeten (Greetings)",
			Description:   "Essential Dutch greetings for daily conversation",
			Category:      "greetings",
			Level:         "A2",
			Icon:          "👋",
			Color:         "#f59e0b",
			EstimatedTime: 20,
			Tags:          []string{"greetings", "social", "basic", "conversation"},
			Words: []models.Word{
				{Dutch: "hallo", English: "hello", Pronunciation: "halo", PartOfSpeech: "interjection", Difficulty: "beginner", Frequency: 10,
					Examples: []models.WordExample{{Dutch: "Hallo, hoe gaat het?", English: "Hello, how are you?"}}},
				{Dutch: "goedemorgen", English: "good morning", Pronunciation: "khude-morgen", PartOfSpeech: "interjection", Difficulty: "beginner", Frequency: 9,
					Examples: []models.WordExample{{Dutch: "Goedemorgen allemaal!", English: "Good morning everyone!"}}},
				{Dutch: "goedemiddag", English: "good afternoon", Pronunciation: "khude-midakh", PartOfSpeech: "interjection", Difficulty: "beginner", Frequency: 8,
					Examples: []models.WordExample{{Dutch: "Goedemiddag meneer", English: "Good afternoon sir"}}},
				{Dutch: "tot ziens", English: "goodbye", Pronunciation: "tot zins", PartOfSpeech: "interjection", Difficulty: "beginner", Frequency: 9,
					Examples: []models.WordExample{{Dutch: "Tot ziens en bedankt!", English: "Goodbye and thank you!"}}},
				{Dutch: "dag", English: "bye", Pronunciation: "dakh", PartOfSpeech: "interjection", Difficulty: "beginner", Frequency: 10,
					Examples: []models.WordExample{{Dutch: "Dag, tot morgen!", English: "Bye, see you tomorrow!"}}},
			},
		},
		{
			TopicID:       "klokkijken",
			Title:         "Klokkijken (Telling Time)",
			Description:   "Learn how to tell time in Dutch",
			Category:      "time-dates",
			Level:         "A2",
			Icon:          "🕐",
			Color:         "#10b981",
			EstimatedTime: 25,
			Tags:          []string{"time", "clock", "numbers"},
			Words: []models.Word{
				{Dutch: "het uur", English: "hour", Pronunciation: "het uur", PartOfSpeech: "noun", Gender: "het", Difficulty: "beginner", Frequency: 8,
					Examples: []models.WordExample{{Dutch: "Het is één uur", English: "It is one o'clock"}}},
				{Dutch: "de minuut", English: "minute", Pronunciation: "de minuut", PartOfSpeech: "noun", Gender: "de", Plural: "minuten", Difficulty: "beginner", Frequency: 8,
					Examples: []models.WordExample{{Dutch: "Vijf minuten over drie", English: "Five minutes past three"}}},
				{Dutch: "half", English: "half", Pronunciation: "half", PartOfSpeech: "adjective", Difficulty: "beginner", Frequency: 9,
					Examples: []models.WordExample{{Dutch: "Het is half drie", English: "It is half past two (2:30)"}}},
				{Dutch: "kwart", English: "quarter", Pronunciation: "kvart", PartOfSpeech: "noun", Gender: "het", Difficulty: "beginner", Frequency: 7,
					Examples: []models.WordExample{{Dutch: "Kwart over vier", English: "Quarter past four"}}},
			},
		},
	}
}

func Tests() []models.Test {
	return []models.Test{
		{
			TestID:       "quick-test-a2",
			Title:        "Quick A2 Test",
			Description:  "A quick assessment of your A2 Dutch skills",
			Type:         "quick",
			Level:        "A2",
			TimeLimit:    10,
			PassingScore: 60,
			Categories:   []string{"grammar", "vocabulary"},
			Difficulty:   "medium",
			Questions: []models.Question{
				{
					Question:      `What is the correct conjugation of "zijn" for "ik"?`,
					Type:          models.QuestionMultipleChoice,
					Options:       []string{"ben", "bent", "is", "zijn"},
					CorrectAnswer: 0,
					Explanation:   `"Ik ben" is the correct form of "zijn" (to be) for first person singular.`,
					Difficulty:    "easy",
					Points:        1,
					Category:      "grammar",
					Tags:          []string{"verbs", "conjugation"},
					TimeLimit:     30,
				},
				{
					Question: "Choose the correct word order:",
					Type:     models.QuestionMultipleChoice,
					Options: []string{
						"Ik ga morgen naar school",
						"Morgen ik ga naar school",
						"Naar school ik ga morgen",
						"Ga ik morgen naar school",
					},
					CorrectAnswer: 0,
					Explanation:   "In a main clause, the verb comes second: Subject + Verb + rest.",
					Difficulty:    "medium",
					Points:        1,
					Category:      "grammar",
					Tags:          []string{"word-order", "sentence-structure"},
					TimeLimit:     45,
				},
				{
					Question:      `What does "goedemorgen" mean?`,
					Type:          models.QuestionMultipleChoice,
					Options:       []string{"good evening", "good afternoon", "good morning", "good night"},
					CorrectAnswer: 2,
					Explanation:   `"Goedemorgen" means "good morning" in Dutch.`,
					Difficulty:    "easy",
					Points:        1,
					Category:      "vocabulary",
					Tags:          []string{"greetings", "basic"},
					TimeLimit:     20,
				},
				{
					Question:      `Complete: "Ik _____ naar de winkel." (gaan)`,
					Type:          models.QuestionFillBlank,
					CorrectAnswer: "ga",
					Explanation:   `With "ik" (I), we use "ga" - the first person singular form of "gaan".`,
					Difficulty:    "easy",
					Points:        1,
					Category:      "grammar",
					Tags:          []string{"verbs", "conjugation"},
					TimeLimit:     30,
				},
				{
					Question:      `Which day comes after "dinsdag"?`,
					Type:          models.QuestionMultipleChoice,
					Options:       []string{"maandag", "woensdag", "donderdag", "vrijdag"},
					CorrectAnswer: 1,
					Explanation:   "After Tuesday (dinsdag) comes Wednesday (woensdag).",
					Difficulty:    "easy",
					Points:        1,
					Category:      "vocabulary",
					Tags:          []string{"days", "time"},
					TimeLimit:     25,
				},
			},
		},
		{
			TestID:       "full-test-a2",
			Title:        "Complete A2 Assessment",
			Description:  "Comprehensive test covering all A2 Dutch topics",
			Type:         "full",
			Level:        "A2",
			TimeLimit:    45,
			PassingScore: 70,
			Categories:   []string{"grammar", "vocabulary", "reading"},
			Difficulty:   "medium",
			Questions: []models.Question{
				{
					Question:      `What is the past tense of "maken" for "ik"?`,
					Type:          models.QuestionMultipleChoice,
					Options:       []string{"maakte", "maakde", "gemaakt", "maken"},
					CorrectAnswer: 0,
					Explanation:   "Maken ends in -k, so we add -te: maakte",
					Difficulty:    "medium",
					Points:        2,
					Category:      "grammar",
					Tags:          []string{"past-tense", "ovt"},
					TimeLimit:     60,
				},
				{
					Question:      `Complete with the correct separable verb: "Ik _____ om 7 uur _____." (opstaan)`,
					Type:          models.QuestionMultipleChoice,
					Options:       []string{"sta ... op", "opstaan", "op ... sta", "staan ... op"},
					CorrectAnswer: 0,
					Explanation:   `In main clauses, separable verbs split: "sta" stays with the subject, "op" goes to the end`,
					Difficulty:    "medium",
					Points:        2,
					Category:      "grammar",
					Tags:          []string{"separable-verbs", "word-order"},
					TimeLimit:     60,
				},
				{
					Question:      "Put the days in order, starting with Monday:",
					Type:          models.QuestionOrdering,
					CorrectAnswer: []string{"maandag", "dinsdag", "woensdag"},
					Explanation:   "The week starts with maandag, then dinsdag, then woensdag.",
					Difficulty:    "easy",
					Points:        1,
					Category:      "vocabulary",
					Tags:          []string{"days", "time"},
					TimeLimit:     45,
				},
				{
					Question:      "Match each noun with its article (article:noun):",
					Type:          models.QuestionMatching,
					CorrectAnswer: []string{"de:hond", "het:huis", "de:vrouw"},
					Explanation:   `"Hond" and "vrouw" take "de"; "huis" takes "het".`,
					Difficulty:    "medium",
					Points:        2,
					Category:      "grammar",
					Tags:          []string{"articles", "nouns"},
					TimeLimit:     60,
				},
			},
		},
	}
}
