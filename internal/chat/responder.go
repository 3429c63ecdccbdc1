// Package chat implements the keyword-matched tutor replies. The
// responder is a pure lookup: it keeps no conversation state and a
// conversation id only gets echoed back by the API layer.
package chat

import (
	"math/rand"
	"strings"
)

type Reply struct {
	Dutch   string `json:"dutch"`
	English string `json:"english"`
}

// Rule maps a reply category to the keywords that trigger it. Rules are
// evaluated in order and the first match wins, so the slice order is the
// category priority.
type Rule struct {
	Category string
	Keywords []string
}

const (
	CategoryGreetings     = "greetings"
	CategoryHelp          = "help"
	CategoryGrammar       = "grammar"
	CategoryVocabulary    = "vocabulary"
	CategoryFarewell      = "farewell"
	CategoryThanks        = "thanks"
	CategoryEncouragement = "encouragement"
)

// DefaultRules returns the priority order the product shipped with.
func DefaultRules() []Rule {
	return []Rule{
		{CategoryGreetings, []string{"hallo", "hello", "hi", "hoi"}},
		{CategoryHelp, []string{"help", "hulp", "kun je"}},
		{CategoryGrammar, []string{"grammar", "grammatica", "werkwoord", "verb"}},
		{CategoryVocabulary, []string{"vocabulary", "woordenschat", "woord", "betekent"}},
		{CategoryFarewell, []string{"bye", "dag", "tot ziens", "goodbye"}},
		{CategoryThanks, []string{"dank", "thank", "bedankt"}},
	}
}

var replies = map[string][]Reply{
	CategoryGreetings: {
		{"Hallo! Ik ben je Nederlandse AI-tutor. Hoe kan ik je helpen?", "Hello! I'm your Dutch AI tutor. How can I help you?"},
		{"Goedemorgen! Klaar om Nederlands te leren?", "Good morning! Ready to learn Dutch?"},
		{"Hoi! Leuk je te ontmoeten. Wat wil je vandaag leren?", "Hi! Nice to meet you. What would you like to learn today?"},
	},
	CategoryHelp: {
		{"Natuurlijk help ik je! Wat is je vraag?", "Of course I'll help you! What's your question?"},
		{"Ik ben er om je te helpen. Vertel me waar je moeite mee hebt.", "I'm here to help you. Tell me what you're struggling with."},
	},
	CategoryGrammar: {
		{"Grammatica kan lastig zijn, maar met oefening wordt het makkelijker!", "Grammar can be difficult, but with practice it becomes easier!"},
		{"Laten we samen deze grammaticaregel bekijken.", "Let's look at this grammar rule together."},
	},
	CategoryVocabulary: {
		{"Nieuwe woorden leren is leuk! Welk onderwerp interesseert je?", "Learning new words is fun! Which topic interests you?"},
		{"Woordenschat is heel belangrijk. Laten we samen oefenen!", "Vocabulary is very important. Let's practice together!"},
	},
	CategoryFarewell: {
		{"Tot ziens! Veel succes met je Nederlandse studie.", "Goodbye! Good luck with your Dutch studies."},
		{"Dag! Ik hoop dat ik je heb kunnen helpen.", "Bye! I hope I was able to help you."},
	},
	CategoryThanks: {
		{"Graag gedaan! Ik help je graag met Nederlands leren.", "You're welcome! I'm happy to help you learn Dutch."},
	},
	CategoryEncouragement: {
		{"Heel goed! Je Nederlands wordt steeds beter.", "Very good! Your Dutch is getting better and better."},
		{"Uitstekend! Je maakt goede vooruitgang.", "Excellent! You're making good progress."},
		{"Goed gedaan! Blijf zo doorgaan.", "Well done! Keep it up."},
	},
}

// Replies exposes the canned replies for a category. Unknown categories
// fall back to the encouragement set.
func Replies(category string) []Reply {
	if r, ok := replies[category]; ok {
		return r
	}
	return replies[CategoryEncouragement]
}

type Responder struct {
	rules []Rule
	pick  func(n int) int
}

// NewResponder builds a responder with the given rule priority. A nil or
// empty slice means the default order.
func NewResponder(rules []Rule) *Responder {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Responder{rules: rules, pick: rand.Intn}
}

// Respond matches the lower-cased message against the rules in priority
// order and returns a reply from the first matching category, or an
// encouragement when nothing matches. Replies within a category are
// chosen uniformly at random; the thanks category has a single reply.
func (r *Responder) Respond(message string) Reply {
	msg := strings.ToLower(message)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(msg, kw) {
				return r.random(Replies(rule.Category))
			}
		}
	}
	return r.random(Replies(CategoryEncouragement))
}

func (r *Responder) random(options []Reply) Reply {
	if len(options) == 1 {
		return options[0]
	}
	return options[r.pick(len(options))]
}

// Suggestion is a canned conversation starter shown by the front end.
type Suggestion struct {
	Dutch    string `json:"dutch"`
	English  string `json:"english"`
	Category string `json:"category"`
}

func Suggestions() []Suggestion {
	return []Suggestion{
		{"Hoe zeg je 'hello' in het Nederlands?", "How do you say 'hello' in Dutch?", CategoryGreetings},
		{"Kun je me helpen met werkwoorden?", "Can you help me with verbs?", CategoryGrammar},
		{"Wat betekent 'gezellig'?", "What does 'gezellig' mean?", CategoryVocabulary},
		{"Hoe maak je een vraag in het Nederlands?", "How do you make a question in Dutch?", CategoryGrammar},
		{"Kun je me Nederlandse nummers leren?", "Can you teach me Dutch numbers?", CategoryVocabulary},
	}
}
