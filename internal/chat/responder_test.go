package chat

import (
	"strings"
	"testing"
)

// fixedResponder always picks the first reply of a category so tests can
// assert on exact text.
func fixedResponder(rules []Rule) *Responder {
	r := NewResponder(rules)
	r.pick = func(n int) int { return 0 }
	return r
}

func category(t *testing.T, reply Reply) string {
	t.Helper()
	for cat, options := range replies {
		for _, option := range options {
			if option == reply {
				return cat
			}
		}
	}
	t.Fatalf("Reply %q not found in any category", reply.Dutch)
	return ""
}

func TestRespondCategories(t *testing.T) {
	r := NewResponder(nil)

	testCases := []struct {
		message string
		want    string
	}{
		{"Hallo daar!", CategoryGreetings},
		{"hoi", CategoryGreetings},
		{"Ik heb hulp nodig", CategoryHelp},
		{"kun je dit uitleggen?", CategoryHelp},
		{"Wat is een werkwoord?", CategoryGrammar},
		{"uitleg over een werkwoord graag", CategoryGrammar},
		{"wat betekent gezellig?", CategoryVocabulary},
		{"ik wil mijn woordenschat uitbreiden", CategoryVocabulary},
		{"tot ziens!", CategoryFarewell},
		{"bedankt voor je hulp vandaag, tot morgen", CategoryHelp},
		{"xyzzy", CategoryEncouragement},
		{"", CategoryEncouragement},
	}

	for _, tc := range testCases {
		t.Run(tc.message, func(t *testing.T) {
			reply := r.Respond(tc.message)
			if got := category(t, reply); got != tc.want {
				t.Errorf("Respond(%q) answered from %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestRespondIsCaseInsensitive(t *testing.T) {
	r := NewResponder(nil)
	reply := r.Respond("HALLO")
	if got := category(t, reply); got != CategoryGreetings {
		t.Errorf("Expected greetings for upper-case input, got %q", got)
	}
}

func TestRespondPriorityOrder(t *testing.T) {
	// "hallo, kun je me helpen met grammatica?" matches greetings, help
	// and grammar. Greetings comes first in the default order.
	r := NewResponder(nil)
	reply := r.Respond("hallo, kun je me helpen met grammatica?")
	if got := category(t, reply); got != CategoryGreetings {
		t.Errorf("Expected the first rule to win, got %q", got)
	}
}

func TestRespondCustomRuleOrder(t *testing.T) {
	rules := []Rule{
		{CategoryGrammar, []string{"grammatica"}},
		{CategoryGreetings, []string{"hallo"}},
	}
	r := NewResponder(rules)
	reply := r.Respond("hallo, iets over grammatica graag")
	if got := category(t, reply); got != CategoryGrammar {
		t.Errorf("Expected the reordered grammar rule to win, got %q", got)
	}
}

func TestThanksHasSingleFixedReply(t *testing.T) {
	r := NewResponder(nil)
	want := "Graag gedaan! Ik help je graag met Nederlands leren."
	for i := 0; i < 5; i++ {
		reply := r.Respond("dank je wel")
		if reply.Dutch != want {
			t.Fatalf("Expected the fixed thanks reply, got %q", reply.Dutch)
		}
	}
}

func TestReplyWithinMatchedCategory(t *testing.T) {
	r := fixedResponder(nil)
	reply := r.Respond("hallo")
	if !strings.Contains(reply.English, "Dutch") {
		t.Errorf("Unexpected greeting reply: %q", reply.English)
	}
	if reply != Replies(CategoryGreetings)[0] {
		t.Error("Expected the pinned picker to return the first greeting")
	}
}

func TestRepliesUnknownCategoryFallsBack(t *testing.T) {
	got := Replies("no-such-category")
	want := Replies(CategoryEncouragement)
	if len(got) != len(want) || got[0] != want[0] {
		t.Error("Expected unknown categories to fall back to encouragement")
	}
}

func TestSuggestionsAreBilingual(t *testing.T) {
	for i, s := range Suggestions() {
		if s.Dutch == "" || s.English == "" || s.Category == "" {
			t.Errorf("Suggestion %d is incomplete: %+v", i, s)
		}
	}
}
