package chat

import (
	"strings"
	"testing"

	"companion.GO/service/catalog"
)

func groupKeys(groups []catalog.RecommendationGroup) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

func equalKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResponder_Respond(t *testing.T) {
	r := NewResponder(catalog.DefaultGroups())
	all := []string{catalog.GroupNecklaces, catalog.GroupEarrings, catalog.GroupBracelets}

	tests := []struct {
		in         string
		wantIntent Intent
		wantGroups []string
	}{
		{"Do you have any necklaces?", IntentNecklace, []string{catalog.GroupNecklaces}},
		{"a PENDANT please", IntentNecklace, []string{catalog.GroupNecklaces}},
		{"Earrings for my mom", IntentEarring, []string{catalog.GroupEarrings}},
		{"bracelet stack", IntentBracelet, []string{catalog.GroupBracelets}},
		{"what's the price?", IntentPrice, all},
		{"how much does it cost", IntentPrice, all},
		{"any deals today", IntentPrice, all},
		{"hello", IntentDefault, all},
		// first rule wins
		{"necklace and earring price", IntentNecklace, []string{catalog.GroupNecklaces}},
		{"earring or bracelet", IntentEarring, []string{catalog.GroupEarrings}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := r.Respond(tt.in)
			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %v, want %v", got.Intent, tt.wantIntent)
			}
			if keys := groupKeys(got.Recommendations); !equalKeys(keys, tt.wantGroups) {
				t.Errorf("groups = %v, want %v", keys, tt.wantGroups)
			}
			if Classify(tt.in) != tt.wantIntent {
				t.Errorf("Classify = %v, want %v", Classify(tt.in), tt.wantIntent)
			}
		})
	}
}

func TestResponder_NecklaceMentionsNecklaces(t *testing.T) {
	r := NewResponder(catalog.DefaultGroups())
	got := r.Respond("Do you have any necklaces?")
	if !strings.Contains(strings.ToLower(got.Content), "necklaces") {
		t.Errorf("Content = %q, want mention of necklaces", got.Content)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0].Title != "Signature Necklace Collection" {
		t.Errorf("Recommendations = %v, want necklace group only", groupKeys(got.Recommendations))
	}
}

func TestResponder_Pure(t *testing.T) {
	r := NewResponder(catalog.DefaultGroups())
	a := r.Respond("what's the price?")
	b := r.Respond("what's the price?")
	if a.Content != b.Content || !equalKeys(groupKeys(a.Recommendations), groupKeys(b.Recommendations)) {
		t.Error("Respond is not deterministic")
	}
}

func TestResponder_MissingGroupsSkipped(t *testing.T) {
	groups := catalog.DefaultGroups()
	delete(groups, catalog.GroupEarrings)
	r := NewResponder(groups)
	got := r.Respond("hello")
	want := []string{catalog.GroupNecklaces, catalog.GroupBracelets}
	if keys := groupKeys(got.Recommendations); !equalKeys(keys, want) {
		t.Errorf("groups = %v, want %v", keys, want)
	}
}
