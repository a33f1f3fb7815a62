package chat

import "companion.GO/service/catalog"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is appended once and never edited.
type Message struct {
	Role            Role                          `json:"role"`
	Content         string                        `json:"content"`
	Recommendations []catalog.RecommendationGroup `json:"recommendations,omitempty"`
}

// Suggestion is a quick-reply chip shown under the chat input.
type Suggestion struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

var suggestions = []Suggestion{
	{Text: "I'm looking for a gift", Action: "SHOW_GIFT_OPTIONS"},
	{Text: "Show me new arrivals", Action: "SHOW_NEW_ARRIVALS"},
	{Text: "What's on sale?", Action: "SHOW_SALE_ITEMS"},
	{Text: "Help me find jewelry for an occasion", Action: "SHOW_OCCASIONS"},
}

// Suggestions returns the quick replies.
func Suggestions() []Suggestion {
	return append([]Suggestion(nil), suggestions...)
}
