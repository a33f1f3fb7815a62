package chat

import (
	"strings"

	"companion.GO/service/catalog"
)

// Intent is the coarse category an utterance is classified into.
type Intent string

const (
	IntentNecklace Intent = "necklace"
	IntentEarring  Intent = "earring"
	IntentBracelet Intent = "bracelet"
	IntentPrice    Intent = "price"
	IntentDefault  Intent = "default"
)

// Canned assistant replies.
const (
	ReplyNecklace = "We have a beautiful selection of necklaces! Our bestselling Elisa Pendant Necklace comes in various stones and metals. Here are some options:"
	ReplyEarring  = "Our earring collection includes studs, drops, and statement pieces. The Lee Drop Earrings are particularly popular. Here are some options:"
	ReplyBracelet = "From delicate chains to statement cuffs, we have bracelets for every style. The Elaina Bracelet is one of our most versatile pieces. Here are some options:"
	ReplySale     = "We have some amazing deals right now, including our special '2 for $80' promotion! Are you interested in any specific category like necklaces, earrings, or bracelets?"
	ReplyDefault  = "I can help you find the perfect piece! Here are some of our most popular collections:"

	ReplyBraceletSuggestion = "These bracelets would perfectly complement your selected pieces, creating a cohesive and personalized look:"
	ReplyGreeting           = `Hi! I'm your personal assistant. Based on your profile and preferences, here's what we have analyzed:

**🔍 Your Style Profile:**
• Classic and elegant taste
• Preference for gold-toned jewelry
• Interest in versatile pieces

**📋 Your Preferences:**
• Comfortable, everyday wear
• Layerable pieces
• Hypoallergenic materials

**✨ Special Considerations:**
• Looking for pieces that transition from day to night
• Interest in meaningful jewelry with personal significance
• Preference for adjustable pieces for perfect fit

Based on this comprehensive analysis, I've curated some perfect pieces for you:`
)

// rule fires when the lowercased utterance contains any keyword.
type rule struct {
	intent   Intent
	keywords []string
	reply    string
	groups   []string
}

var allGroups = []string{catalog.GroupNecklaces, catalog.GroupEarrings, catalog.GroupBracelets}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{IntentNecklace, []string{"necklace", "pendant"}, ReplyNecklace, []string{catalog.GroupNecklaces}},
	{IntentEarring, []string{"earring"}, ReplyEarring, []string{catalog.GroupEarrings}},
	{IntentBracelet, []string{"bracelet"}, ReplyBracelet, []string{catalog.GroupBracelets}},
	{IntentPrice, []string{"price", "cost", "deal"}, ReplySale, allGroups},
}

var fallback = rule{intent: IntentDefault, reply: ReplyDefault, groups: allGroups}

// Response is the responder's output for one utterance.
type Response struct {
	Intent          Intent                        `json:"intent"`
	Content         string                        `json:"content"`
	Recommendations []catalog.RecommendationGroup `json:"recommendations"`
}

// Responder maps utterances to canned replies over a fixed group map.
type Responder struct {
	groups map[string]catalog.RecommendationGroup
}

func NewResponder(groups map[string]catalog.RecommendationGroup) *Responder {
	return &Responder{groups: groups}
}

func match(utterance string) rule {
	lower := strings.ToLower(utterance)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r
			}
		}
	}
	return fallback
}

// Classify returns the intent of utterance.
func Classify(utterance string) Intent {
	return match(utterance).intent
}

// Respond is pure: same utterance, same Response. Groups missing from the catalog are left out.
func (r *Responder) Respond(utterance string) Response {
	m := match(utterance)
	return Response{
		Intent:          m.intent,
		Content:         m.reply,
		Recommendations: r.pick(m.groups...),
	}
}

func (r *Responder) pick(keys ...string) []catalog.RecommendationGroup {
	out := make([]catalog.RecommendationGroup, 0, len(keys))
	for _, k := range keys {
		if g, ok := r.groups[k]; ok {
			out = append(out, g)
		}
	}
	return out
}
