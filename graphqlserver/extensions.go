package graphqlserver

import (
	"context"
	"fmt"

	"companion.GO/graphql/registry"
	"companion.GO/service/chat"
	"companion.GO/service/customization"
)

func init() {
	registry.Register("ping", func(context.Context, map[string]interface{}) (interface{}, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	// {"utterance": "..."} -> intent name
	registry.Register("classify", func(_ context.Context, args map[string]interface{}) (interface{}, error) {
		u, _ := args["utterance"].(string)
		return map[string]string{"intent": string(chat.Classify(u))}, nil
	})

	// {"type": "stone"} -> "stones"
	registry.Register("categoryFor", func(_ context.Context, args map[string]interface{}) (interface{}, error) {
		s, _ := args["type"].(string)
		cat, ok := customization.CategoryFor(customization.OptionType(s))
		if !ok {
			return nil, fmt.Errorf("unknown option type: %q", s)
		}
		return map[string]string{"category": cat}, nil
	})
}
