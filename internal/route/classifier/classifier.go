package classifier

import (
	"strings"

	"chatbot-router/internal/route"
)

// Classify scans the table in declaration order and returns the first
// intent with a keyword contained in the lowercased text, first-match-wins.
// Containment is substring, not whole-word: "summary" contains "sum".
// Always returns a value; unmatched text classifies as IntentUnknown.
func (c *KeywordClassifier) Classify(text string) route.Intent {
	lowered := strings.ToLower(text)

	for _, entry := range c.table {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.intent
			}
		}
	}

	return route.IntentUnknown
}
