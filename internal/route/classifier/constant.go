package classifier

import (
	"chatbot-router/internal/route"
)

// keywordEntry pairs an intent with its trigger keywords.
type keywordEntry struct {
	intent   route.Intent
	keywords []string
}

// keywordTable is an ordered list, not a map: declaration order is the
// tie-break when a query contains keywords from more than one intent.
var keywordTable = []keywordEntry{
	{intent: route.IntentWeather, keywords: []string{"weather", "forecast", "temperature"}},
	{intent: route.IntentJoke, keywords: []string{"joke", "funny", "make me laugh"}},
	{intent: route.IntentAdd, keywords: []string{"add", "sum", "plus", "+"}},
}
