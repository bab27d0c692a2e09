package classifier

import (
	"chatbot-router/internal/route"
)

// Classifier maps raw query text to one intent.
type Classifier interface {
	Classify(text string) route.Intent
}

// KeywordClassifier classifies by ordered keyword containment.
type KeywordClassifier struct {
	table []keywordEntry
}

// Ensure KeywordClassifier implements Classifier
var _ Classifier = (*KeywordClassifier)(nil)

// New creates a KeywordClassifier with the default keyword table.
// Convention: factory function returns concrete type for internal packages.
func New() *KeywordClassifier {
	return &KeywordClassifier{
		table: keywordTable,
	}
}
