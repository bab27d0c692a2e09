package extractor

import (
	"chatbot-router/internal/route"
)

// Extractor derives a structured parameter set from the chosen intent
// and the raw query text.
type Extractor interface {
	Extract(intent route.Intent, text string) route.ParameterSet
}

// RegexExtractor extracts parameters with regular expressions.
type RegexExtractor struct{}

// Ensure RegexExtractor implements Extractor
var _ Extractor = (*RegexExtractor)(nil)

// New creates a RegexExtractor.
func New() *RegexExtractor {
	return &RegexExtractor{}
}
