package extractor

import "regexp"

var (
	// Strategy 1: a trailing clause introduced by "in", "at" or "for",
	// followed by letters/spaces/periods/hyphens, anchored to the end.
	locationAfterPreposition = regexp.MustCompile(`(?i)(?:in|at|for)\s+([a-zA-Z\s.\-]{2,})$`)

	// Strategy 2 (fallback): the longest trailing run of
	// letters/spaces/periods/hyphens, at least two characters.
	trailingLocationRun = regexp.MustCompile(`([A-Za-z][A-Za-z\s.\-]{1,})$`)

	// Optionally signed integer or decimal.
	numberPattern = regexp.MustCompile(`[-+]?(?:\d*\.\d+|\d+)`)
)

// trailingPunctCutset is stripped from the end of the query before the
// location strategies run. Periods stay: the location character class
// admits them ("St. Louis").
const trailingPunctCutset = "?!,;: \t\r\n"
