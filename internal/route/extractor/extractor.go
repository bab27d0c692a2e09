package extractor

import (
	"strconv"
	"strings"

	"chatbot-router/internal/route"
)

// Extract returns the parameter set for the given intent.
// It never fails: missing data becomes a default value or an
// ErrorParams shape, per intent.
func (e *RegexExtractor) Extract(intent route.Intent, text string) route.ParameterSet {
	switch intent {
	case route.IntentWeather:
		return e.extractWeather(text)
	case route.IntentAdd:
		return e.extractAdd(text)
	default:
		// joke and unknown take no parameters
		return route.EmptyParams{}
	}
}

// extractWeather captures a location by two ordered strategies, falling
// back to route.DefaultLocation when both fail.
func (e *RegexExtractor) extractWeather(text string) route.ParameterSet {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimRight(trimmed, trailingPunctCutset)

	if m := locationAfterPreposition.FindStringSubmatch(trimmed); m != nil {
		return route.WeatherParams{Location: strings.TrimSpace(m[1])}
	}

	// The fallback only applies to multi-word queries: a single-word
	// weather query is just the intent keyword, never a location.
	// For multi-word queries the trailing run is taken as-is, even
	// when it strays into non-location words.
	if strings.ContainsAny(trimmed, " \t") {
		if m := trailingLocationRun.FindStringSubmatch(trimmed); m != nil {
			return route.WeatherParams{Location: strings.TrimSpace(m[1])}
		}
	}

	return route.WeatherParams{Location: route.DefaultLocation}
}

// extractAdd scans for numeric substrings and takes the first two in
// left-to-right order. Fewer than two yields a parameter-level error.
func (e *RegexExtractor) extractAdd(text string) route.ParameterSet {
	nums := numberPattern.FindAllString(text, -1)
	if len(nums) < 2 {
		return route.ErrorParams{Message: route.MsgAddNeedsTwoNumbers}
	}

	num1, err1 := strconv.ParseFloat(nums[0], 64)
	num2, err2 := strconv.ParseFloat(nums[1], 64)
	if err1 != nil || err2 != nil {
		// Unreachable for strings the pattern emits, but absence of
		// valid operands stays a parameter error, never a Go error.
		return route.ErrorParams{Message: route.MsgAddNeedsTwoNumbers}
	}

	return route.AddParams{Num1: num1, Num2: num2}
}
