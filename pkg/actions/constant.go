package actions

// Canned action content.
const (
	ForecastTemplate = "Weather for %s: 31°C, partly cloudy, light breeze."

	CacheJoke = "Why did the developer go broke? Because they used up all their cache!"
)
