package actions

// WeatherService returns a human-readable forecast for a location.
// Implementations must be pure: same location in, same sentence out.
type WeatherService interface {
	Forecast(location string) string
}

// JokeService returns a joke.
type JokeService interface {
	Tell() string
}

// MathService performs arithmetic for the add intent.
type MathService interface {
	Add(num1, num2 float64) float64
}
