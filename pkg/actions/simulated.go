package actions

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SimulatedWeather is a deterministic WeatherService.
// A real forecast client can replace it without touching the routing pipeline.
type SimulatedWeather struct{}

// NewSimulatedWeather creates a simulated weather service.
func NewSimulatedWeather() *SimulatedWeather {
	return &SimulatedWeather{}
}

// Forecast returns a canned forecast sentence.
// Presentation of the location (Title casing, trimming) is owned here, not by
// the router. cases.Caser carries scan state and is not safe to share across
// goroutines, so each call builds its own.
func (s *SimulatedWeather) Forecast(location string) string {
	location = strings.TrimSpace(cases.Title(language.English).String(location))
	return fmt.Sprintf(ForecastTemplate, location)
}

// SimulatedJoke is a deterministic JokeService.
type SimulatedJoke struct{}

// NewSimulatedJoke creates a simulated joke service.
func NewSimulatedJoke() *SimulatedJoke {
	return &SimulatedJoke{}
}

// Tell returns a fixed joke.
func (s *SimulatedJoke) Tell() string {
	return CacheJoke
}

// Calculator implements MathService with plain float arithmetic.
type Calculator struct{}

// NewCalculator creates a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Add returns num1 + num2.
func (s *Calculator) Add(num1, num2 float64) float64 {
	return num1 + num2
}
