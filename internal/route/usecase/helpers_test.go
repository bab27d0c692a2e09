package usecase_test

import (
	"context"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// Counting action services to observe dispatch and cache behavior.

type countingWeather struct {
	calls int
}

func (s *countingWeather) Forecast(location string) string {
	s.calls++
	return "Weather for " + location + ": 31°C, partly cloudy, light breeze."
}

type countingJoke struct {
	calls int
}

func (s *countingJoke) Tell() string {
	s.calls++
	return "Why did the developer go broke? Because they used up all their cache!"
}

type countingMath struct {
	calls int
}

func (s *countingMath) Add(num1, num2 float64) float64 {
	s.calls++
	return num1 + num2
}
