package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"chatbot-router/internal/route"
	"chatbot-router/internal/route/classifier"
	"chatbot-router/internal/route/extractor"
	"chatbot-router/pkg/actions"
	"chatbot-router/pkg/log"
)

// implUseCase is the private implementation of route.UseCase.
type implUseCase struct {
	l          log.Logger
	classifier classifier.Classifier
	extractor  extractor.Extractor

	weather actions.WeatherService
	joke    actions.JokeService
	math    actions.MathService

	// cache memoizes RouteResult by query text. The pipeline is
	// deterministic, so a hit is indistinguishable from a fresh run.
	// Nil when disabled.
	cache *lru.Cache[string, route.RouteResult]
}

// New creates a new route UseCase implementation.
// cacheSize <= 0 disables result memoization.
func New(
	l log.Logger,
	cls classifier.Classifier,
	ext extractor.Extractor,
	weather actions.WeatherService,
	joke actions.JokeService,
	math actions.MathService,
	cacheSize int,
) *implUseCase {
	uc := &implUseCase{
		l:          l,
		classifier: cls,
		extractor:  ext,
		weather:    weather,
		joke:       joke,
		math:       math,
	}

	if cacheSize > 0 {
		// lru.New only errors on non-positive size
		uc.cache, _ = lru.New[string, route.RouteResult](cacheSize)
	}

	return uc
}
