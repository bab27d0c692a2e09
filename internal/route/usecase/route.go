package usecase

import (
	"context"

	"chatbot-router/internal/route"
)

// Route runs the full pipeline: classify -> extract -> dispatch.
// Every string input, including the empty string, yields a well-formed
// RouteResult; there is no error path through the pipeline itself.
func (uc *implUseCase) Route(ctx context.Context, input route.RouteInput) (route.RouteOutput, error) {
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(input.Query); ok {
			uc.l.Debugf(ctx, "uc.Route: cache hit for %q", input.Query)
			return route.RouteOutput{Result: cached}, nil
		}
	}

	intent := uc.classifier.Classify(input.Query)
	params := uc.extractor.Extract(intent, input.Query)
	result := uc.dispatch(input.Query, intent, params)

	uc.l.Infof(ctx, "uc.Route: query=%q intent=%s", input.Query, intent)

	if uc.cache != nil {
		uc.cache.Add(input.Query, result)
	}

	return route.RouteOutput{Result: result}, nil
}
