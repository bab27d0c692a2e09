package route

import "context"

// UseCase defines the business logic interface for the route domain.
type UseCase interface {
	// Route classifies the query, extracts parameters for the chosen
	// intent, and dispatches to the matching action handler.
	// It produces a well-formed RouteResult for any string input.
	Route(ctx context.Context, input RouteInput) (RouteOutput, error)
}
