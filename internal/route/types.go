package route

// Intent is the discrete category a query is classified into.
// It determines which action handler runs.
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentJoke    Intent = "joke"
	IntentAdd     Intent = "add"
	IntentUnknown Intent = "unknown"
)

// ParameterSet is the closed set of per-intent parameter shapes.
// Modeling the add data/error variants as distinct types makes their
// mutual exclusivity hold at compile time.
type ParameterSet interface {
	isParameterSet()
}

// WeatherParams carries the location for the weather intent.
type WeatherParams struct {
	Location string `json:"location"`
}

// AddParams carries the two operands for the add intent.
type AddParams struct {
	Num1 float64 `json:"num1"`
	Num2 float64 `json:"num2"`
}

// ErrorParams signals that extraction could not produce valid handler
// arguments. It is data, not a Go error: it flows into RouteResult.Error.
type ErrorParams struct {
	Message string `json:"error"`
}

// EmptyParams is the parameter set for intents that take no parameters.
// It marshals as {}.
type EmptyParams struct{}

func (WeatherParams) isParameterSet() {}
func (AddParams) isParameterSet()     {}
func (ErrorParams) isParameterSet()   {}
func (EmptyParams) isParameterSet()   {}

// RouteResult is the response envelope for one routed query.
// Invariant: exactly one of Result/Error is non-nil on every path.
type RouteResult struct {
	Query      string       `json:"query"`
	Intent     Intent       `json:"intent"`
	Parameters ParameterSet `json:"parameters"`
	Result     any          `json:"result"`
	Error      *string      `json:"error"`
}

// RouteInput is the input for routing a single query.
type RouteInput struct {
	Query string
}

// RouteOutput is the result of routing a single query.
type RouteOutput struct {
	Result RouteResult
}
