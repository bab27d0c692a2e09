package usecase

import (
	"chatbot-router/internal/route"
)

// dispatch invokes the action handler for the intent and assembles the
// response envelope. Four mutually exclusive branches keyed by intent;
// exactly one of Result/Error is set on every path.
func (uc *implUseCase) dispatch(query string, intent route.Intent, params route.ParameterSet) route.RouteResult {
	res := route.RouteResult{
		Query:      query,
		Intent:     intent,
		Parameters: params,
	}

	switch intent {
	case route.IntentWeather:
		location := route.DefaultLocation
		if p, ok := params.(route.WeatherParams); ok && p.Location != "" {
			location = p.Location
		}
		res.Result = uc.weather.Forecast(location)

	case route.IntentJoke:
		res.Result = uc.joke.Tell()

	case route.IntentAdd:
		switch p := params.(type) {
		case route.AddParams:
			res.Result = uc.math.Add(p.Num1, p.Num2)
		case route.ErrorParams:
			res.Error = strPtr(p.Message)
		default:
			res.Error = strPtr(route.MsgAddNeedsTwoNumbers)
		}

	default:
		res.Error = strPtr(route.MsgUnknownIntent)
	}

	return res
}
