package http

import (
	"chatbot-router/internal/route"
)

// --- Request DTOs ---

type routeReq struct {
	// Pointer so that presence is required but the empty string passes.
	Query *string `json:"query" binding:"required"`
}

func (r routeReq) validate() error { return nil }

func (r routeReq) toInput() route.RouteInput {
	return route.RouteInput{
		Query: *r.Query,
	}
}

// --- Response DTOs ---

// routeResp mirrors the routing envelope: result and error are
// mutually exclusive, the loser is null.
type routeResp struct {
	Query      string             `json:"query"`
	Intent     route.Intent       `json:"intent"`
	Parameters route.ParameterSet `json:"parameters"`
	Result     any                `json:"result"`
	Error      *string            `json:"error"`
}

func (h *handler) newRouteResp(out route.RouteOutput) routeResp {
	return routeResp{
		Query:      out.Result.Query,
		Intent:     out.Result.Intent,
		Parameters: out.Result.Parameters,
		Result:     out.Result.Result,
		Error:      out.Result.Error,
	}
}
