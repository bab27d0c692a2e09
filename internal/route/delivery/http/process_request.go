package http

import (
	"github.com/gin-gonic/gin"
)

// processRouteReq binds and validates the route request body.
// The query field must be present; an empty string is allowed and
// classifies as unknown downstream.
func (h *handler) processRouteReq(c *gin.Context) (routeReq, error) {
	var req routeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
