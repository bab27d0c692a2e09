package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-router/pkg/response"
)

// Route godoc
// @Summary     Route a chatbot query
// @Description Classifies the query into an intent, extracts parameters, and runs the matching action.
// @Tags        Route
// @Accept      json
// @Produce     json
// @Param       body body routeReq true "Query to route"
// @Success     200  {object} routeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/route [POST]
func (h *handler) Route(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRouteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Route(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Route: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newRouteResp(output))
}
