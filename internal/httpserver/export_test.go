package httpserver

import "github.com/gin-gonic/gin"

// Engine exposes the underlying router so tests can attach auxiliary routes.
func (srv *HTTPServer) Engine() *gin.Engine { return srv.gin }
