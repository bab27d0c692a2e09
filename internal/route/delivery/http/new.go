package http

import (
	"github.com/gin-gonic/gin"

	"chatbot-router/internal/route"
	"chatbot-router/pkg/log"
)

// Handler is the public interface for the route HTTP delivery layer.
type Handler interface {
	Route(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc route.UseCase
}

// New creates a new HTTP handler for the route domain.
func New(l log.Logger, uc route.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
