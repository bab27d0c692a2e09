package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"chatbot-router/internal/route/classifier"
	routeHTTP "chatbot-router/internal/route/delivery/http"
	"chatbot-router/internal/route/extractor"
	routeUC "chatbot-router/internal/route/usecase"
	"chatbot-router/pkg/actions"
)

// setupRouteDomain initializes the route domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create collaborators:  svc := actions.NewSomething()
//  2. Create UseCase:        uc := mydomainUC.New(srv.l, deps...)
//  3. Create HTTP Handler:   h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:       mydomainHTTP.RegisterRoutes(api, h)
func (srv HTTPServer) setupRouteDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Classifier, extractor, action handlers
	cls := classifier.New()
	ext := extractor.New()
	weather := actions.NewSimulatedWeather()
	joke := actions.NewSimulatedJoke()
	math := actions.NewCalculator()

	// 2. UseCase
	cacheSize := 0
	if srv.cache.Enabled {
		cacheSize = srv.cache.Size
	}
	uc := routeUC.New(srv.l, cls, ext, weather, joke, math, cacheSize)

	// 3. HTTP Handler
	h := routeHTTP.New(srv.l, uc)

	// 4. Routes: registers POST /api/v1/route
	routeHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Route domain registered (cache=%v size=%d)", srv.cache.Enabled, cacheSize)
	return nil
}
