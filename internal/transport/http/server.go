package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/config"
	"github.com/vovakirdan/circuitroom-server/internal/core"
)

// NewServer builds the HTTP server: liveness probe, debug and room
// introspection endpoints, and the WebSocket relay.
func NewServer(hub *core.Hub, responder *ai.Responder, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger), CORSMiddleware())

	router.GET("/health", healthHandler)

	api := router.Group("/api")
	{
		api.GET("/debug", debugHandler(responder))
		api.GET("/room/:id/mode", roomModeHandler(hub))
	}

	// The upgrade must hijack the raw connection; gin's writer refuses a
	// hijack once it has started a response, so /ws lives on the plain mux
	// and only the REST surface goes through gin.
	mux := stdhttp.NewServeMux()
	mux.Handle("/ws", NewWSHandler(hub, logger))
	mux.Handle("/", router)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}
