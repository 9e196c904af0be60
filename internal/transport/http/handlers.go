package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/core"
)

// healthHandler is the liveness probe.
// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"ts": time.Now().UnixMilli(),
	})
}

// debugHandler reports whether generation is wired up, without leaking the
// credential or prompt themselves.
// GET /api/debug
func debugHandler(responder *ai.Responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"generation": responder.Configured(),
			"persona":    responder.Persona() != "",
		})
	}
}

// roomModeHandler exposes a room's resolved mode for debugging the stations.
// Looking up a room creates it unresolved, matching join semantics.
// GET /api/room/:id/mode
func roomModeHandler(hub *core.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		mode, err := hub.ModeOf(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "hub unavailable"})
			return
		}

		var resolved *string
		if mode != core.ModeUnset {
			s := string(mode)
			resolved = &s
		}
		c.JSON(http.StatusOK, gin.H{
			"roomId": id,
			"mode":   resolved,
		})
	}
}
