package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/config"
	"github.com/vovakirdan/circuitroom-server/internal/core"
	"github.com/vovakirdan/circuitroom-server/internal/game"
)

// outFrame mirrors any outbound wire frame.
type outFrame struct {
	Type string `json:"type"`
	From string `json:"from"`
	Text string `json:"text"`
}

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()

	responder, err := ai.NewResponder(ai.Config{}, &logger)
	if err != nil {
		t.Fatalf("init responder: %v", err)
	}

	pipeline := game.NewPipeline(responder, 20*time.Millisecond, &logger)
	hub := core.NewHub(core.NewMemoryTable(), pipeline, &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, responder, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}
