package core

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
	"github.com/vovakirdan/circuitroom-server/internal/game"
)

// outFrame mirrors the wire shape of any outbound frame.
type outFrame struct {
	Type string `json:"type"`
	From string `json:"from"`
	Text string `json:"text"`
}

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// stubResponder returns a fixed line and records every prompt it receives.
type stubResponder struct {
	mu        sync.Mutex
	reply     string
	called    int
	histories [][]ai.Turn
}

func (s *stubResponder) Reply(_ context.Context, history []ai.Turn, _ string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.called++
	s.histories = append(s.histories, append([]ai.Turn(nil), history...))
	return s.reply
}

func (s *stubResponder) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.called
}

func (s *stubResponder) lastHistory() []ai.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.histories) == 0 {
		return nil
	}
	return s.histories[len(s.histories)-1]
}

// startHub runs a hub with a short feint delay and the given responder.
func startHub(t *testing.T, responder game.Responder) *Hub {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	pipeline := game.NewPipeline(responder, 20*time.Millisecond, nopLogger())
	hub := NewHub(NewMemoryTable(), pipeline, nopLogger())
	go hub.Run(ctx)
	return hub
}

// mustFrame waits for the next frame of the wanted type, skipping others.
func mustFrame(t *testing.T, c *Client, wantType string) outFrame {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case data := <-c.Outbound():
			var f outFrame
			if err := json.Unmarshal(data, &f); err != nil {
				t.Fatalf("bad outbound frame %q: %v", data, err)
			}
			if f.Type == wantType {
				return f
			}
		case <-deadline:
			t.Fatalf("no %q frame received", wantType)
		}
	}
}

// expectNoFrame asserts that nothing arrives within the window.
func expectNoFrame(t *testing.T, c *Client, window time.Duration) {
	t.Helper()

	select {
	case data := <-c.Outbound():
		t.Fatalf("unexpected frame: %s", data)
	case <-time.After(window):
	}
}
