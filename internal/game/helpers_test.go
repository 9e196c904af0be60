package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

type delayedLine struct {
	delay time.Duration
	text  string
}

// recordingEmitter captures persona lines instead of broadcasting them.
// Scheduled lines are recorded, not played.
type recordingEmitter struct {
	mu      sync.Mutex
	said    []string
	delayed []delayedLine
}

func (e *recordingEmitter) Say(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.said = append(e.said, text)
}

func (e *recordingEmitter) SayAfter(d time.Duration, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.delayed = append(e.delayed, delayedLine{delay: d, text: text})
}

func (e *recordingEmitter) lines() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.said...)
}

func (e *recordingEmitter) scheduled() []delayedLine {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]delayedLine(nil), e.delayed...)
}

// fakeResponder records calls and answers with a fixed line.
type fakeResponder struct {
	mu    sync.Mutex
	reply string
	seen  []string
}

func (r *fakeResponder) Reply(_ context.Context, _ []ai.Turn, userText string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, userText)
	return r.reply
}

func (r *fakeResponder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
