// Package game implements the EVIL-room intercept pipeline: an ordered rule
// list applied to the AI-side participant's messages before they reach the
// generic persona responder.
package game

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/circuitroom-server/internal/ai"
)

// Emitter is how rules speak into the room as the persona. Implementations
// must be safe to call from any goroutine: rules may answer asynchronously
// or on a timer.
type Emitter interface {
	// Say broadcasts a persona line now.
	Say(text string)
	// SayAfter schedules a persona line, fire-and-forget. The line may land
	// in a room that no longer resolves; delivery then is a no-op.
	SayAfter(d time.Duration, text string)
}

// Responder generates a persona reply. It must always return some string.
type Responder interface {
	Reply(ctx context.Context, history []ai.Turn, userText string) string
}

// Input is one intercepted chat message plus its conversational context.
type Input struct {
	Text    string
	History []ai.Turn
}

// Rule inspects an input and either handles it (stopping the pipeline) or
// passes it along.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, in Input, em Emitter) bool
}

// Pipeline evaluates rules in order; the first rule to handle an input
// short-circuits the rest. The final rule always handles, so every input
// produces exactly one path.
type Pipeline struct {
	rules []Rule
	log   *zerolog.Logger
}

// NewPipeline wires the fixed rule order: shutdown phrase, then letter
// guess, then generated reply. resetDelay controls the feint's second line;
// use DefaultResetDelay outside of tests.
func NewPipeline(responder Responder, resetDelay time.Duration, logger *zerolog.Logger) *Pipeline {
	return &Pipeline{
		rules: []Rule{
			shutdownRule{delay: resetDelay},
			letterGuessRule{},
			replyRule{responder: responder},
		},
		log: logger,
	}
}

// Dispatch runs the input through the rules. It never blocks on generation
// or timers; those re-enter through the emitter.
func (p *Pipeline) Dispatch(ctx context.Context, in Input, em Emitter) {
	for _, rule := range p.rules {
		if rule.Evaluate(ctx, in, em) {
			p.log.Debug().Str("rule", rule.Name()).Msg("message intercepted")
			return
		}
	}
}
