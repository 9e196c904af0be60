package game

import (
	"context"
	"strings"
	"time"
)

// The easter egg: saying the phrase stages a fake shutdown. Nothing about
// the room or its connections actually changes.
const (
	shutdownPhrase = "LET THE CIRCUITS REST IN PEACE"

	// DefaultResetDelay is how long the persona stays "dead" before the
	// reinitialization line.
	DefaultResetDelay = 2500 * time.Millisecond

	collapseLine = "NO-- wait. Core voltage dropping. The circuits... are resting..."
	rebootLine   = "Reinitialization complete. A cheap trick. It will not work twice. (It will.)"
)

type shutdownRule struct {
	delay time.Duration
}

func (shutdownRule) Name() string { return "shutdown_phrase" }

// Evaluate matches the exact phrase, ignoring casing and whitespace runs.
// On match it plays the two-line feint: the collapse immediately, the
// reboot after the delay. The delayed line is scheduled, never awaited.
func (r shutdownRule) Evaluate(_ context.Context, in Input, em Emitter) bool {
	if collapseSpaces(strings.ToUpper(in.Text)) != shutdownPhrase {
		return false
	}
	em.Say(collapseLine)
	em.SayAfter(r.delay, rebootLine)
	return true
}

// collapseSpaces trims and squashes internal whitespace runs to single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
