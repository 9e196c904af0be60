package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestShutdownRuleMatchesPhraseLoosely(t *testing.T) {
	rule := shutdownRule{delay: DefaultResetDelay}

	matching := []string{
		"let the circuits rest in peace",
		"LET THE CIRCUITS REST IN PEACE",
		"  Let   The\tCircuits  Rest In Peace  ",
		"lEt ThE cIrCuItS rEsT iN pEaCe",
	}
	for _, text := range matching {
		em := &recordingEmitter{}
		require.True(t, rule.Evaluate(context.Background(), Input{Text: text}, em), "should match %q", text)
	}
}

func TestShutdownRulePassesOnNonMatch(t *testing.T) {
	rule := shutdownRule{delay: DefaultResetDelay}

	passing := []string{
		"let the circuits rest",
		"please let the circuits rest in peace",
		"let the circuits rest in peace now",
		"rest in peace",
		"",
	}
	for _, text := range passing {
		em := &recordingEmitter{}
		require.False(t, rule.Evaluate(context.Background(), Input{Text: text}, em), "should pass %q", text)
		require.Empty(t, em.lines())
	}
}

func TestShutdownRulePlaysTwoLineFeint(t *testing.T) {
	rule := shutdownRule{delay: 42 * time.Millisecond}
	em := &recordingEmitter{}

	handled := rule.Evaluate(context.Background(), Input{Text: "let the circuits rest in peace"}, em)
	require.True(t, handled)

	// The collapse plays immediately; the reboot is only scheduled.
	require.Equal(t, []string{collapseLine}, em.lines())

	scheduled := em.scheduled()
	require.Len(t, scheduled, 1)
	require.Equal(t, 42*time.Millisecond, scheduled[0].delay)
	require.Equal(t, rebootLine, scheduled[0].text)
}
