package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLetterGuessClassification(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		handled bool
		want    string
	}{
		{"bare letter", "I", true, correctLine},
		{"casual phrasing", "I think it's the letter I", true, correctLine},
		{"hedged guess", "maybe it's I", true, correctLine},
		{"punctuated guess", "the letter I?", true, correctLine},
		{"repeated letter", "I I I", true, correctLine},
		{"wrong letter", "Is it E?", true, incorrectLine},
		{"wrong letter lowercase", "is it e", true, incorrectLine},
		{"two distinct letters", "the I is not E", true, incorrectLine},
		{"ambiguous letters", "X or Y", true, incorrectLine},
		{"ordinary sentence", "tell me a joke", false, ""},
		{"question", "what do you want from me", false, ""},
		{"stop-worded article", "Is it A?", false, ""},
		{"empty", "", false, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			em := &recordingEmitter{}
			handled := letterGuessRule{}.Evaluate(context.Background(), Input{Text: tc.text}, em)

			require.Equal(t, tc.handled, handled)
			if tc.handled {
				require.Equal(t, []string{tc.want}, em.lines())
			} else {
				require.Empty(t, em.lines())
			}
			require.Empty(t, em.scheduled())
		})
	}
}

func TestGuessTokensStripsNoiseAndStopWords(t *testing.T) {
	require.Equal(t, []string{"I"}, guessTokens("maybe... it's \"I\"?!"))
	require.Equal(t, []string{"TELL", "ME", "JOKE"}, guessTokens("tell me a joke"))
	require.Empty(t, guessTokens("is it the letter"))
}
