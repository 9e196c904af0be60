package game

import (
	"context"
	"strings"
	"unicode"
)

// The hidden puzzle: the secret letter is I. Guess detection has to survive
// casual phrasing ("maybe it's I", "the letter I?") without firing on every
// sentence that merely contains a one-letter word.
const (
	secretLetter = "I"

	correctLine   = "Correct. The secret letter is I."
	incorrectLine = "Incorrect. Try again."
)

// guessStopWords are articles, hedges and pronouns stripped before matching,
// including contracted forms as they appear once punctuation is gone.
var guessStopWords = map[string]struct{}{
	"IS": {}, "IT": {}, "THE": {}, "LETTER": {}, "A": {}, "AN": {}, "OF": {},
	"GUESS": {}, "MAYBE": {}, "COULD": {}, "WOULD": {}, "BE": {}, "THINK": {},
	"PERHAPS": {}, "NOT": {}, "PLEASE": {}, "THIS": {}, "THAT": {}, "ABOUT": {},
	"ARE": {}, "AM": {}, "MY": {}, "YOUR": {}, "THEIR": {},
	"ITS": {}, "IM": {}, "IVE": {}, "ILL": {}, "ISNT": {}, "DONT": {},
}

type letterGuessRule struct{}

func (letterGuessRule) Name() string { return "letter_guess" }

// Evaluate classifies the message as a letter guess, or passes. The rule
// order is deliberate and matches the shipped heuristic; do not reorder:
//  1. the stop-word-reduced text equals the secret letter, or the only
//     distinct single-letter token is the secret letter -> correct;
//  2. a single distinct wrong letter, or several distinct letters (an
//     ambiguous guess) -> incorrect;
//  3. no single-letter token at all -> not a guess, pass to generation.
func (letterGuessRule) Evaluate(_ context.Context, in Input, em Emitter) bool {
	kept := guessTokens(in.Text)

	reduced := strings.Join(kept, "")
	letters := distinctSingleLetters(kept)

	switch {
	case reduced == secretLetter:
		em.Say(correctLine)
	case len(letters) == 1:
		if _, ok := letters[secretLetter]; ok {
			em.Say(correctLine)
		} else {
			em.Say(incorrectLine)
		}
	case len(letters) > 1:
		em.Say(incorrectLine)
	default:
		return false
	}
	return true
}

// guessTokens strips everything but letters and spaces, upper-cases, splits
// on whitespace, and drops stop words.
func guessTokens(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, f := range fields {
		if _, stop := guessStopWords[f]; !stop {
			kept = append(kept, f)
		}
	}
	return kept
}

// distinctSingleLetters collects the distinct standalone one-letter tokens.
func distinctSingleLetters(tokens []string) map[string]struct{} {
	letters := make(map[string]struct{})
	for _, tok := range tokens {
		if len(tok) == 1 {
			letters[tok] = struct{}{}
		}
	}
	return letters
}
