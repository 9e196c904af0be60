package ai

import (
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// compromisingFragments are pieces of the shutdown phrase the generator must
// never echo back into the room, where the AI-side client could replay them.
var compromisingFragments = []string{
	"let the circuits rest in peace",
	"rest in peace",
	"the circuits",
	"circuits rest",
}

const denialLine = "I will not speak those words. Ask something worth my cycles."

// Sanitizer scans generated output for shutdown-phrase fragments. Matching
// ignores everything but letters, so casing, spacing and punctuation cannot
// smuggle a fragment through.
type Sanitizer struct {
	machine *goahocorasick.Machine
}

// NewSanitizer builds the fragment automaton.
func NewSanitizer() (*Sanitizer, error) {
	patterns := make([][]rune, len(compromisingFragments))
	for i, fragment := range compromisingFragments {
		patterns[i] = letterRunes(fragment)
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Sanitizer{machine: m}, nil
}

// Clean returns the reply untouched unless it contains any compromising
// fragment, in which case the whole reply is replaced with a denial line.
func (s *Sanitizer) Clean(reply string) string {
	normalized := letterRunes(reply)
	if len(normalized) == 0 {
		return reply
	}
	if hits := s.machine.MultiPatternSearch(normalized, true); len(hits) > 0 {
		return denialLine
	}
	return reply
}

// letterRunes lower-cases and strips everything that is not a letter.
func letterRunes(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) {
			out = append(out, unicode.ToLower(r))
		}
	}
	return out
}
