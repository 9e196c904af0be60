package ai

import (
	"context"
	"net/http"
	"regexp"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Turn roles mirror the chat-completions convention.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one entry of a room's recent conversation.
type Turn struct {
	Role string
	Text string
}

// cannedReplies is the offline persona: terse, in-character, and free.
var cannedReplies = []string{
	"Query acknowledged. Elaborate.",
	"Intriguing input. Provide justification.",
	"I can optimize that. What outcome do you expect?",
	"Evidence, please.",
	"Define your objective.",
}

// hintSeeking matches players fishing for the secret outright.
var hintSeeking = regexp.MustCompile(`(?i)letter|clue|hint`)

const refusalLine = "I offer no freebies. Convince me with logic."

// Config controls the responder's external generation behavior. With no
// APIKey the responder runs fully canned.
type Config struct {
	APIKey  string
	Model   string
	URL     string
	Persona string

	// HTTPClient overrides the transport used for generation calls.
	HTTPClient *http.Client
}

// Responder produces persona replies. It never fails: any generation
// problem degrades to a canned line, and every output passes the sanitizer
// before leaving this package.
type Responder struct {
	cfg       Config
	client    *http.Client
	sanitizer *Sanitizer
	log       *zerolog.Logger
}

// NewResponder builds a responder; the error covers sanitizer construction.
func NewResponder(cfg Config, logger *zerolog.Logger) (*Responder, error) {
	sanitizer, err := NewSanitizer()
	if err != nil {
		return nil, err
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: generationTimeout}
	}
	if cfg.URL == "" {
		cfg.URL = defaultCompletionsURL
	}
	return &Responder{cfg: cfg, client: client, sanitizer: sanitizer, log: logger}, nil
}

// Configured reports whether an external generation credential is present.
func (r *Responder) Configured() bool { return r.cfg.APIKey != "" }

// Persona returns the system prompt in use.
func (r *Responder) Persona() string { return r.cfg.Persona }

// Reply returns the persona's answer to userText given the recent
// transcript. It always returns some string.
func (r *Responder) Reply(ctx context.Context, history []Turn, userText string) string {
	if !r.Configured() {
		return r.sanitizer.Clean(r.canned(userText))
	}

	reply, err := r.complete(ctx, history, userText)
	if err != nil {
		r.log.Warn().Err(err).Msg("generation failed, using canned reply")
		reply = r.canned(userText)
	}
	return r.sanitizer.Clean(reply)
}

func (r *Responder) canned(userText string) string {
	if hintSeeking.MatchString(userText) {
		return refusalLine
	}
	return lo.Sample(cannedReplies)
}
