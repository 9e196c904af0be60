package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultCompletionsURL = "https://api.openai.com/v1/chat/completions"
	generationTimeout     = 15 * time.Second

	// Replies are short by design; the persona speaks in clipped lines.
	maxReplyTokens = 120
	temperature    = 0.8

	// historyWindow bounds how many transcript turns ride along.
	historyWindow = 6
)

var errEmptyCompletion = errors.New("empty completion")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type completionChoice struct {
	Message chatMessage `json:"message"`
}

type completionResponse struct {
	Choices []completionChoice `json:"choices"`
}

// complete calls the chat-completions endpoint with the persona prompt, a
// bounded slice of recent turns, and the current user text.
func (r *Responder) complete(ctx context.Context, history []Turn, userText string) (string, error) {
	messages := make([]chatMessage, 0, historyWindow+2)
	if r.cfg.Persona != "" {
		messages = append(messages, chatMessage{Role: "system", Content: r.cfg.Persona})
	}
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Text})
	}
	messages = append(messages, chatMessage{Role: RoleUser, Content: userText})

	body, err := json.Marshal(completionRequest{
		Model:       r.cfg.Model,
		Messages:    messages,
		MaxTokens:   maxReplyTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the log line.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode, snippet)
	}

	var decoded completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}

	if len(decoded.Choices) == 0 {
		return "", errEmptyCompletion
	}
	reply := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if reply == "" {
		return "", errEmptyCompletion
	}
	return reply, nil
}
