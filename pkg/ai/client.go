// Package ai wraps the Groq OpenAI-compatible chat completions endpoint.
// It produces short seller-voice replies and classifies free-form buyer
// messages into known command intents. Without an API key every call
// falls back to a static answer so the bot keeps working unchanged.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	completionsURL = "https://api.groq.com/openai/v1/chat/completions"
	defaultModel   = "llama-3.1-8b-instant"
	requestTimeout = 20 * time.Second
)

// Client calls the Groq chat completions API. A nil client disables
// generation and classification.
type Client struct {
	apiKey string
	model  string
	http   *http.Client
	url    string
}

// New returns a Groq client, or nil when the API key is empty.
func New(apiKey, model string) *Client {
	if apiKey == "" {
		return nil
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey: apiKey,
		model:  model,
		http:   &http.Client{Timeout: requestTimeout},
		url:    completionsURL,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate produces one completion for the system/user prompt pair.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("ai: client disabled")
	}
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: completions request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai: completions returned %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("ai: empty completion")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// Intents the classifier may return. Unknown means "not a command,
// leave it to a human".
const (
	IntentUnknown   = "unknown"
	IntentGuardCode = "guard_code"
	IntentTimeLeft  = "time_left"
	IntentExtend    = "extend"
	IntentHelp      = "help"
)

// Classify maps a free-form buyer message onto a known intent. Errors
// and unparseable answers degrade to IntentUnknown.
func (c *Client) Classify(ctx context.Context, text string) string {
	if c == nil {
		return IntentUnknown
	}
	const system = "You label marketplace buyer messages. Reply with exactly one word: " +
		"guard_code, time_left, extend, help or unknown."
	answer, err := c.Generate(ctx, system, text)
	if err != nil {
		return IntentUnknown
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case IntentGuardCode, IntentTimeLeft, IntentExtend, IntentHelp:
		return strings.ToLower(strings.TrimSpace(answer))
	default:
		return IntentUnknown
	}
}
