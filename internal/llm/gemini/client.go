// Package gemini implements llm.Provider against the Gemini
// generateContent REST endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/howto-cli/howto/internal/config"
	"github.com/howto-cli/howto/internal/llm"
	"github.com/howto-cli/howto/internal/logging"
)

// Gemini API structures
type Content struct {
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type GenerationConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type GenerationRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig"`
}

type Candidate struct {
	Content struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"content"`
	FinishReason string `json:"finishReason"`
}

type GenerationResponse struct {
	Candidates []Candidate `json:"candidates"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Client implements the llm.Provider interface for Gemini.
type Client struct {
	cfg    *config.Config
	client *http.Client
}

// NewClient creates a Gemini client. Only connection establishment is
// bounded by cfg.ConnectTimeout; once connected, the call may block
// until the server answers. Callers wanting an overall bound pass a
// context with a deadline.
func NewClient(cfg *config.Config) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Transport: transport},
	}
}

// Generate implements the llm.Provider interface. Failures are
// classified as *llm.TransportError or *llm.APIError; a structurally
// successful response with no extractable text yields a degraded
// reply and a nil error.
func (c *Client) Generate(ctx context.Context, promptText string) (*llm.Reply, error) {
	endpoint := strings.TrimSuffix(c.cfg.APIEndpoint, "/")
	apiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		endpoint, c.cfg.Model, c.cfg.APIKey)

	reqBody := GenerationRequest{
		Contents: []Content{
			{
				Parts: []Part{
					{Text: promptText},
				},
			},
		},
		GenerationConfig: GenerationConfig{
			MaxOutputTokens: c.cfg.MaxOutputTokens,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", apiURL, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log := logging.Get()
	start := time.Now()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &llm.TransportError{Cause: err}
	}
	defer resp.Body.Close()

	log.WithField("status", resp.StatusCode).
		WithField("elapsed", time.Since(start).Round(time.Millisecond)).
		Debug("generateContent call finished")

	var completion GenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		// Undecodable body without an error envelope: treated as a
		// textless success, not a failure.
		return &llm.Reply{Text: llm.NoResponseText, Degraded: true}, nil
	}

	if completion.Error != nil {
		return nil, &llm.APIError{
			Code:    completion.Error.Code,
			Message: completion.Error.Message,
		}
	}

	if len(completion.Candidates) == 0 ||
		len(completion.Candidates[0].Content.Parts) == 0 ||
		strings.TrimSpace(completion.Candidates[0].Content.Parts[0].Text) == "" {
		return &llm.Reply{Text: llm.NoResponseText, Degraded: true}, nil
	}

	return &llm.Reply{Text: completion.Candidates[0].Content.Parts[0].Text}, nil
}
