package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/utils/safe"
)

// Client calls an OpenAI-compatible chat completion endpoint. The result is
// tagged (OK / timed out / failed) so the caller can run its fallback
// without inspecting error strings; the engine never lets dependency health
// leak into its own contract.
type Client struct {
	endpoint   string
	apiKey     types.AIAPIKey
	model      string
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ interfaces.TextGenerator = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithModel(model string) Option {
	return func(x *Client) {
		x.model = model
	}
}

func New(endpoint string, apiKey types.AIAPIKey, options ...Option) *Client {
	client := &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		model:      "gpt-4o-mini",
		httpClient: http.DefaultClient,
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

type chatRequest struct {
	Model    string        `json:"model"`
	N        int           `json:"n"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate requests n completions for the prompt. Context deadline
// violations are reported as GenTimedOut; every other failure as GenFailed.
func (x *Client) Generate(ctx context.Context, prompt string, n int) interfaces.GenResult {
	body, err := json.Marshal(chatRequest{
		Model: x.model,
		N:     n,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return interfaces.GenResult{Status: interfaces.GenFailed, Err: goerr.Wrap(err, "failed to marshal chat request")}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, x.endpoint, bytes.NewReader(body))
	if err != nil {
		return interfaces.GenResult{Status: interfaces.GenFailed, Err: goerr.Wrap(err, "failed to build chat request")}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(x.apiKey))

	resp, err := x.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return interfaces.GenResult{Status: interfaces.GenTimedOut, Err: err}
		}
		return interfaces.GenResult{Status: interfaces.GenFailed, Err: goerr.Wrap(err, "chat request failed")}
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return interfaces.GenResult{Status: interfaces.GenFailed, Err: goerr.New("unexpected status from chat endpoint",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(raw)),
		)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return interfaces.GenResult{Status: interfaces.GenFailed, Err: goerr.Wrap(err, "failed to decode chat response")}
	}

	texts := make([]string, 0, len(parsed.Choices))
	for _, choice := range parsed.Choices {
		if choice.Message.Content != "" {
			texts = append(texts, choice.Message.Content)
		}
	}
	if len(texts) == 0 {
		return interfaces.GenResult{Status: interfaces.GenFailed, Err: goerr.New("chat response has no choices")}
	}

	return interfaces.GenResult{Status: interfaces.GenOK, Texts: texts}
}
