package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultGeminiModel   = "gemini-2.0-flash"
)

// Sampling parameters sent with every request unless disabled.
const (
	geminiTemperature     = 0.7
	geminiMaxOutputTokens = 800
	geminiTopP            = 0.8
	geminiTopK            = 40
)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiCandidate struct {
	Content *geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GeminiClient talks to the generateContent endpoint directly; the
// credential travels as a `key` query parameter.
type GeminiClient struct {
	baseURL  string
	model    string
	sampling bool
	http     *http.Client
}

type GeminiOption func(*GeminiClient)

// WithoutSampling omits generationConfig from the request body, matching
// deployments that leave every sampling knob at the server default.
func WithoutSampling() GeminiOption {
	return func(c *GeminiClient) { c.sampling = false }
}

func WithBaseURL(baseURL string) GeminiOption {
	return func(c *GeminiClient) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

func WithHTTPClient(h *http.Client) GeminiOption {
	return func(c *GeminiClient) { c.http = h }
}

func NewGemini(model string, opts ...GeminiOption) *GeminiClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	c := &GeminiClient{
		baseURL:  DefaultGeminiBaseURL,
		model:    model,
		sampling: true,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *GeminiClient) Generate(ctx context.Context, prompt, credential string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	if c.sampling {
		reqBody.GenerationConfig = &geminiGenerationConfig{
			Temperature:     geminiTemperature,
			MaxOutputTokens: geminiMaxOutputTokens,
			TopP:            geminiTopP,
			TopK:            geminiTopK,
		}
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(credential))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &TransportError{Cause: err}
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
		}
	}(resp.Body)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		var errResp geminiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error.Message != "" {
			return "", &RemoteError{StatusCode: resp.StatusCode, Message: errResp.Error.Message}
		}
		return "", &RemoteError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	var genResp geminiResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", &MalformedResponseError{Reason: fmt.Sprintf("decode body: %v", err)}
	}
	if len(genResp.Candidates) == 0 {
		return "", &MalformedResponseError{Reason: "no candidates"}
	}
	content := genResp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", &MalformedResponseError{Reason: "candidate has no content parts"}
	}
	return content.Parts[0].Text, nil
}
