package llm

import (
	"context"
	"errors"

	"github.com/sashabaranov/go-openai"
)

// OpenAIClient adapts an OpenAI-compatible chat endpoint to the Client
// contract. Secondary provider; the Gemini client is the canonical one.
type OpenAIClient struct {
	baseURL string
	model   string
}

func NewOpenAI(baseURL, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAIClient{baseURL: baseURL, model: model}
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt, credential string) (string, error) {
	config := openai.DefaultConfig(credential)
	if c.baseURL != "" {
		config.BaseURL = c.baseURL
	}
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: geminiTemperature,
		MaxTokens:   geminiMaxOutputTokens,
		TopP:        geminiTopP,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &RemoteError{StatusCode: apiErr.HTTPStatusCode, Message: apiErr.Message}
		}
		return "", &TransportError{Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &MalformedResponseError{Reason: "no choices"}
	}
	return resp.Choices[0].Message.Content, nil
}
