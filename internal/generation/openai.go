package generation

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIClient generates task titles via OpenAI chat completions
type OpenAIClient struct {
	client openai.Client
	model  openai.ChatModel
}

// NewOpenAIClient creates a new OpenAI client. The library's built-in retries
// are disabled so a failed call surfaces immediately, matching the Gemini
// backend.
func NewOpenAIClient(apiKey string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &OpenAIClient{
		client: openai.NewClient(opts...),
		model:  openai.ChatModelGPT4oMini,
	}
}

// GenerateTitles asks OpenAI for task titles on the given topic.
// Same single-attempt contract and failure taxonomy as the Gemini backend.
func (c *OpenAIClient) GenerateTitles(ctx context.Context, topic string) ([]string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(topic)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return parseTitles(resp.Choices[0].Message.Content)
}
