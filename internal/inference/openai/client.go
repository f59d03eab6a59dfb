package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"labelaudit/internal/config"
	"labelaudit/internal/inference"
	"labelaudit/internal/port"
)

const (
	defaultModel = "gpt-4o"
	providerName = "openai"
	schemaName   = "extracted_data"
)

func init() {
	inference.RegisterProvider(providerName, func(cfg *config.InferenceConfig) (port.InferenceClient, error) {
		return NewClient(cfg), nil
	})
}

// Client implements port.InferenceClient using the OpenAI Chat Completions API.
type Client struct {
	model string
	api   openai.Client
}

// NewClient creates an OpenAI client. cfg.Endpoint, when set, replaces the API base URL.
func NewClient(cfg *config.InferenceConfig) *Client {
	return newClient(cfg, cfg.Endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom base URL (for testing).
func NewClientWithEndpoint(cfg *config.InferenceConfig, baseURL string) *Client {
	return newClient(cfg, baseURL)
}

func newClient(cfg *config.InferenceConfig, baseURL string) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	// A failed call is reported once; the SDK does not retry.
	opts := []option.RequestOption{
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &Client{
		model: model,
		api:   openai.NewClient(opts...),
	}
}

func (c *Client) Name() string {
	return providerName + "/" + c.model
}

func (c *Client) Generate(ctx context.Context, in port.GenerateRequest) (string, error) {
	dataURI := fmt.Sprintf("data:%s;base64,%s", in.ImageMime, in.ImageBase64)

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(in.SystemInstruction),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: dataURI}),
				openai.TextContentPart(in.Prompt),
			}),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: in.Schema,
				},
			},
		},
	}

	completion, err := c.api.Chat.Completions.New(ctx, params, option.WithAPIKey(in.APIKey))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			retryAfter := 0
			if apiErr.Response != nil {
				retryAfter = inference.ParseRetryAfterHeader(apiErr.Response.Header.Get("Retry-After"))
			}
			return "", inference.NewRateLimitError(providerName, err, retryAfter)
		}
		return "", fmt.Errorf("calling openai API: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}
