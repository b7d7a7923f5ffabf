package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// fallbackLimit is the number of characters kept when no API key is configured.
const fallbackLimit = 300

// Client wraps the OpenAI SDK for condensing scraped medicine descriptions.
type Client struct {
	client *openai.Client
	model  openai.ChatModel
}

// ErrClientNotInitialised is returned when attempting to call the API without a configured client.
var ErrClientNotInitialised = errors.New("openai client not initialised")

// New returns a client. Without apiKey the client only truncates.
func New(apiKey string, opts ...option.RequestOption) *Client {
	if apiKey == "" {
		return &Client{}
	}
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &Client{
		client: &client,
		model:  openai.ChatModelGPT4oMini,
	}
}

// Enabled reports whether requests go to the API.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Summarize condenses a medicine description into a few plain sentences.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("text cannot be empty")
	}
	if !c.Enabled() {
		return truncate(text, fallbackLimit), nil
	}

	req := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String("You condense medicine product descriptions into at most three short, plain sentences. Do not add medical advice."),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(text),
					},
				},
			},
		},
		Temperature:         openai.Float(0.2),
		MaxCompletionTokens: openai.Int(160),
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion received")
	}
	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty completion received")
	}
	return summary, nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
