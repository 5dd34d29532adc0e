package assistant

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

var ErrNoCompletion = fmt.Errorf("assistant returned no completion")

const systemPrompt = "You are an emergency preparedness assistant inside a " +
	"disaster-response app. Answer briefly and concretely. When the user " +
	"shares their situation summary, ground your advice in it. Never invent " +
	"hazard or shelter data that is not in the summary."

// Client wraps the text-completion provider. The service is opaque to the
// rest of the system: text in, text out.
type Client struct {
	openaiClient *openai.Client
	model        string
}

func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Client{
		openaiClient: openai.NewClient(apiKey),
		model:        model,
	}
}

// Complete sends the user message, optionally prefixed with a situation
// summary assembled by the caller, and returns the completion text.
func (c *Client) Complete(ctx context.Context, situation, message string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleSystem,
			Content: systemPrompt,
		},
	}
	if situation != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: "Current situation summary:\n" + situation,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	resp, err := c.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoCompletion
	}

	return resp.Choices[0].Message.Content, nil
}
