// Package claude implements vision.Describer with the Anthropic API.
package claude

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/liushuangls/go-anthropic/v2"
)

const prompt = "This photo shows a personal item someone wants to find again later. " +
	"Describe the item and where it appears to be stored in one short sentence. " +
	"Reply with the sentence only."

type Describer struct {
	client *anthropic.Client
	model  anthropic.Model
}

func New(apiKey, model string) *Describer {
	return &Describer{
		client: anthropic.NewClient(apiKey),
		model:  anthropic.Model(model),
	}
}

func (d *Describer) Describe(ctx context.Context, image []byte, mimeType string) (string, error) {
	resp, err := d.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     d.model,
		MaxTokens: 200,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
						anthropic.MessagesContentSourceTypeBase64,
						mimeType,
						base64.StdEncoding.EncodeToString(image),
					)),
					anthropic.NewTextMessageContent(prompt),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to describe photo: %w", err)
	}

	text := strings.TrimSpace(resp.GetFirstContentText())
	if text == "" {
		return "", fmt.Errorf("empty description from model")
	}
	return text, nil
}
