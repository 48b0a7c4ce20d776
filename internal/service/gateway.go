package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jinian-0/web-AI-cs1/internal/domain"
)

// FragmentFunc receives each streamed increment of assistant text.
type FragmentFunc func(text string)

// Gateway streams a completion for the given message log and returns the
// fully assembled assistant text. On error the partial accumulation is not
// returned; callers must discard anything already delivered via onFragment.
type Gateway interface {
	Stream(ctx context.Context, model string, messages []domain.Message, onFragment FragmentFunc) (string, error)
}

// OpenAIGateway talks to an OpenAI-compatible chat completion endpoint.
type OpenAIGateway struct {
	client *openai.Client
}

func NewOpenAIGateway(apiKey, baseURL string) *OpenAIGateway {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIGateway{client: openai.NewClientWithConfig(cfg)}
}

func (g *OpenAIGateway) Stream(ctx context.Context, model string, messages []domain.Message, onFragment FragmentFunc) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Stream:   true,
		Messages: toChatMessages(messages),
	}

	stream, err := g.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGateway, err)
	}
	defer stream.Close()

	var full strings.Builder
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrGateway, err)
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		full.WriteString(delta)
		if onFragment != nil {
			onFragment(delta)
		}
	}
	return full.String(), nil
}

func toChatMessages(messages []domain.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		cm := openai.ChatCompletionMessage{Role: string(m.Role)}
		if m.Parts == nil {
			cm.Content = m.Text
		} else {
			for _, p := range m.Parts {
				switch p.Type {
				case domain.PartText:
					cm.MultiContent = append(cm.MultiContent, openai.ChatMessagePart{
						Type: openai.ChatMessagePartTypeText,
						Text: p.Text,
					})
				case domain.PartImageURL:
					cm.MultiContent = append(cm.MultiContent, openai.ChatMessagePart{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: p.URL},
					})
				}
				// video parts render from history only; the client library has
				// no wire representation for them
			}
		}
		out = append(out, cm)
	}
	return out
}
