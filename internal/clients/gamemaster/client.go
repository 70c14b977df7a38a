package gamemaster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"github.com/mythictome/mythic-tome/internal/domain/shared"
	mterr "github.com/mythictome/mythic-tome/internal/errors"
	"github.com/mythictome/mythic-tome/internal/narrative"
)

type client struct {
	api        *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	log        zerolog.Logger
}

// Config configures the narration client. APIKey is required; BaseURL
// points at an OpenAI-compatible endpoint.
type Config struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Logger     zerolog.Logger
}

// New creates a narration client backed by a chat-completion API.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, mterr.InvalidArgument("cfg is required")
	}
	if cfg.APIKey == "" {
		return nil, mterr.InvalidArgument("cfg.APIKey is required")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	apiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiConfig.BaseURL = cfg.BaseURL
	}

	return &client{
		api:        openai.NewClientWithConfig(apiConfig),
		model:      model,
		timeout:    timeout,
		maxRetries: maxRetries,
		log:        cfg.Logger,
	}, nil
}

// Narrate sends one turn to the engine and decodes prose plus tool
// calls. Transport failures are retried up to the configured limit.
func (c *client) Narrate(ctx context.Context, input *NarrateInput) (*Response, error) {
	if input == nil {
		return nil, mterr.InvalidArgument("input is required")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := input.Model
	if !KnownModel(model) {
		model = c.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(input.History)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: input.SystemPrompt,
	})
	for _, msg := range input.History {
		role := openai.ChatMessageRoleAssistant
		if msg.Role == shared.RoleUser {
			role = openai.ChatMessageRoleUser
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Text,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: input.UserPrompt,
	})

	req := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: 0.7,
		Tools:       narrative.GameTools(),
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			c.log.Warn().Err(err).Int("attempt", attempt).Msg("narration request failed")
			if ctx.Err() != nil {
				break
			}
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = mterr.Unavailable("empty narration response")
			c.log.Warn().Int("attempt", attempt).Msg("narration response had no choices")
			continue
		}

		choice := resp.Choices[0].Message
		out := &Response{Text: choice.Content}
		for _, toolCall := range choice.ToolCalls {
			out.Calls = append(out.Calls, narrative.RawCall{
				Name: toolCall.Function.Name,
				Args: json.RawMessage(toolCall.Function.Arguments),
			})
		}
		return out, nil
	}

	return nil, mterr.WrapWithCode(lastErr, mterr.CodeUnavailable, "narration engine unavailable")
}
