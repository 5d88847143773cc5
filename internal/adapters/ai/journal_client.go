package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

const journalSystemPrompt = `You summarize personal journal entries.
Reply with a JSON object {"summary": string, "mood": string}.
summary: two or three sentences in the second person.
mood: a single lowercase word describing the writer's mood.`

// JournalClient implements domain.JournalAIPort on the chat/completions endpoint.
type JournalClient struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewJournalClient(opts Options) *JournalClient {
	return &JournalClient{
		client: newRestyClient(opts),
		model:  opts.Model,
		logger: loggerOrNop(opts.Logger),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model,omitempty"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *JournalClient) Summarize(ctx context.Context, input domain.JournalAIInput) (*domain.JournalAIResult, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: journalSystemPrompt},
			{Role: "user", Content: input.Text},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.3,
	}

	var out chatResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&body).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/chat/completions")
	if err := checkResponse("journal", resp, err); err != nil {
		c.logger.Warn("journal summary failed", zap.Error(err))
		return nil, err
	}

	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("%w: journal response has no choices", domain.ErrUpstream)
	}

	return parseJournalContent(out.Choices[0].Message.Content)
}

// parseJournalContent accepts the JSON object, optionally inside a markdown fence.
func parseJournalContent(content string) (*domain.JournalAIResult, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var result domain.JournalAIResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &result); err != nil {
		return nil, fmt.Errorf("%w: decode journal summary: %w", domain.ErrUpstream, err)
	}
	if result.Summary == "" {
		return nil, fmt.Errorf("%w: journal summary is empty", domain.ErrUpstream)
	}

	return &result, nil
}
