package ai

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

const defaultImageSize = "1024x1024"

// AvatarClient implements domain.AvatarPort on the images/generations endpoint.
type AvatarClient struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewAvatarClient(opts Options) *AvatarClient {
	return &AvatarClient{
		client: newRestyClient(opts),
		model:  opts.Model,
		logger: loggerOrNop(opts.Logger),
	}
}

type imageRequest struct {
	Model  string `json:"model,omitempty"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL     string `json:"url"`
		B64JSON string `json:"b64_json"`
	} `json:"data"`
}

func (c *AvatarClient) Generate(ctx context.Context, input domain.GenerateAvatarInput) (*domain.AvatarResult, error) {
	body := imageRequest{
		Model:  c.model,
		Prompt: domain.BuildAvatarPrompt(input),
		N:      1,
		Size:   defaultImageSize,
	}

	var out imageResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&body).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/images/generations")
	if err := checkResponse("avatar", resp, err); err != nil {
		c.logger.Warn("avatar generation failed", zap.String("style", string(input.Style)), zap.Error(err))
		return nil, err
	}

	if len(out.Data) == 0 {
		return nil, fmt.Errorf("%w: avatar response has no images", domain.ErrUpstream)
	}

	img := out.Data[0]
	switch {
	case img.URL != "":
		return &domain.AvatarResult{URL: img.URL}, nil
	case img.B64JSON != "":
		return &domain.AvatarResult{URL: "data:image/png;base64," + img.B64JSON}, nil
	default:
		return nil, fmt.Errorf("%w: avatar response has neither url nor image data", domain.ErrUpstream)
	}
}
