package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type AvatarService struct {
	port domain.AvatarPort
}

func NewAvatarService(port domain.AvatarPort) *AvatarService {
	return &AvatarService{
		port: port,
	}
}

type GenerateAvatarOutput struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

func (s *AvatarService) GenerateAvatar(ctx context.Context, input domain.GenerateAvatarInput) (*GenerateAvatarOutput, error) {
	style, err := domain.ParseAvatarStyle(string(input.Style))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Mood) == "" {
		return nil, domain.ErrEmptyMood
	}
	input.Style = style

	prompt := domain.BuildAvatarPrompt(input)

	result, err := s.port.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: avatar provider returned no image", domain.ErrUpstream)
	}

	return &GenerateAvatarOutput{
		URL:    result.URL,
		Prompt: prompt,
	}, nil
}
