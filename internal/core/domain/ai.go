package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidAvatarStyle = errors.New("invalid avatar style (must be ghibli or pixar)")
	ErrEmptyMood          = errors.New("avatar mood cannot be empty")
	ErrEmptyJournalText   = errors.New("journal text cannot be empty")
	ErrUpstream           = errors.New("upstream provider failure")
)

type AvatarStyle string

const (
	AvatarStyleGhibli AvatarStyle = "ghibli"
	AvatarStylePixar  AvatarStyle = "pixar"
)

func ParseAvatarStyle(s string) (AvatarStyle, error) {
	switch style := AvatarStyle(strings.ToLower(strings.TrimSpace(s))); style {
	case AvatarStyleGhibli, AvatarStylePixar:
		return style, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAvatarStyle, s)
	}
}

type GenerateAvatarInput struct {
	Style AvatarStyle `json:"style"`
	Mood  string      `json:"mood"`
}

var avatarStyleDescriptors = map[AvatarStyle]string{
	AvatarStyleGhibli: "studio-ghibli style, hand-painted anime, warm watercolor palette",
	AvatarStylePixar:  "pixar style, 3d animated character, soft global illumination",
}

// BuildAvatarPrompt renders the image prompt for style and mood. Same input, same prompt.
func BuildAvatarPrompt(input GenerateAvatarInput) string {
	descriptor, ok := avatarStyleDescriptors[input.Style]
	if !ok {
		descriptor = string(input.Style)
	}
	mood := strings.ToLower(strings.TrimSpace(input.Mood))

	return fmt.Sprintf(
		"Portrait avatar of a person who looks %s, %s, head and shoulders, centered, plain background, no text",
		mood, descriptor,
	)
}

type AvatarResult struct {
	URL string `json:"url"`
}

type JournalAIInput struct {
	Text string `json:"text"`
}

type JournalAIResult struct {
	Summary string `json:"summary"`
	Mood    string `json:"mood"`
}

type AvatarPort interface {
	// Generate renders an avatar image and returns where it can be fetched.
	Generate(ctx context.Context, input GenerateAvatarInput) (*AvatarResult, error)
}

type JournalAIPort interface {
	// Summarize condenses a journal entry and classifies its mood.
	Summarize(ctx context.Context, input JournalAIInput) (*JournalAIResult, error)
}
