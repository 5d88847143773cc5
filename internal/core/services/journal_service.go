package services

import (
	"context"
	"strings"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type JournalService struct {
	port domain.JournalAIPort
}

func NewJournalService(port domain.JournalAIPort) *JournalService {
	return &JournalService{
		port: port,
	}
}

// Summarize forwards the entry to the AI port and returns its answer untouched.
func (s *JournalService) Summarize(ctx context.Context, input domain.JournalAIInput) (*domain.JournalAIResult, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, domain.ErrEmptyJournalText
	}

	return s.port.Summarize(ctx, input)
}
