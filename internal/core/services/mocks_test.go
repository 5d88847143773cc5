package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type MockLogRepo struct {
	mock.Mock
}

func (m *MockLogRepo) GetByDate(ctx context.Context, date string) (*domain.DayLog, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DayLog), args.Error(1)
}

func (m *MockLogRepo) Save(ctx context.Context, log *domain.DayLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

type MockRangeLogRepo struct {
	MockLogRepo
}

func (m *MockRangeLogRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.DayLog, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DayLog), args.Error(1)
}

type MockAvatarPort struct {
	mock.Mock
}

func (m *MockAvatarPort) Generate(ctx context.Context, input domain.GenerateAvatarInput) (*domain.AvatarResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvatarResult), args.Error(1)
}

type MockJournalPort struct {
	mock.Mock
}

func (m *MockJournalPort) Summarize(ctx context.Context, input domain.JournalAIInput) (*domain.JournalAIResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalAIResult), args.Error(1)
}
