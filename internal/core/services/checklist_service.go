package services

import (
	"context"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type ChecklistService struct {
	repo domain.LogRepository
}

func NewChecklistService(repo domain.LogRepository) *ChecklistService {
	return &ChecklistService{
		repo: repo,
	}
}

type DayResult struct {
	Log        *domain.DayLog `json:"log"`
	Completion int            `json:"completion"`
}

type MetricsInput struct {
	Date         string
	Weight       *float64
	WeightUnit   domain.WeightUnit
	FastingHours *float64
}

// ToggleTask flips one task of the day and saves the log exactly once.
// Repository errors are returned as-is.
func (s *ChecklistService) ToggleTask(ctx context.Context, date string, task domain.TaskID) (*DayResult, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	if !task.Valid() {
		return nil, domain.ErrUnknownTask
	}

	log, err := s.loadOrEmpty(ctx, date)
	if err != nil {
		return nil, err
	}

	log.Toggle(task)

	if err := s.repo.Save(ctx, log); err != nil {
		return nil, err
	}

	return &DayResult{
		Log:        log,
		Completion: domain.ComputeDayCompletion(log),
	}, nil
}

// GetDay returns the stored log or an empty one. It never writes.
func (s *ChecklistService) GetDay(ctx context.Context, date string) (*DayResult, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}

	log, err := s.loadOrEmpty(ctx, date)
	if err != nil {
		return nil, err
	}

	return &DayResult{
		Log:        log,
		Completion: domain.ComputeDayCompletion(log),
	}, nil
}

func (s *ChecklistService) SetMetrics(ctx context.Context, input MetricsInput) (*DayResult, error) {
	if _, err := domain.ParseDate(input.Date); err != nil {
		return nil, err
	}
	if input.Weight == nil && input.FastingHours == nil {
		return nil, domain.ErrInvalidMetric
	}

	log, err := s.loadOrEmpty(ctx, input.Date)
	if err != nil {
		return nil, err
	}

	if input.Weight != nil {
		if err := log.SetWeightKg(domain.ToKg(*input.Weight, input.WeightUnit)); err != nil {
			return nil, err
		}
	}
	if input.FastingHours != nil {
		if err := log.SetFastingHours(*input.FastingHours); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, log); err != nil {
		return nil, err
	}

	return &DayResult{
		Log:        log,
		Completion: domain.ComputeDayCompletion(log),
	}, nil
}

func (s *ChecklistService) loadOrEmpty(ctx context.Context, date string) (*domain.DayLog, error) {
	log, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return domain.NewDayLog(date), nil
	}
	return log, nil
}
