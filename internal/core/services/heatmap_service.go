package services

import (
	"context"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type HeatmapService struct {
	repo domain.LogRepository
}

func NewHeatmapService(repo domain.LogRepository) *HeatmapService {
	return &HeatmapService{
		repo: repo,
	}
}

func (s *HeatmapService) Build(ctx context.Context, input domain.HeatmapInput) (*domain.Heatmap, error) {
	weeks := input.Weeks
	if weeks <= 0 {
		weeks = domain.DefaultHeatmapWeeks
	}

	dates := domain.BuildHeatmapDates(input.EndDate, weeks)
	first := dates[0][0]
	last := dates[domain.HeatmapRows-1][weeks-1]

	logs, err := s.loadRange(ctx, dates, first, last)
	if err != nil {
		return nil, err
	}

	heatmap := &domain.Heatmap{
		StartDate: first,
		EndDate:   last,
		Weeks:     weeks,
		Cells:     make([][]domain.HeatmapCell, domain.HeatmapRows),
	}

	var perfectDates []string
	for r, row := range dates {
		heatmap.Cells[r] = make([]domain.HeatmapCell, len(row))
		for c, date := range row {
			completion := domain.ComputeDayCompletion(logs[date])
			heatmap.Cells[r][c] = domain.HeatmapCell{
				Date:       date,
				Completion: completion,
				Band:       domain.BandForPercent(float64(completion)),
			}
			if completion == 100 {
				perfectDates = append(perfectDates, date)
			}
		}
	}

	heatmap.PerfectDays = len(perfectDates)
	heatmap.CurrentStreak, heatmap.LongestStreak = domain.CalculateStreaks(perfectDates, input.EndDate)

	return heatmap, nil
}

func (s *HeatmapService) loadRange(ctx context.Context, dates [][]string, first, last string) (map[string]*domain.DayLog, error) {
	logs := make(map[string]*domain.DayLog)

	if ranged, ok := s.repo.(domain.LogRangeReader); ok {
		from, err := domain.ParseDate(first)
		if err != nil {
			return nil, err
		}
		to, err := domain.ParseDate(last)
		if err != nil {
			return nil, err
		}

		list, err := ranged.ListBetween(ctx, from, to)
		if err != nil {
			return nil, err
		}
		for _, l := range list {
			logs[l.Date] = l
		}
		return logs, nil
	}

	for _, row := range dates {
		for _, date := range row {
			l, err := s.repo.GetByDate(ctx, date)
			if err != nil {
				return nil, err
			}
			if l != nil {
				logs[date] = l
			}
		}
	}
	return logs, nil
}
