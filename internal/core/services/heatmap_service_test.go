package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
	"github.com/hardlevel/hardlevel-core/internal/core/services"
)

func perfectLog(date string) *domain.DayLog {
	l := domain.NewDayLog(date)
	for _, task := range domain.AllTasks() {
		l.Tasks[task] = true
	}
	return l
}

func TestHeatmapService_Build(t *testing.T) {
	ctx := context.Background()
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Success: Range reader is used once and cells are banded", func(t *testing.T) {
		repo := new(MockRangeLogRepo)
		svc := services.NewHeatmapService(repo)

		half := domain.NewDayLog("2024-03-08")
		half.Tasks[domain.TaskDiet] = true
		half.Tasks[domain.TaskWater] = true
		half.Tasks[domain.TaskPhoto] = true

		from := time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC)
		repo.On("ListBetween", ctx, from, end).Return([]*domain.DayLog{
			half, perfectLog("2024-03-09"), perfectLog("2024-03-10"),
		}, nil)

		heatmap, err := svc.Build(ctx, domain.HeatmapInput{EndDate: end, Weeks: 2})
		require.NoError(t, err)

		assert.Equal(t, "2024-02-26", heatmap.StartDate)
		assert.Equal(t, "2024-03-10", heatmap.EndDate)
		require.Len(t, heatmap.Cells, domain.HeatmapRows)
		require.Len(t, heatmap.Cells[0], 2)

		last := heatmap.Cells[6][1]
		assert.Equal(t, "2024-03-10", last.Date)
		assert.Equal(t, 100, last.Completion)
		assert.Equal(t, domain.BandFull, last.Band)

		assert.Equal(t, 50, heatmap.Cells[4][1].Completion)
		assert.Equal(t, domain.BandMid, heatmap.Cells[4][1].Band)
		assert.Equal(t, domain.BandNone, heatmap.Cells[0][0].Band)

		assert.Equal(t, 2, heatmap.PerfectDays)
		assert.Equal(t, 2, heatmap.CurrentStreak)
		assert.Equal(t, 2, heatmap.LongestStreak)

		repo.AssertNotCalled(t, "GetByDate", mock.Anything, mock.Anything)
	})

	t.Run("Success: Falls back to per-date reads", func(t *testing.T) {
		repo := new(MockLogRepo)
		svc := services.NewHeatmapService(repo)

		repo.On("GetByDate", ctx, "2024-03-10").Return(perfectLog("2024-03-10"), nil)
		repo.On("GetByDate", ctx, mock.Anything).Return(nil, nil)

		heatmap, err := svc.Build(ctx, domain.HeatmapInput{EndDate: end, Weeks: 1})
		require.NoError(t, err)

		assert.Equal(t, 1, heatmap.PerfectDays)
		repo.AssertNumberOfCalls(t, "GetByDate", 7)
	})

	t.Run("Success: Default weeks", func(t *testing.T) {
		repo := new(MockRangeLogRepo)
		svc := services.NewHeatmapService(repo)
		repo.On("ListBetween", ctx, mock.Anything, mock.Anything).Return([]*domain.DayLog{}, nil)

		heatmap, err := svc.Build(ctx, domain.HeatmapInput{EndDate: end})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultHeatmapWeeks, heatmap.Weeks)
	})

	t.Run("Fail: Storage error propagates", func(t *testing.T) {
		repo := new(MockRangeLogRepo)
		svc := services.NewHeatmapService(repo)
		boom := errors.New("db boom")
		repo.On("ListBetween", ctx, mock.Anything, mock.Anything).Return(nil, boom)

		_, err := svc.Build(ctx, domain.HeatmapInput{EndDate: end, Weeks: 2})
		assert.Same(t, boom, err)
	})
}
