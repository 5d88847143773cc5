package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

type rangeLogRepository interface {
	domain.LogRepository
	domain.LogRangeReader
}

// runLogRepositorySuite checks the LogRepository contract against any adapter.
func runLogRepositorySuite(t *testing.T, repo rangeLogRepository) {
	t.Helper()
	ctx := context.Background()

	t.Run("Missing date is nil without error", func(t *testing.T) {
		log, err := repo.GetByDate(ctx, "1999-01-01")
		assert.NoError(t, err)
		assert.Nil(t, log)
	})

	t.Run("Save then load round-trips every field", func(t *testing.T) {
		log := domain.NewDayLog("2024-03-01")
		log.Toggle(domain.TaskWorkout1)
		log.Toggle(domain.TaskPhoto)
		require.NoError(t, log.SetWeightKg(82.3))

		require.NoError(t, repo.Save(ctx, log))

		loaded, err := repo.GetByDate(ctx, "2024-03-01")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Equal(t, log.Tasks, loaded.Tasks)
		require.NotNil(t, loaded.WeightKg)
		assert.Equal(t, 82.3, *loaded.WeightKg)
		assert.Nil(t, loaded.FastingHours)
		assert.WithinDuration(t, log.UpdatedAt, loaded.UpdatedAt, time.Second)
	})

	t.Run("Save overwrites the same date", func(t *testing.T) {
		log := domain.NewDayLog("2024-03-02")
		log.Toggle(domain.TaskDiet)
		require.NoError(t, repo.Save(ctx, log))

		log.Toggle(domain.TaskDiet)
		log.Toggle(domain.TaskWater)
		require.NoError(t, log.SetFastingHours(18))
		require.NoError(t, repo.Save(ctx, log))

		loaded, err := repo.GetByDate(ctx, "2024-03-02")
		require.NoError(t, err)
		assert.False(t, loaded.Tasks.Done(domain.TaskDiet))
		assert.True(t, loaded.Tasks.Done(domain.TaskWater))
		require.NotNil(t, loaded.FastingHours)
		assert.Equal(t, 18.0, *loaded.FastingHours)
	})

	t.Run("ListBetween is inclusive and ordered", func(t *testing.T) {
		for _, d := range []string{"2024-04-03", "2024-04-01", "2024-04-05", "2024-04-10"} {
			require.NoError(t, repo.Save(ctx, domain.NewDayLog(d)))
		}

		from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

		logs, err := repo.ListBetween(ctx, from, to)
		require.NoError(t, err)

		var dates []string
		for _, l := range logs {
			dates = append(dates, l.Date)
		}
		assert.Equal(t, []string{"2024-04-01", "2024-04-03", "2024-04-05"}, dates)
	})
}
