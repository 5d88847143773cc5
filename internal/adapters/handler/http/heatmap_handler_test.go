package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

func TestGetHeatmap(t *testing.T) {
	t.Run("Success: explicit window", func(t *testing.T) {
		env := setupEnv(t)
		ctx := context.Background()

		perfect := domain.NewDayLog("2024-03-10")
		for _, task := range domain.AllTasks() {
			perfect.Toggle(task)
		}
		require.NoError(t, env.repo.Save(ctx, perfect))

		w := env.do(http.MethodGet, "/api/v1/heatmap?end=2024-03-10&weeks=2", "", env.token(t))
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[domain.Heatmap](t, w)
		assert.Equal(t, 2, res.Weeks)
		assert.Equal(t, "2024-02-26", res.StartDate)
		assert.Equal(t, "2024-03-10", res.EndDate)
		require.Len(t, res.Cells, domain.HeatmapRows)

		last := res.Cells[domain.HeatmapRows-1][1]
		assert.Equal(t, "2024-03-10", last.Date)
		assert.Equal(t, 100, last.Completion)
		assert.Equal(t, domain.BandFull, last.Band)
		assert.Equal(t, 1, res.PerfectDays)
		assert.Equal(t, 1, res.CurrentStreak)
	})

	t.Run("Success: default weeks", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(http.MethodGet, "/api/v1/heatmap", "", env.token(t))
		require.Equal(t, http.StatusOK, w.Code)

		res := decode[domain.Heatmap](t, w)
		assert.Equal(t, domain.DefaultHeatmapWeeks, res.Weeks)
		assert.Len(t, res.Cells[0], domain.DefaultHeatmapWeeks)
	})

	t.Run("Fail: 400 bad inputs", func(t *testing.T) {
		env := setupEnv(t)
		token := env.token(t)

		for _, q := range []string{"?end=yesterday", "?weeks=0", "?weeks=abc", "?weeks=500"} {
			w := env.do(http.MethodGet, "/api/v1/heatmap"+q, "", token)
			assert.Equal(t, http.StatusBadRequest, w.Code, "query "+q)
		}
	})
}
