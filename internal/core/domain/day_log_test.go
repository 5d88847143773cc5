package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDayLog(t *testing.T) {
	log := NewDayLog("2024-03-01")

	assert.Equal(t, "2024-03-01", log.Date)
	assert.Equal(t, 0, log.Tasks.CountDone(), "A fresh log must have every task unchecked")
	assert.Nil(t, log.WeightKg)
	assert.Nil(t, log.FastingHours)
}

func TestDayLog_Toggle(t *testing.T) {
	log := NewDayLog("2024-03-01")

	assert.True(t, log.Toggle(TaskDiet))
	assert.True(t, log.Tasks.Done(TaskDiet))
	assert.False(t, log.UpdatedAt.IsZero(), "UpdatedAt must be set on mutation")

	assert.False(t, log.Toggle(TaskDiet))
	assert.False(t, log.Tasks.Done(TaskDiet))
}

func TestDayLog_Metrics(t *testing.T) {
	log := NewDayLog("2024-03-01")

	require.NoError(t, log.SetWeightKg(81.5))
	require.NoError(t, log.SetFastingHours(16))
	assert.Equal(t, 81.5, *log.WeightKg)
	assert.Equal(t, 16.0, *log.FastingHours)

	assert.ErrorIs(t, log.SetWeightKg(-1), ErrInvalidMetric)
	assert.ErrorIs(t, log.SetFastingHours(-0.5), ErrInvalidMetric)
	assert.Equal(t, 81.5, *log.WeightKg, "Rejected values must not overwrite the previous reading")

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, log.SetWeightKg(v), ErrInvalidMetric)
		assert.ErrorIs(t, log.SetFastingHours(v), ErrInvalidMetric)
	}
	assert.Equal(t, 81.5, *log.WeightKg)
	assert.Equal(t, 16.0, *log.FastingHours)

	_, err := json.Marshal(log)
	assert.NoError(t, err, "A log that rejected non-finite readings must stay encodable")
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-03-01", false},
		{"2024-02-29", false},
		{"2023-02-29", true},
		{"2024-3-1", true},
		{"01-03-2024", true},
		{"", true},
		{"2024-03-01T10:00:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDate)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTasks_JSON(t *testing.T) {
	t.Run("Should always emit all six keys", func(t *testing.T) {
		var ts Tasks
		ts[TaskWater] = true

		data, err := json.Marshal(ts)
		require.NoError(t, err)

		var raw map[string]bool
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.Len(t, raw, TaskCount)
		assert.True(t, raw["water"])
		assert.False(t, raw["photo"])
	})

	t.Run("Should reject unknown keys", func(t *testing.T) {
		var ts Tasks
		err := json.Unmarshal([]byte(`{"diet":true,"yoga":true}`), &ts)
		assert.ErrorIs(t, err, ErrUnknownTask)
	})

	t.Run("Missing keys default to false", func(t *testing.T) {
		var ts Tasks
		require.NoError(t, json.Unmarshal([]byte(`{"reading":true}`), &ts))
		assert.True(t, ts.Done(TaskReading))
		assert.Equal(t, 1, ts.CountDone())
	})
}

func TestParseTaskID(t *testing.T) {
	for _, id := range AllTasks() {
		parsed, err := ParseTaskID(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}

	_, err := ParseTaskID("Diet")
	assert.ErrorIs(t, err, ErrUnknownTask, "Task names are case sensitive")

	assert.False(t, TaskID(TaskCount).Valid())
}
