package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func logWithDone(k int) *DayLog {
	log := NewDayLog("2024-03-01")
	for i := 0; i < k; i++ {
		log.Tasks[i] = true
	}
	return log
}

func TestComputeDayCompletion(t *testing.T) {
	expected := []int{0, 17, 33, 50, 67, 83, 100}

	for k, want := range expected {
		assert.Equal(t, want, ComputeDayCompletion(logWithDone(k)), "k=%d", k)
	}

	assert.Equal(t, 0, ComputeDayCompletion(nil))
}

func TestWeightConversion(t *testing.T) {
	t.Run("Known values", func(t *testing.T) {
		assert.Equal(t, 176.4, KgToLbs(80))
		assert.Equal(t, 80.0, LbsToKg(176.4))
		assert.Equal(t, 0.0, KgToLbs(0))
	})

	t.Run("Round trip stays within 0.1", func(t *testing.T) {
		for kg := 0.0; kg <= 250; kg += 0.7 {
			assert.InDelta(t, kg, LbsToKg(KgToLbs(kg)), 0.1, "kg=%v", kg)
		}
	})

	t.Run("ToKg honours unit", func(t *testing.T) {
		assert.Equal(t, 80.0, ToKg(80, UnitKg))
		assert.Equal(t, 80.0, ToKg(176.4, UnitLbs))
	})
}

func TestParseWeightUnit(t *testing.T) {
	u, err := ParseWeightUnit("")
	assert.NoError(t, err)
	assert.Equal(t, UnitKg, u)

	u, err = ParseWeightUnit(" LBS ")
	assert.NoError(t, err)
	assert.Equal(t, UnitLbs, u)

	_, err = ParseWeightUnit("stone")
	assert.ErrorIs(t, err, ErrInvalidWeightUnit)
}
