package domain

import "math"

// ComputeDayCompletion returns the share of checked tasks as a whole percentage in [0, 100].
func ComputeDayCompletion(log *DayLog) int {
	if log == nil {
		return 0
	}

	pct := int(math.Round(float64(log.Tasks.CountDone()) / TaskCount * 100))
	return min(max(pct, 0), 100)
}
