package domain

import (
	"sort"
	"time"
)

// CalculateStreaks returns the run of consecutive perfect days that reaches today (or
// yesterday, so an unfinished today does not break it) and the longest run overall.
func CalculateStreaks(perfectDates []string, today time.Time) (int, int) {
	uniqueDays := make(map[string]bool)
	var sortedDates []time.Time

	for _, d := range perfectDates {
		if uniqueDays[d] {
			continue
		}
		t, err := ParseDate(d)
		if err != nil {
			continue
		}
		uniqueDays[d] = true
		sortedDates = append(sortedDates, t)
	}

	if len(sortedDates) == 0 {
		return 0, 0
	}

	sort.Slice(sortedDates, func(i, j int) bool {
		return sortedDates[i].After(sortedDates[j])
	})

	isNextDay := func(later, earlier time.Time) bool {
		return earlier.AddDate(0, 0, 1).Equal(later)
	}

	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	currentStreak := 0
	if latest := sortedDates[0]; latest.Equal(ref) || isNextDay(ref, latest) {
		currentStreak = 1
		for i := 0; i < len(sortedDates)-1; i++ {
			if !isNextDay(sortedDates[i], sortedDates[i+1]) {
				break
			}
			currentStreak++
		}
	}

	longestStreak := 0
	tempStreak := 1
	for i := 0; i < len(sortedDates)-1; i++ {
		if isNextDay(sortedDates[i], sortedDates[i+1]) {
			tempStreak++
			continue
		}
		longestStreak = max(longestStreak, tempStreak)
		tempStreak = 1
	}
	longestStreak = max(longestStreak, tempStreak)

	return currentStreak, longestStreak
}
