package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrInvalidDate   = errors.New("invalid date (must be YYYY-MM-DD)")
	ErrInvalidMetric = errors.New("metric values must be finite and non-negative")
)

const DateLayout = "2006-01-02"

// DayLog is the checklist record of one calendar day.
type DayLog struct {
	Date         string    `json:"date"`
	Tasks        Tasks     `json:"tasks"`
	WeightKg     *float64  `json:"weight_kg,omitempty"`
	FastingHours *float64  `json:"fasting_hours,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewDayLog returns the empty record for date: every task unchecked, no metrics.
func NewDayLog(date string) *DayLog {
	return &DayLog{Date: date}
}

// Toggle flips the task and returns its new state.
func (l *DayLog) Toggle(t TaskID) bool {
	l.Tasks[t] = !l.Tasks[t]
	l.UpdatedAt = time.Now().UTC()
	return l.Tasks[t]
}

func validMetric(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

func (l *DayLog) SetWeightKg(kg float64) error {
	if !validMetric(kg) {
		return ErrInvalidMetric
	}
	l.WeightKg = &kg
	l.UpdatedAt = time.Now().UTC()
	return nil
}

func (l *DayLog) SetFastingHours(hours float64) error {
	if !validMetric(hours) {
		return ErrInvalidMetric
	}
	l.FastingHours = &hours
	l.UpdatedAt = time.Now().UTC()
	return nil
}

// ParseDate parses a strict ISO calendar date. "2024-1-5" and "2024-02-30" are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders the calendar day of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
