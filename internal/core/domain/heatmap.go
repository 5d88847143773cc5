package domain

import (
	"fmt"
	"math"
	"time"
)

// CompletionBand classifies a completion percentage for heatmap shading.
type CompletionBand int

const (
	BandNone CompletionBand = iota
	BandLow
	BandMid
	BandHigh
	BandFull
)

const (
	HeatmapRows         = 7
	DefaultHeatmapWeeks = 11
	MaxHeatmapWeeks     = 104
)

var ErrInvalidWeeks = fmt.Errorf("weeks must be an integer between 1 and %d", MaxHeatmapWeeks)

// ValidateHeatmapWeeks bounds a caller-supplied column count.
func ValidateHeatmapWeeks(weeks int) error {
	if weeks < 1 || weeks > MaxHeatmapWeeks {
		return fmt.Errorf("%w: got %d", ErrInvalidWeeks, weeks)
	}
	return nil
}

// BandForPercent is total: NaN, infinities and non-positive values map to BandNone.
func BandForPercent(pct float64) CompletionBand {
	switch {
	case math.IsNaN(pct) || math.IsInf(pct, 0) || pct <= 0:
		return BandNone
	case pct >= 100:
		return BandFull
	case pct >= 81:
		return BandHigh
	case pct >= 41:
		return BandMid
	default:
		return BandLow
	}
}

// BuildHeatmapDates lays out 7*weeks consecutive days ending at end, filled from the
// last column backwards and bottom-up within each column. grid[row][col].
//
// Columns are not re-aligned so that end lands on its weekday row.
func BuildHeatmapDates(end time.Time, weeks int) [][]string {
	if weeks <= 0 {
		weeks = DefaultHeatmapWeeks
	}

	grid := make([][]string, HeatmapRows)
	for r := range grid {
		grid[r] = make([]string, weeks)
	}

	// noon UTC keeps AddDate away from DST edges
	cursor := time.Date(end.Year(), end.Month(), end.Day(), 12, 0, 0, 0, time.UTC)
	for col := weeks - 1; col >= 0; col-- {
		for row := HeatmapRows - 1; row >= 0; row-- {
			grid[row][col] = cursor.Format(DateLayout)
			cursor = cursor.AddDate(0, 0, -1)
		}
	}

	return grid
}

type HeatmapInput struct {
	EndDate time.Time
	Weeks   int
}

type HeatmapCell struct {
	Date       string         `json:"date"`
	Completion int            `json:"completion"`
	Band       CompletionBand `json:"band"`
}

type Heatmap struct {
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	Weeks         int             `json:"weeks"`
	Cells         [][]HeatmapCell `json:"cells"`
	PerfectDays   int             `json:"perfect_days"`
	CurrentStreak int             `json:"current_streak"`
	LongestStreak int             `json:"longest_streak"`
}
