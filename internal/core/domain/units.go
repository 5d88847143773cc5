package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidWeightUnit = errors.New("invalid weight unit (must be kg or lbs)")
)

const LbsPerKg = 2.2046226218

type WeightUnit string

const (
	UnitKg  WeightUnit = "kg"
	UnitLbs WeightUnit = "lbs"
)

func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(strings.ToLower(strings.TrimSpace(s))) {
	case UnitKg, "":
		return UnitKg, nil
	case UnitLbs, "lb":
		return UnitLbs, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidWeightUnit, s)
	}
}

// KgToLbs and LbsToKg round to one decimal, so a round trip may drift by up to 0.1.
func KgToLbs(kg float64) float64 {
	return roundTenth(kg * LbsPerKg)
}

func LbsToKg(lbs float64) float64 {
	return roundTenth(lbs / LbsPerKg)
}

// ToKg normalizes a reading in unit to kilograms.
func ToKg(value float64, unit WeightUnit) float64 {
	if unit == UnitLbs {
		return LbsToKg(value)
	}
	return value
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
