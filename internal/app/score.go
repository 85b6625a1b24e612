package app

import (
	"math"
	"time"

	"fitweek/internal/model"
)

// IntakeWindow is the rolling window the weekly score is computed over.
const IntakeWindow = 7 * 24 * time.Hour

// WeeklyProtein sums the grams logged within the window ending at now.
// Entries exactly on the cutoff count.
func WeeklyProtein(entries []model.ProteinLog, now time.Time) float64 {
	cutoff := now.Add(-IntakeWindow)
	var total float64
	for _, entry := range entries {
		if !entry.LoggedAt.Before(cutoff) {
			total += entry.Amount
		}
	}
	return total
}

// WeeklyScore returns the percentage of the 7-day protein target met by the
// given entries, rounded and clamped to [0, 100]. A non-positive daily
// target scores 0.
func WeeklyScore(entries []model.ProteinLog, now time.Time, dailyTarget int) int {
	targetWeek := dailyTarget * 7
	if targetWeek <= 0 {
		return 0
	}

	score := math.Round(100 * WeeklyProtein(entries, now) / float64(targetWeek))
	if score > 100 {
		return 100
	}
	return int(score)
}

// ProteinTargetFor derives the daily protein target in grams from body
// weight.
func ProteinTargetFor(weightKg, gramsPerKg float64) int {
	return int(math.Round(weightKg * gramsPerKg))
}
