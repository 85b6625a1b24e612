// Package planner resolves the static workout plan and the regional food
// suggestion lists. Everything here is a pure lookup over constant tables;
// callers own persistence and timing.
package planner

import (
	"strings"
	"time"
)

const (
	LocationGym  = "Gym"
	LocationHome = "Home"

	BudgetLow      = "low"
	BudgetMiddle   = "middle"
	BudgetAdvanced = "advanced"

	EquipmentNone = "none"
	EquipmentSome = "some-equipment"

	// SuggestionLimit caps the list persisted onto a profile.
	SuggestionLimit = 8
)

// dayPlan holds the variant lists for one weekday. Both is the shared plan
// used when no variant-specific list exists (rest days).
type dayPlan struct {
	Gym  []string
	Home []string
	Both []string
}

// ResolveWorkout returns the exercise list for the given weekday and
// training location. Equipment is accepted for parity with the stored
// profile but does not change variant selection: the Home plan is already
// bodyweight-first. Fallback order: variant list, then the day's shared
// list, then "No plan".
func ResolveWorkout(day time.Weekday, location, equipment string) []string {
	plan, ok := weeklyPlan[day]
	if !ok {
		plan = restDay
	}

	variant := plan.Gym
	if location == LocationHome {
		variant = plan.Home
	}
	if len(variant) > 0 {
		return variant
	}
	if len(plan.Both) > 0 {
		return plan.Both
	}
	return noPlan
}

// SuggestFoods resolves the food suggestion list for a budget tier and
// declared region. Users outside India/Kerala (case-insensitive) get the
// generic list regardless of tier. The result is truncated to
// SuggestionLimit entries, order preserved, and is safe for the caller to
// keep.
func SuggestFoods(budget, country, state string) []string {
	base := lowBudgetFoods
	switch budget {
	case BudgetMiddle:
		base = middleBudgetFoods
	case BudgetAdvanced:
		base = advancedBudgetFoods
	}

	if !strings.EqualFold(country, "india") || !strings.EqualFold(state, "kerala") {
		base = genericFoods
	}

	if len(base) > SuggestionLimit {
		base = base[:SuggestionLimit]
	}
	out := make([]string, len(base))
	copy(out, base)
	return out
}

// ValidBudget reports whether budget names one of the three tiers.
func ValidBudget(budget string) bool {
	switch budget {
	case BudgetLow, BudgetMiddle, BudgetAdvanced:
		return true
	}
	return false
}

// ValidLocation reports whether location names a known plan variant.
func ValidLocation(location string) bool {
	return location == LocationGym || location == LocationHome
}
