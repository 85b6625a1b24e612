package app

import (
	"errors"
	"reflect"
	"testing"

	"fitweek/internal/model"
	"fitweek/internal/planner"
)

func validProfileInput() ProfileInput {
	return ProfileInput{
		Name:      "Alice",
		Age:       28,
		HeightCm:  170,
		WeightKg:  70,
		Country:   "India",
		State:     "Kerala",
		Budget:    planner.BudgetLow,
		Location:  planner.LocationGym,
		Equipment: planner.EquipmentNone,
	}
}

func seedUser(t *testing.T, users *fakeUserStore) *model.User {
	t.Helper()
	user := &model.User{Username: "alice", PasswordHash: "x"}
	if err := users.Create(user); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

func TestProfileSetup(t *testing.T) {
	users := newFakeUserStore()
	svc := NewProfileService(users, 1.6)
	user := seedUser(t, users)

	updated, err := svc.Setup(user.ID, validProfileInput())
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if !updated.Onboarded {
		t.Error("setup did not mark the user onboarded")
	}
	if updated.Profile.ProteinTarget != 112 {
		t.Errorf("protein target = %d, want 112 (70kg × 1.6)", updated.Profile.ProteinTarget)
	}
	want := planner.SuggestFoods(planner.BudgetLow, "India", "Kerala")
	if !reflect.DeepEqual(updated.Profile.FoodSuggestions, want) {
		t.Errorf("cached suggestions = %v, want %v", updated.Profile.FoodSuggestions, want)
	}

	stored, _ := users.GetByID(user.ID)
	if !reflect.DeepEqual(stored.Profile, updated.Profile) {
		t.Error("profile not persisted")
	}
}

func TestProfileSetupOverwritesPriorProfile(t *testing.T) {
	users := newFakeUserStore()
	svc := NewProfileService(users, 1.6)
	user := seedUser(t, users)

	if _, err := svc.Setup(user.ID, validProfileInput()); err != nil {
		t.Fatalf("first setup failed: %v", err)
	}

	second := validProfileInput()
	second.WeightKg = 80
	second.Country = "USA"
	second.State = "Texas"
	second.Budget = planner.BudgetAdvanced
	updated, err := svc.Setup(user.ID, second)
	if err != nil {
		t.Fatalf("second setup failed: %v", err)
	}

	if updated.Profile.ProteinTarget != 128 {
		t.Errorf("protein target = %d, want 128 (80kg × 1.6)", updated.Profile.ProteinTarget)
	}
	want := planner.SuggestFoods(planner.BudgetAdvanced, "USA", "Texas")
	if !reflect.DeepEqual(updated.Profile.FoodSuggestions, want) {
		t.Errorf("suggestions not recomputed on new setup: %v", updated.Profile.FoodSuggestions)
	}
}

func TestProfileSetupValidation(t *testing.T) {
	users := newFakeUserStore()
	svc := NewProfileService(users, 1.6)
	user := seedUser(t, users)

	tests := []struct {
		name   string
		mutate func(*ProfileInput)
	}{
		{"empty name", func(in *ProfileInput) { in.Name = " " }},
		{"negative age", func(in *ProfileInput) { in.Age = -1 }},
		{"zero height", func(in *ProfileInput) { in.HeightCm = 0 }},
		{"zero weight", func(in *ProfileInput) { in.WeightKg = 0 }},
		{"empty country", func(in *ProfileInput) { in.Country = "" }},
		{"empty state", func(in *ProfileInput) { in.State = "" }},
		{"unknown budget", func(in *ProfileInput) { in.Budget = "luxury" }},
		{"unknown location", func(in *ProfileInput) { in.Location = "Park" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validProfileInput()
			tt.mutate(&input)
			if _, err := svc.Setup(user.ID, input); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("want ErrInvalidInput, got %v", err)
			}
		})
	}

	stored, _ := users.GetByID(user.ID)
	if stored.Onboarded {
		t.Error("rejected setup must not mark the user onboarded")
	}
}

func TestProfileSetupDefaultsEquipment(t *testing.T) {
	users := newFakeUserStore()
	svc := NewProfileService(users, 1.6)
	user := seedUser(t, users)

	input := validProfileInput()
	input.Equipment = ""
	updated, err := svc.Setup(user.ID, input)
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	if updated.Profile.Equipment != planner.EquipmentNone {
		t.Errorf("equipment = %q, want %q", updated.Profile.Equipment, planner.EquipmentNone)
	}
}

func TestProfileSetupUnknownUser(t *testing.T) {
	svc := NewProfileService(newFakeUserStore(), 1.6)
	if _, err := svc.Setup(42, validProfileInput()); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("want ErrUserNotFound, got %v", err)
	}
}
