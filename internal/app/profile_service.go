package app

import (
	"strings"

	"fitweek/internal/model"
	"fitweek/internal/planner"
)

// ProfileService validates profile setup submissions and persists the
// completed profile. Malformed numeric input is rejected outright, never
// coerced to zero.
type ProfileService struct {
	users      UserStore
	gramsPerKg float64
}

type ProfileInput struct {
	Name      string
	Age       int
	HeightCm  float64
	WeightKg  float64
	Country   string
	State     string
	Budget    string
	Location  string
	Equipment string
}

func NewProfileService(users UserStore, gramsPerKg float64) *ProfileService {
	if gramsPerKg <= 0 {
		gramsPerKg = 1.6
	}
	return &ProfileService{users: users, gramsPerKg: gramsPerKg}
}

func (s *ProfileService) Get(userID uint) (*model.User, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Setup derives the protein target and food suggestions, then overwrites any
// prior profile in a single save. Country and state only steer the
// suggestion lookup; they are not stored.
func (s *ProfileService) Setup(userID uint, input ProfileInput) (*model.User, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}

	name := strings.TrimSpace(input.Name)
	country := strings.TrimSpace(input.Country)
	state := strings.TrimSpace(input.State)
	equipment := strings.TrimSpace(input.Equipment)
	if equipment == "" {
		equipment = planner.EquipmentNone
	}

	if name == "" || country == "" || state == "" {
		return nil, ErrInvalidInput
	}
	if input.Age < 0 || input.HeightCm <= 0 || input.WeightKg <= 0 {
		return nil, ErrInvalidInput
	}
	if !planner.ValidBudget(input.Budget) || !planner.ValidLocation(input.Location) {
		return nil, ErrInvalidInput
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.Profile = model.Profile{
		Name:            name,
		Age:             input.Age,
		HeightCm:        input.HeightCm,
		WeightKg:        input.WeightKg,
		ProteinTarget:   ProteinTargetFor(input.WeightKg, s.gramsPerKg),
		Budget:          input.Budget,
		Location:        input.Location,
		Equipment:       equipment,
		FoodSuggestions: planner.SuggestFoods(input.Budget, country, state),
	}
	user.Onboarded = true

	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}
