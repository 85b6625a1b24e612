package model

import "time"

// Profile carries the fields collected during profile setup. It is embedded
// into the users row so the whole profile persists in a single UPDATE.
// FoodSuggestions are resolved once at setup time and cached here; they are
// not recomputed on later reads.
type Profile struct {
	Name            string   `gorm:"size:128" json:"name"`
	Age             int      `json:"age"`
	HeightCm        float64  `json:"height_cm"`
	WeightKg        float64  `json:"weight_kg"`
	ProteinTarget   int      `json:"protein_target"`
	Budget          string   `gorm:"size:16" json:"budget"`
	Location        string   `gorm:"size:16" json:"location"`
	Equipment       string   `gorm:"size:32" json:"equipment"`
	FoodSuggestions []string `gorm:"type:text;serializer:json" json:"food_suggestions"`
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// utf8mb4_bin keeps username lookups case-sensitive on MySQL.
	Username     string    `gorm:"type:varchar(64) COLLATE utf8mb4_bin;not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Onboarded    bool      `gorm:"not null;default:false" json:"onboarded"`
	Profile      Profile   `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
