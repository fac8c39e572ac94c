package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DailyPlan struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description []string `json:"description,omitempty"`
	Activities  []string `json:"activities,omitempty"`
	Locations   []string `json:"locations,omitempty"`
}

// Package is an admin-curated travel product. Unlike listings it is not
// approval-gated: it is publicly visible as soon as it is created.
type Package struct {
	ID               uuid.UUID                      `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string                         `json:"name"`
	Theme            string                         `json:"theme"`
	Description      string                         `json:"description"`
	IdealFor         datatypes.JSONSlice[string]    `json:"ideal_for"`
	StartingPrice    string                         `json:"starting_price"`
	PackageIcon      string                         `json:"package_icon"`
	PackagePhotos    datatypes.JSONSlice[string]    `json:"package_photos"`
	DailyPlans       datatypes.JSONSlice[DailyPlan] `json:"daily_plans"`
	IncludedItems    datatypes.JSONSlice[string]    `json:"included_items"`
	NotIncludedItems datatypes.JSONSlice[string]    `json:"not_included_items"`
	CreatedAt        time.Time                      `json:"created_at"`
	UpdatedAt        time.Time                      `json:"updated_at"`
}

func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
