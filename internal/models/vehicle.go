package models

import (
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleCar     VehicleType = "car"
	VehicleVan     VehicleType = "van"
	VehicleBus     VehicleType = "bus"
	VehicleMinibus VehicleType = "minibus"
	VehicleCoach   VehicleType = "coach"
)

type VehiclePrice struct {
	PerHour float64 `json:"per_hour,omitempty"`
	PerDay  float64 `json:"per_day,omitempty"`
}

type PickupLocation struct {
	Name string `json:"name"`
}

type VehiclePolicies struct {
	Cancellation string `json:"cancellation,omitempty"`
	FuelPolicy   string `json:"fuel_policy,omitempty"`
	MileageLimit string `json:"mileage_limit,omitempty"`
}

type Vehicle struct {
	ID                 uuid.UUID                           `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID            uuid.UUID                           `json:"owner_id" gorm:"type:uuid"`
	Title              string                              `json:"title"`
	Description        string                              `json:"description"`
	VehicleType        VehicleType                         `json:"vehicle_type"`
	Make               string                              `json:"make"`
	Model              string                              `json:"model"`
	Year               int                                 `json:"year"`
	RegistrationNumber string                              `json:"registration_number"`
	SeatCapacity       int                                 `json:"seat_capacity"`
	Transmission       string                              `json:"transmission"`
	FuelType           string                              `json:"fuel_type"`
	Price              VehiclePrice                        `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	Features           datatypes.JSONSlice[string]         `json:"features"`
	Images             datatypes.JSONSlice[string]         `json:"images"`
	PickupLocations    datatypes.JSONSlice[PickupLocation] `json:"pickup_locations"`
	Policies           VehiclePolicies                     `json:"policies" gorm:"embedded;embeddedPrefix:policy_"`
	Review             approval.Review                     `json:"approval_status" gorm:"embedded;embeddedPrefix:approval_"`
	CreatedAt          time.Time                           `json:"created_at"`
	UpdatedAt          time.Time                           `json:"updated_at"`
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
