package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleTourist        Role = "tourist"
	RoleAdmin          Role = "admin"
	RoleHotelOwner     Role = "hotel-owner"
	RoleTransportOwner Role = "transport-owner"
)

func ValidRole(r Role) bool {
	switch r {
	case RoleTourist, RoleAdmin, RoleHotelOwner, RoleTransportOwner:
		return true
	}
	return false
}

type Provider string

const (
	ProviderLocal  Provider = "local"
	ProviderGoogle Provider = "google"
)

type User struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name"`
	Email     string     `json:"email" gorm:"uniqueIndex"`
	Password  string     `json:"-"`
	Role      Role       `json:"role" gorm:"default:tourist"`
	Provider  Provider   `json:"provider" gorm:"default:local"`
	GoogleID  *string    `json:"-" gorm:"uniqueIndex"`
	Photo     string     `json:"photo"`
	OTP       string     `json:"-"`
	OTPExpiry *time.Time `json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
