package models

import (
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking is a tourist's reservation against a Package. Email is copied from
// the user at creation time so status notifications keep working even if the
// account email changes later.
type Booking struct {
	ID             uuid.UUID              `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID              `json:"user_id" gorm:"type:uuid"`
	User           User                   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Email          string                 `json:"email"`
	PackageID      uuid.UUID              `json:"package_id" gorm:"type:uuid"`
	Package        Package                `json:"package,omitempty" gorm:"foreignKey:PackageID"`
	WhatsappNumber string                 `json:"whatsapp_number"`
	Status         approval.BookingStatus `json:"status" gorm:"default:pending"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
