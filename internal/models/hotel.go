package models

import (
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

type RoomType struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PricePerNight float64  `json:"price_per_night,omitempty"`
	TotalRooms    int      `json:"total_rooms,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	MaxOccupancy  int      `json:"max_occupancy,omitempty"`
}

type HotelPolicies struct {
	CheckInTime        string `json:"check_in_time,omitempty"`
	CheckOutTime       string `json:"check_out_time,omitempty"`
	CancellationPolicy string `json:"cancellation_policy,omitempty"`
}

type Hotel struct {
	ID          uuid.UUID                     `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID                     `json:"owner_id" gorm:"type:uuid"`
	Name        string                        `json:"name"`
	Description string                        `json:"description"`
	Address     Address                       `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Contact     Contact                       `json:"contact" gorm:"embedded;embeddedPrefix:contact_"`
	Amenities   datatypes.JSONSlice[string]   `json:"amenities"`
	StarRating  int                           `json:"star_rating"`
	RoomTypes   datatypes.JSONSlice[RoomType] `json:"room_types"`
	Images      datatypes.JSONSlice[string]   `json:"images"`
	Policies    HotelPolicies                 `json:"policies" gorm:"embedded;embeddedPrefix:policy_"`
	Review      approval.Review               `json:"approval_status" gorm:"embedded;embeddedPrefix:approval_"`
	CreatedAt   time.Time                     `json:"created_at"`
	UpdatedAt   time.Time                     `json:"updated_at"`
}

func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
