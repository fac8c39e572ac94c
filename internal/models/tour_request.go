package models

import (
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TourRequest is a free-form itinerary request submitted by an
// unauthenticated visitor. It is never owned by an account; the contact
// email on the request is where approval decisions are sent.
type TourRequest struct {
	ID                  uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	FullName            string                      `json:"full_name"`
	Country             string                      `json:"country"`
	Email               string                      `json:"email"`
	WhatsappNumber      string                      `json:"whatsapp_number"`
	NumberOfAdults      int                         `json:"number_of_adults"`
	NumberOfChildren    int                         `json:"number_of_children"`
	ArrivalDate         time.Time                   `json:"arrival_date"`
	DepartureDate       time.Time                   `json:"departure_date"`
	FlightDetails       string                      `json:"flight_details"`
	AccommodationType   datatypes.JSONSlice[string] `json:"accommodation_type"`
	PreferredRoomType   string                      `json:"preferred_room_type"`
	SpecialNeeds        string                      `json:"special_needs"`
	TravelInterests     datatypes.JSONSlice[string] `json:"travel_interests"`
	PlacesToVisit       string                      `json:"places_to_visit"`
	DaysToTravel        int                         `json:"days_to_travel"`
	TransportPreference datatypes.JSONSlice[string] `json:"transport_preference"`
	AirportPickupDrop   bool                        `json:"airport_pickup_drop"`
	MealPlan            datatypes.JSONSlice[string] `json:"meal_plan"`
	DietaryRestrictions string                      `json:"dietary_restrictions"`
	TourGuideNeeded     string                      `json:"tour_guide_needed"`
	Budget              string                      `json:"budget"`
	SpecialRequests     string                      `json:"special_requests"`
	PreferredLanguage   string                      `json:"preferred_language"`
	Review              approval.Review             `json:"approval_status" gorm:"embedded;embeddedPrefix:approval_"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

func (t *TourRequest) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
