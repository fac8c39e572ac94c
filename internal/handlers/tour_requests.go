package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/ceylontrails/tourism-api/internal/auth"
	"github.com/ceylontrails/tourism-api/internal/mailer"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TourRequestHandler struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

func NewTourRequestHandler(db *gorm.DB, m mailer.Mailer) *TourRequestHandler {
	return &TourRequestHandler{db: db, mailer: m}
}

type CreateTourRequestInput struct {
	Body struct {
		FullName            string    `json:"full_name" minLength:"1"`
		Country             string    `json:"country" minLength:"1"`
		Email               string    `json:"email" format:"email"`
		WhatsappNumber      string    `json:"whatsapp_number" minLength:"1"`
		NumberOfAdults      int       `json:"number_of_adults" minimum:"1"`
		NumberOfChildren    int       `json:"number_of_children,omitempty" minimum:"0"`
		ArrivalDate         time.Time `json:"arrival_date"`
		DepartureDate       time.Time `json:"departure_date"`
		FlightDetails       string    `json:"flight_details,omitempty"`
		AccommodationType   []string  `json:"accommodation_type" minItems:"1" enum:"Budget,Mid-range,Luxury,Boutique,Villa"`
		PreferredRoomType   string    `json:"preferred_room_type" minLength:"1"`
		SpecialNeeds        string    `json:"special_needs,omitempty"`
		TravelInterests     []string  `json:"travel_interests" minItems:"1" enum:"Culture & Heritage,Nature & Wildlife,Beaches & Relaxation,Adventure & Activities,Ayurveda & Wellness,Local Food & Cooking,Festivals & Events"`
		PlacesToVisit       string    `json:"places_to_visit,omitempty"`
		DaysToTravel        int       `json:"days_to_travel" minimum:"1"`
		TransportPreference []string  `json:"transport_preference" minItems:"1" enum:"Private Car,Van,Luxury Vehicle,Train,Domestic Flights"`
		AirportPickupDrop   bool      `json:"airport_pickup_drop"`
		MealPlan            []string  `json:"meal_plan" minItems:"1" enum:"All meals,Breakfast only,No meals"`
		DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
		TourGuideNeeded     string    `json:"tour_guide_needed" enum:"Yes,No,Driver-guide"`
		Budget              string    `json:"budget" minLength:"1"`
		SpecialRequests     string    `json:"special_requests,omitempty"`
		PreferredLanguage   string    `json:"preferred_language" minLength:"1"`
	}
}

type TourRequestOutput struct {
	Body struct {
		Message string             `json:"message"`
		Request models.TourRequest `json:"request"`
	}
}

func (h *TourRequestHandler) HandleCreate(ctx context.Context, input *CreateTourRequestInput) (*TourRequestOutput, error) {
	b := input.Body
	request := models.TourRequest{
		FullName:            b.FullName,
		Country:             b.Country,
		Email:               b.Email,
		WhatsappNumber:      b.WhatsappNumber,
		NumberOfAdults:      b.NumberOfAdults,
		NumberOfChildren:    b.NumberOfChildren,
		ArrivalDate:         b.ArrivalDate,
		DepartureDate:       b.DepartureDate,
		FlightDetails:       b.FlightDetails,
		AccommodationType:   datatypes.NewJSONSlice(b.AccommodationType),
		PreferredRoomType:   b.PreferredRoomType,
		SpecialNeeds:        b.SpecialNeeds,
		TravelInterests:     datatypes.NewJSONSlice(b.TravelInterests),
		PlacesToVisit:       b.PlacesToVisit,
		DaysToTravel:        b.DaysToTravel,
		TransportPreference: datatypes.NewJSONSlice(b.TransportPreference),
		AirportPickupDrop:   b.AirportPickupDrop,
		MealPlan:            datatypes.NewJSONSlice(b.MealPlan),
		DietaryRestrictions: b.DietaryRestrictions,
		TourGuideNeeded:     b.TourGuideNeeded,
		Budget:              b.Budget,
		SpecialRequests:     b.SpecialRequests,
		PreferredLanguage:   b.PreferredLanguage,
		Review:              approval.NewReview(),
	}
	if err := h.db.Create(&request).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create tour request")
	}

	res := &TourRequestOutput{}
	res.Body.Message = "Tour request submitted successfully"
	res.Body.Request = request
	return res, nil
}

type TourRequestListOutput struct {
	Body []models.TourRequest
}

// HandleListPending returns requests still awaiting a decision.
func (h *TourRequestHandler) HandleListPending(ctx context.Context, input *struct{}) (*TourRequestListOutput, error) {
	var requests []models.TourRequest
	if err := h.db.Where("approval_status = ?", approval.StatusPending).Find(&requests).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list tour requests")
	}
	return &TourRequestListOutput{Body: requests}, nil
}

// HandleListAll returns every request regardless of status.
func (h *TourRequestHandler) HandleListAll(ctx context.Context, input *struct{}) (*TourRequestListOutput, error) {
	var requests []models.TourRequest
	if err := h.db.Find(&requests).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list tour requests")
	}
	return &TourRequestListOutput{Body: requests}, nil
}

type GetTourRequestInput struct {
	ID string `path:"id"`
}

type TourRequestDetailOutput struct {
	Body models.TourRequest
}

func (h *TourRequestHandler) HandleGet(ctx context.Context, input *GetTourRequestInput) (*TourRequestDetailOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid tour request ID")
	}

	var request models.TourRequest
	if err := h.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Tour request not found")
	}
	return &TourRequestDetailOutput{Body: request}, nil
}

func (h *TourRequestHandler) HandleApprove(ctx context.Context, input *ApproveInput) (*TourRequestOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid tour request ID")
	}

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var request models.TourRequest
	if err := h.db.First(&request, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Tour request not found")
	}

	if err := request.Review.Transition(input.Body.Status, input.Body.AdminNotes, claims.UserID, time.Now()); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err := h.db.Save(&request).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update tour request")
	}

	subject := "Your Custom Tour Request is Approved"
	if input.Body.Status == approval.StatusRejected {
		subject = "Your Custom Tour Request is Rejected"
	}
	notes := input.Body.AdminNotes
	if notes == "" {
		notes = "No additional notes"
	}
	body := fmt.Sprintf("Your custom tour request has been %s. Admin notes: %s.", input.Body.Status, notes)
	if err := h.mailer.Send(request.Email, subject, body); err != nil {
		log.Printf("Failed to send email to %s for request %s: %v", request.Email, id, err)
	}

	res := &TourRequestOutput{}
	res.Body.Message = fmt.Sprintf("Tour request %s successfully", input.Body.Status)
	res.Body.Request = request
	return res, nil
}
