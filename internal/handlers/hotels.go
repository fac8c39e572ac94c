package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/ceylontrails/tourism-api/internal/auth"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type HotelHandler struct {
	db *gorm.DB
}

func NewHotelHandler(db *gorm.DB) *HotelHandler {
	return &HotelHandler{db: db}
}

type CreateHotelInput struct {
	Body struct {
		Name        string               `json:"name" minLength:"1"`
		Description string               `json:"description,omitempty"`
		Address     models.Address       `json:"address,omitempty"`
		Contact     models.Contact       `json:"contact,omitempty"`
		Amenities   []string             `json:"amenities,omitempty"`
		StarRating  int                  `json:"star_rating,omitempty" minimum:"0" maximum:"5"`
		RoomTypes   []models.RoomType    `json:"room_types,omitempty"`
		Images      []string             `json:"images,omitempty"`
		Policies    models.HotelPolicies `json:"policies,omitempty"`
	}
}

type HotelOutput struct {
	Body struct {
		Message string       `json:"message"`
		Hotel   models.Hotel `json:"hotel"`
	}
}

func (h *HotelHandler) HandleCreate(ctx context.Context, input *CreateHotelInput) (*HotelOutput, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	hotel := models.Hotel{
		OwnerID:     claims.UserID,
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Address:     input.Body.Address,
		Contact:     input.Body.Contact,
		Amenities:   datatypes.NewJSONSlice(input.Body.Amenities),
		StarRating:  input.Body.StarRating,
		RoomTypes:   datatypes.NewJSONSlice(input.Body.RoomTypes),
		Images:      datatypes.NewJSONSlice(input.Body.Images),
		Policies:    input.Body.Policies,
		Review:      approval.NewReview(),
	}
	if err := h.db.Create(&hotel).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create hotel")
	}

	res := &HotelOutput{}
	res.Body.Message = "Hotel registration submitted, pending admin approval"
	res.Body.Hotel = hotel
	return res, nil
}

type HotelListOutput struct {
	Body []models.Hotel
}

func (h *HotelHandler) HandlePending(ctx context.Context, input *struct{}) (*HotelListOutput, error) {
	var hotels []models.Hotel
	if err := h.db.Where("approval_status = ?", approval.StatusPending).Find(&hotels).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list hotels")
	}
	return &HotelListOutput{Body: hotels}, nil
}

type ApproveInput struct {
	ID   string `path:"id"`
	Body struct {
		Status     approval.Status `json:"status"`
		AdminNotes string          `json:"admin_notes,omitempty"`
	}
}

func (h *HotelHandler) HandleApprove(ctx context.Context, input *ApproveInput) (*HotelOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid hotel ID")
	}

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var hotel models.Hotel
	if err := h.db.First(&hotel, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Hotel not found")
	}

	if err := hotel.Review.Transition(input.Body.Status, input.Body.AdminNotes, claims.UserID, time.Now()); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err := h.db.Save(&hotel).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update hotel")
	}

	res := &HotelOutput{}
	res.Body.Message = fmt.Sprintf("Hotel %s successfully", input.Body.Status)
	res.Body.Hotel = hotel
	return res, nil
}

// scrubReview drops the admin bookkeeping from a review before it leaves a
// public endpoint. The status itself stays visible.
func scrubReview(r approval.Review) approval.Review {
	return approval.Review{Status: r.Status}
}

func (h *HotelHandler) HandleList(ctx context.Context, input *struct{}) (*HotelListOutput, error) {
	var hotels []models.Hotel
	if err := h.db.Where("approval_status = ?", approval.StatusApproved).Find(&hotels).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list hotels")
	}
	for i := range hotels {
		hotels[i].Review = scrubReview(hotels[i].Review)
	}
	return &HotelListOutput{Body: hotels}, nil
}

type GetHotelInput struct {
	ID string `path:"id"`
}

type HotelDetailOutput struct {
	Body models.Hotel
}

func (h *HotelHandler) HandleGet(ctx context.Context, input *GetHotelInput) (*HotelDetailOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid hotel ID")
	}

	var hotel models.Hotel
	err = h.db.Where("id = ? AND approval_status = ?", id, approval.StatusApproved).First(&hotel).Error
	if err != nil {
		return nil, huma.Error404NotFound("Hotel not found or not approved yet")
	}
	hotel.Review = scrubReview(hotel.Review)
	return &HotelDetailOutput{Body: hotel}, nil
}
