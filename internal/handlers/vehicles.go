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

type VehicleHandler struct {
	db *gorm.DB
}

func NewVehicleHandler(db *gorm.DB) *VehicleHandler {
	return &VehicleHandler{db: db}
}

type CreateVehicleInput struct {
	Body struct {
		Title              string                  `json:"title" minLength:"1"`
		Description        string                  `json:"description,omitempty"`
		VehicleType        models.VehicleType      `json:"vehicle_type" enum:"car,van,bus,minibus,coach"`
		Make               string                  `json:"make,omitempty"`
		Model              string                  `json:"model,omitempty"`
		Year               int                     `json:"year,omitempty"`
		RegistrationNumber string                  `json:"registration_number,omitempty"`
		SeatCapacity       int                     `json:"seat_capacity,omitempty" minimum:"0"`
		Transmission       string                  `json:"transmission,omitempty" enum:"manual,automatic"`
		FuelType           string                  `json:"fuel_type,omitempty"`
		Price              models.VehiclePrice     `json:"price,omitempty"`
		Features           []string                `json:"features,omitempty"`
		Images             []string                `json:"images,omitempty"`
		PickupLocations    []models.PickupLocation `json:"pickup_locations,omitempty"`
		Policies           models.VehiclePolicies  `json:"policies,omitempty"`
	}
}

type VehicleOutput struct {
	Body struct {
		Message string         `json:"message"`
		Vehicle models.Vehicle `json:"vehicle"`
	}
}

func (h *VehicleHandler) HandleCreate(ctx context.Context, input *CreateVehicleInput) (*VehicleOutput, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	vehicle := models.Vehicle{
		OwnerID:            claims.UserID,
		Title:              input.Body.Title,
		Description:        input.Body.Description,
		VehicleType:        input.Body.VehicleType,
		Make:               input.Body.Make,
		Model:              input.Body.Model,
		Year:               input.Body.Year,
		RegistrationNumber: input.Body.RegistrationNumber,
		SeatCapacity:       input.Body.SeatCapacity,
		Transmission:       input.Body.Transmission,
		FuelType:           input.Body.FuelType,
		Price:              input.Body.Price,
		Features:           datatypes.NewJSONSlice(input.Body.Features),
		Images:             datatypes.NewJSONSlice(input.Body.Images),
		PickupLocations:    datatypes.NewJSONSlice(input.Body.PickupLocations),
		Policies:           input.Body.Policies,
		Review:             approval.NewReview(),
	}
	if err := h.db.Create(&vehicle).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create vehicle")
	}

	res := &VehicleOutput{}
	res.Body.Message = "Vehicle registration submitted, pending admin approval"
	res.Body.Vehicle = vehicle
	return res, nil
}

type VehicleListOutput struct {
	Body []models.Vehicle
}

func (h *VehicleHandler) HandlePending(ctx context.Context, input *struct{}) (*VehicleListOutput, error) {
	var vehicles []models.Vehicle
	if err := h.db.Where("approval_status = ?", approval.StatusPending).Find(&vehicles).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list vehicles")
	}
	return &VehicleListOutput{Body: vehicles}, nil
}

func (h *VehicleHandler) HandleApprove(ctx context.Context, input *ApproveInput) (*VehicleOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid vehicle ID")
	}

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var vehicle models.Vehicle
	if err := h.db.First(&vehicle, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Vehicle not found")
	}

	if err := vehicle.Review.Transition(input.Body.Status, input.Body.AdminNotes, claims.UserID, time.Now()); err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}
	if err := h.db.Save(&vehicle).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update vehicle")
	}

	res := &VehicleOutput{}
	res.Body.Message = fmt.Sprintf("Vehicle %s successfully", input.Body.Status)
	res.Body.Vehicle = vehicle
	return res, nil
}

func (h *VehicleHandler) HandleList(ctx context.Context, input *struct{}) (*VehicleListOutput, error) {
	var vehicles []models.Vehicle
	if err := h.db.Where("approval_status = ?", approval.StatusApproved).Find(&vehicles).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list vehicles")
	}
	for i := range vehicles {
		vehicles[i].Review = scrubReview(vehicles[i].Review)
	}
	return &VehicleListOutput{Body: vehicles}, nil
}

type GetVehicleInput struct {
	ID string `path:"id"`
}

type VehicleDetailOutput struct {
	Body models.Vehicle
}

func (h *VehicleHandler) HandleGet(ctx context.Context, input *GetVehicleInput) (*VehicleDetailOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid vehicle ID")
	}

	var vehicle models.Vehicle
	err = h.db.Where("id = ? AND approval_status = ?", id, approval.StatusApproved).First(&vehicle).Error
	if err != nil {
		return nil, huma.Error404NotFound("Vehicle not found or not approved yet")
	}
	vehicle.Review = scrubReview(vehicle.Review)
	return &VehicleDetailOutput{Body: vehicle}, nil
}
