package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/ceylontrails/tourism-api/internal/auth"
	"github.com/ceylontrails/tourism-api/internal/mailer"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingHandler struct {
	db     *gorm.DB
	mailer mailer.Mailer
}

func NewBookingHandler(db *gorm.DB, m mailer.Mailer) *BookingHandler {
	return &BookingHandler{db: db, mailer: m}
}

type CreateBookingInput struct {
	Body struct {
		PackageID      string `json:"package_id" minLength:"1"`
		WhatsappNumber string `json:"whatsapp_number" pattern:"^\\+\\d{7,15}$" doc:"International format, e.g. +94771234567"`
	}
}

type BookingOutput struct {
	Body struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking"`
	}
}

func (h *BookingHandler) HandleCreate(ctx context.Context, input *CreateBookingInput) (*BookingOutput, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	packageID, err := uuid.Parse(input.Body.PackageID)
	if err != nil {
		return nil, huma.Error400BadRequest("Valid package_id is required")
	}

	// The email is copied onto the booking so later notifications have a
	// stable address.
	var user models.User
	if err := h.db.First(&user, "id = ?", claims.UserID).Error; err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	var pkg models.Package
	if err := h.db.First(&pkg, "id = ?", packageID).Error; err != nil {
		return nil, huma.Error404NotFound("Package not found")
	}

	booking := models.Booking{
		UserID:         claims.UserID,
		Email:          user.Email,
		PackageID:      packageID,
		WhatsappNumber: input.Body.WhatsappNumber,
		Status:         approval.BookingPending,
	}
	if err := h.db.Create(&booking).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create booking")
	}

	res := &BookingOutput{}
	res.Body.Message = "Booking created, status pending"
	res.Body.Booking = booking
	return res, nil
}

type BookingListOutput struct {
	Body []models.Booking
}

func (h *BookingHandler) HandleListMine(ctx context.Context, input *struct{}) (*BookingListOutput, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var bookings []models.Booking
	err := h.db.Preload("Package").
		Where("user_id = ?", claims.UserID).
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list bookings")
	}
	return &BookingListOutput{Body: bookings}, nil
}

type GetBookingInput struct {
	ID string `path:"id"`
}

type BookingDetailOutput struct {
	Body models.Booking
}

func (h *BookingHandler) HandleGet(ctx context.Context, input *GetBookingInput) (*BookingDetailOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid booking ID")
	}

	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	var booking models.Booking
	err = h.db.Preload("Package").
		Where("id = ? AND user_id = ?", id, claims.UserID).
		First(&booking).Error
	if err != nil {
		return nil, huma.Error404NotFound("Booking not found")
	}
	return &BookingDetailOutput{Body: booking}, nil
}

type UpdateBookingStatusInput struct {
	ID   string `path:"id"`
	Body struct {
		Status approval.BookingStatus `json:"status"`
	}
}

func (h *BookingHandler) HandleUpdateStatus(ctx context.Context, input *UpdateBookingStatusInput) (*BookingOutput, error) {
	id, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid booking ID")
	}

	status := input.Body.Status
	if !approval.ValidBookingStatus(status) {
		return nil, huma.Error400BadRequest("Status must be one of pending, confirmed, cancelled, approved")
	}

	var booking models.Booking
	if err := h.db.First(&booking, "id = ?", id).Error; err != nil {
		return nil, huma.Error404NotFound("Booking not found")
	}

	booking.Status = status
	if err := h.db.Save(&booking).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to update booking")
	}

	// Best effort: a dead mail server must not fail the transition.
	if subject, body, ok := approval.BookingNotification(status); ok {
		if err := h.mailer.Send(booking.Email, subject, body); err != nil {
			log.Printf("Failed to send booking status email to %s: %v", booking.Email, err)
		}
	}

	res := &BookingOutput{}
	res.Body.Message = fmt.Sprintf("Booking status updated to %q and user notified via email.", status)
	res.Body.Booking = booking
	return res, nil
}

func (h *BookingHandler) HandleListAll(ctx context.Context, input *struct{}) (*BookingListOutput, error) {
	var bookings []models.Booking
	err := h.db.Preload("Package").Preload("User").
		Order("created_at desc").
		Find(&bookings).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list bookings")
	}
	return &BookingListOutput{Body: bookings}, nil
}
