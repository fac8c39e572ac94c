package handlers

import (
	"testing"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/google/uuid"
)

func TestBookingLifecycle(t *testing.T) {
	db := setupDB(t)
	rec := &recorderMailer{}
	handler := NewBookingHandler(db, rec)

	tourist := models.User{Name: "Tourist", Email: "tourist@example.com", Role: models.RoleTourist}
	db.Create(&tourist)
	pkg := models.Package{Name: "Highlands Escape", StartingPrice: "1500 USD"}
	db.Create(&pkg)

	adminID := uuid.New()

	create := &CreateBookingInput{}
	create.Body.PackageID = pkg.ID.String()
	create.Body.WhatsappNumber = "+94771234567"

	resp, err := handler.HandleCreate(ctxWithRole(tourist.ID, models.RoleTourist), create)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	booking := resp.Body.Booking
	if booking.Status != approval.BookingPending {
		t.Errorf("expected pending, got %s", booking.Status)
	}
	if booking.Email != "tourist@example.com" {
		t.Errorf("expected denormalized email, got %s", booking.Email)
	}

	t.Run("UnknownPackage", func(t *testing.T) {
		bad := &CreateBookingInput{}
		bad.Body.PackageID = uuid.New().String()
		bad.Body.WhatsappNumber = "+94771234567"
		if _, err := handler.HandleCreate(ctxWithRole(tourist.ID, models.RoleTourist), bad); err == nil {
			t.Fatal("expected error for unknown package, got nil")
		}
	})

	t.Run("MalformedPackageID", func(t *testing.T) {
		bad := &CreateBookingInput{}
		bad.Body.PackageID = "abc"
		bad.Body.WhatsappNumber = "+94771234567"
		if _, err := handler.HandleCreate(ctxWithRole(tourist.ID, models.RoleTourist), bad); err == nil {
			t.Fatal("expected error for malformed package id, got nil")
		}
	})

	t.Run("ListMine", func(t *testing.T) {
		list, err := handler.HandleListMine(ctxWithRole(tourist.ID, models.RoleTourist), &struct{}{})
		if err != nil {
			t.Fatalf("HandleListMine returned error: %v", err)
		}
		if len(list.Body) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(list.Body))
		}
		if list.Body[0].Package.Name != "Highlands Escape" {
			t.Errorf("expected package preloaded, got %+v", list.Body[0].Package)
		}
	})

	t.Run("GetScopedToOwner", func(t *testing.T) {
		get := &GetBookingInput{ID: booking.ID.String()}
		if _, err := handler.HandleGet(ctxWithRole(uuid.New(), models.RoleTourist), get); err == nil {
			t.Fatal("expected not found for someone else's booking, got nil")
		}
		if _, err := handler.HandleGet(ctxWithRole(tourist.ID, models.RoleTourist), get); err != nil {
			t.Fatalf("HandleGet returned error: %v", err)
		}
	})

	t.Run("Confirm", func(t *testing.T) {
		update := &UpdateBookingStatusInput{ID: booking.ID.String()}
		update.Body.Status = approval.BookingConfirmed
		resp, err := handler.HandleUpdateStatus(ctxWithRole(adminID, models.RoleAdmin), update)
		if err != nil {
			t.Fatalf("HandleUpdateStatus returned error: %v", err)
		}
		if resp.Body.Booking.Status != approval.BookingConfirmed {
			t.Errorf("expected confirmed, got %s", resp.Body.Booking.Status)
		}

		if len(rec.sent) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(rec.sent))
		}
		if rec.sent[0].To != "tourist@example.com" {
			t.Errorf("notification sent to %s", rec.sent[0].To)
		}
		if rec.sent[0].Subject != "Your booking has been confirmed!" {
			t.Errorf("unexpected subject %q", rec.sent[0].Subject)
		}

		get := &GetBookingInput{ID: booking.ID.String()}
		got, err := handler.HandleGet(ctxWithRole(tourist.ID, models.RoleTourist), get)
		if err != nil {
			t.Fatalf("HandleGet returned error: %v", err)
		}
		if got.Body.Status != approval.BookingConfirmed {
			t.Errorf("expected confirmed after reload, got %s", got.Body.Status)
		}
	})

	t.Run("ApprovedSendsNoMail", func(t *testing.T) {
		before := len(rec.sent)
		update := &UpdateBookingStatusInput{ID: booking.ID.String()}
		update.Body.Status = approval.BookingApproved
		if _, err := handler.HandleUpdateStatus(ctxWithRole(adminID, models.RoleAdmin), update); err != nil {
			t.Fatalf("HandleUpdateStatus returned error: %v", err)
		}
		if len(rec.sent) != before {
			t.Errorf("expected no notification for approved, got %d new", len(rec.sent)-before)
		}
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		update := &UpdateBookingStatusInput{ID: booking.ID.String()}
		update.Body.Status = "rejected"
		if _, err := handler.HandleUpdateStatus(ctxWithRole(adminID, models.RoleAdmin), update); err == nil {
			t.Fatal("expected error for invalid status, got nil")
		}

		var stored models.Booking
		db.First(&stored, "id = ?", booking.ID)
		if stored.Status != approval.BookingApproved {
			t.Errorf("failed transition mutated record: %s", stored.Status)
		}
	})

	t.Run("ListAll", func(t *testing.T) {
		list, err := handler.HandleListAll(ctxWithRole(adminID, models.RoleAdmin), &struct{}{})
		if err != nil {
			t.Fatalf("HandleListAll returned error: %v", err)
		}
		if len(list.Body) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(list.Body))
		}
		if list.Body[0].User.Email != "tourist@example.com" {
			t.Errorf("expected user preloaded, got %+v", list.Body[0].User)
		}
	})
}
