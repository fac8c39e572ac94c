package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/ceylontrails/tourism-api/internal/approval"
	"github.com/ceylontrails/tourism-api/internal/models"
	"github.com/google/uuid"
)

func newTourRequestInput() *CreateTourRequestInput {
	input := &CreateTourRequestInput{}
	input.Body.FullName = "Jamie Visitor"
	input.Body.Country = "Germany"
	input.Body.Email = "jamie@example.com"
	input.Body.WhatsappNumber = "+4915112345678"
	input.Body.NumberOfAdults = 2
	input.Body.ArrivalDate = time.Now().Add(30 * 24 * time.Hour)
	input.Body.DepartureDate = time.Now().Add(40 * 24 * time.Hour)
	input.Body.AccommodationType = []string{"Mid-range"}
	input.Body.PreferredRoomType = "Double"
	input.Body.TravelInterests = []string{"Culture & Heritage", "Beaches & Relaxation"}
	input.Body.DaysToTravel = 10
	input.Body.TransportPreference = []string{"Private Car"}
	input.Body.MealPlan = []string{"Breakfast only"}
	input.Body.TourGuideNeeded = "Yes"
	input.Body.Budget = "3000 USD"
	input.Body.PreferredLanguage = "English"
	return input
}

func TestTourRequestLifecycle(t *testing.T) {
	db := setupDB(t)
	rec := &recorderMailer{}
	handler := NewTourRequestHandler(db, rec)
	adminID := uuid.New()

	resp, err := handler.HandleCreate(ctxWithRole(uuid.Nil, ""), newTourRequestInput())
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	request := resp.Body.Request
	if request.Review.Status != approval.StatusPending {
		t.Errorf("expected pending, got %s", request.Review.Status)
	}

	t.Run("PendingList", func(t *testing.T) {
		list, err := handler.HandleListPending(ctxWithRole(adminID, models.RoleAdmin), &struct{}{})
		if err != nil {
			t.Fatalf("HandleListPending returned error: %v", err)
		}
		if len(list.Body) != 1 {
			t.Fatalf("expected 1 pending request, got %d", len(list.Body))
		}
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		approve := &ApproveInput{ID: request.ID.String()}
		approve.Body.Status = "maybe"
		if _, err := handler.HandleApprove(ctxWithRole(adminID, models.RoleAdmin), approve); err == nil {
			t.Fatal("expected error for invalid status, got nil")
		}
		if len(rec.sent) != 0 {
			t.Errorf("no mail should be sent for a failed transition, got %d", len(rec.sent))
		}
	})

	t.Run("Reject", func(t *testing.T) {
		approve := &ApproveInput{ID: request.ID.String()}
		approve.Body.Status = approval.StatusRejected
		approve.Body.AdminNotes = "dates unavailable"

		resp, err := handler.HandleApprove(ctxWithRole(adminID, models.RoleAdmin), approve)
		if err != nil {
			t.Fatalf("HandleApprove returned error: %v", err)
		}
		if resp.Body.Request.Review.Status != approval.StatusRejected {
			t.Errorf("expected rejected, got %s", resp.Body.Request.Review.Status)
		}

		if len(rec.sent) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(rec.sent))
		}
		mail := rec.sent[0]
		if mail.To != "jamie@example.com" {
			t.Errorf("notification sent to %s", mail.To)
		}
		if mail.Subject != "Your Custom Tour Request is Rejected" {
			t.Errorf("unexpected subject %q", mail.Subject)
		}
		if !strings.Contains(mail.Body, "dates unavailable") {
			t.Errorf("expected admin notes in body, got %q", mail.Body)
		}

		// Decided requests drop out of the pending list but stay in the
		// full list.
		pending, _ := handler.HandleListPending(ctxWithRole(adminID, models.RoleAdmin), &struct{}{})
		if len(pending.Body) != 0 {
			t.Errorf("expected empty pending list, got %d", len(pending.Body))
		}
		all, _ := handler.HandleListAll(ctxWithRole(adminID, models.RoleAdmin), &struct{}{})
		if len(all.Body) != 1 {
			t.Errorf("expected 1 request in full list, got %d", len(all.Body))
		}
	})

	t.Run("GetByID", func(t *testing.T) {
		get := &GetTourRequestInput{ID: request.ID.String()}
		resp, err := handler.HandleGet(ctxWithRole(adminID, models.RoleAdmin), get)
		if err != nil {
			t.Fatalf("HandleGet returned error: %v", err)
		}
		if resp.Body.FullName != "Jamie Visitor" {
			t.Errorf("unexpected request: %s", resp.Body.FullName)
		}
		if len(resp.Body.TravelInterests) != 2 {
			t.Errorf("interests not round-tripped: %+v", resp.Body.TravelInterests)
		}
	})

	t.Run("MailFailureDoesNotBlock", func(t *testing.T) {
		failing := NewTourRequestHandler(db, failingMailer{})
		approve := &ApproveInput{ID: request.ID.String()}
		approve.Body.Status = approval.StatusApproved
		if _, err := failing.HandleApprove(ctxWithRole(adminID, models.RoleAdmin), approve); err != nil {
			t.Fatalf("transition must succeed despite mail failure, got %v", err)
		}

		var stored models.TourRequest
		db.First(&stored, "id = ?", request.ID)
		if stored.Review.Status != approval.StatusApproved {
			t.Errorf("expected approved despite mail failure, got %s", stored.Review.Status)
		}
	})
}
