package approval

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTransition(t *testing.T) {
	adminID := uuid.New()
	now := time.Now()

	t.Run("Approve", func(t *testing.T) {
		r := NewReview()
		if r.Status != StatusPending {
			t.Fatalf("expected initial status pending, got %s", r.Status)
		}

		if err := r.Transition(StatusApproved, "looks good", adminID, now); err != nil {
			t.Fatalf("transition returned error: %v", err)
		}
		if r.Status != StatusApproved {
			t.Errorf("expected status approved, got %s", r.Status)
		}
		if r.AdminNotes != "looks good" {
			t.Errorf("expected admin notes to be stamped, got %q", r.AdminNotes)
		}
		if r.ReviewedAt == nil || !r.ReviewedAt.Equal(now) {
			t.Errorf("expected reviewedAt %v, got %v", now, r.ReviewedAt)
		}
		if r.ReviewedByID == nil || *r.ReviewedByID != adminID {
			t.Errorf("expected reviewedBy %s, got %v", adminID, r.ReviewedByID)
		}
	})

	t.Run("Reject", func(t *testing.T) {
		r := NewReview()
		if err := r.Transition(StatusRejected, "", adminID, now); err != nil {
			t.Fatalf("transition returned error: %v", err)
		}
		if r.Status != StatusRejected {
			t.Errorf("expected status rejected, got %s", r.Status)
		}
		if r.AdminNotes != "" {
			t.Errorf("expected empty notes, got %q", r.AdminNotes)
		}
	})

	t.Run("InvalidTarget", func(t *testing.T) {
		r := NewReview()
		for _, target := range []Status{StatusPending, "confirmed", "nonsense", ""} {
			if err := r.Transition(target, "notes", adminID, now); err == nil {
				t.Errorf("expected error for target %q, got nil", target)
			}
		}
		// The record must be untouched after failed transitions.
		if r.Status != StatusPending || r.AdminNotes != "" || r.ReviewedAt != nil || r.ReviewedByID != nil {
			t.Errorf("review mutated by failed transition: %+v", r)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		r := NewReview()
		later := now.Add(time.Minute)

		if err := r.Transition(StatusApproved, "ok", adminID, now); err != nil {
			t.Fatalf("first transition: %v", err)
		}
		if err := r.Transition(StatusApproved, "ok", adminID, later); err != nil {
			t.Fatalf("repeated transition: %v", err)
		}
		if r.Status != StatusApproved || r.AdminNotes != "ok" {
			t.Errorf("repeated call changed outcome: %+v", r)
		}
		if r.ReviewedAt == nil || !r.ReviewedAt.Equal(later) {
			t.Errorf("expected timestamp to advance to %v, got %v", later, r.ReviewedAt)
		}
	})
}

func TestBookingStatuses(t *testing.T) {
	for _, s := range BookingStatuses {
		if !ValidBookingStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	for _, s := range []BookingStatus{"rejected", "done", ""} {
		if ValidBookingStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestBookingNotification(t *testing.T) {
	for _, s := range []BookingStatus{BookingConfirmed, BookingCancelled, BookingPending} {
		subject, body, ok := BookingNotification(s)
		if !ok {
			t.Errorf("expected a notification for %q", s)
		}
		if subject == "" || body == "" {
			t.Errorf("empty notification for %q", s)
		}
	}

	// The odd member of the set: accepted as a target, but silent.
	if _, _, ok := BookingNotification(BookingApproved); ok {
		t.Error("expected no notification for approved")
	}
}
