package approval

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var ErrInvalidStatus = errors.New(`status must be "approved" or "rejected"`)

// Review holds the admin-approval bookkeeping shared by hotels, vehicles and
// custom tour requests. Embed it with a gorm prefix so every entity carries
// the same columns and goes through the same transition logic.
type Review struct {
	Status       Status     `json:"status" gorm:"default:pending"`
	AdminNotes   string     `json:"admin_notes"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	ReviewedByID *uuid.UUID `json:"reviewed_by_id" gorm:"type:uuid"`
}

func NewReview() Review {
	return Review{Status: StatusPending}
}

// Transition applies an admin decision. Only "approved" and "rejected" are
// accepted as targets; the current status is deliberately not checked, so
// repeating the same call restamps the reviewer and timestamp but is
// otherwise a no-op.
func (r *Review) Transition(target Status, notes string, adminID uuid.UUID, now time.Time) error {
	if target != StatusApproved && target != StatusRejected {
		return ErrInvalidStatus
	}
	r.Status = target
	r.AdminNotes = notes
	r.ReviewedAt = &now
	r.ReviewedByID = &adminID
	return nil
}
