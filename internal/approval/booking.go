package approval

// Bookings follow their own status set. It is wider than the listing set:
// "approved" is accepted as a target but carries no notification, and any
// member can be set regardless of the current status.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingApproved  BookingStatus = "approved"
)

var BookingStatuses = []BookingStatus{
	BookingPending,
	BookingConfirmed,
	BookingCancelled,
	BookingApproved,
}

func ValidBookingStatus(s BookingStatus) bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// BookingNotification returns the mail to send to the tourist for a status
// change. ok is false when the status carries no notification.
func BookingNotification(s BookingStatus) (subject, body string, ok bool) {
	switch s {
	case BookingConfirmed:
		return "Your booking has been confirmed!",
			"Hello,\n\nYour booking has been confirmed. We will contact you on WhatsApp, please check your WhatsApp messages.\n\nThank you for choosing us!",
			true
	case BookingCancelled:
		return "Your booking has been cancelled",
			"Hello,\n\nYour booking has been cancelled. We are sorry for the inconvenience.\n\nThank you for your understanding!",
			true
	case BookingPending:
		return "Your booking is submitted and pending",
			"Hello,\n\nYour booking is currently pending. We will update you soon.\n\nThank you for your patience!",
			true
	default:
		return "", "", false
	}
}
