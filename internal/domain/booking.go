package domain

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// ErrEmptyBookingStatus возвращается, когда статус бронирования не передан
var ErrEmptyBookingStatus = errors.New("domain: empty booking status")

// BookingStatus represents the lifecycle status of a booking.
// Upstream may send statuses beyond the known ones (completed, in_progress, ...):
// they are kept as is and occupy the slot like any other non-cancelled booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus decodes a free-form status string coming from upstream.
// Case and surrounding spaces are ignored, "canceled" is accepted as a spelling of cancelled.
// Only an empty status is an error.
func ParseBookingStatus(s string) (BookingStatus, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch normalized {
	case "":
		return "", ErrEmptyBookingStatus
	case "canceled":
		return StatusCancelled, nil
	default:
		return BookingStatus(normalized), nil
	}
}

// IsKnown returns false for statuses outside pending/confirmed/cancelled
func (s BookingStatus) IsKnown() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a booking of a venue time slot on a calendar date
type Booking struct {
	ID         string
	OwnerID    string
	VenueID    string
	BookedDate types.Date
	TimeSlot   string
	Status     BookingStatus

	// Данные для отображения в деталях дня
	CustomerName string
	EventName    string
}

// IsCancelled returns true if the booking must be excluded from availability accounting
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return !b.IsCancelled()
}
