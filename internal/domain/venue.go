package domain

import "github.com/m04kA/SMC-VenueAvailability/pkg/types"

// TimeSlot represents a named period within a day that can be booked independently
type TimeSlot struct {
	Label     string
	StartTime *types.TimeString
	EndTime   *types.TimeString
}

// NewTimeSlot собирает слот. Интервал, в котором начало не раньше конца,
// отбрасывается целиком: слот остаётся и занимает ёмкость, но без времени.
func NewTimeSlot(label string, start, end *types.TimeString) TimeSlot {
	slot := TimeSlot{Label: label, StartTime: start, EndTime: end}
	if start != nil && end != nil && !start.IsBefore(*end) {
		slot.StartTime, slot.EndTime = nil, nil
	}
	return slot
}

// Venue represents a bookable space with a fixed set of time slots
type Venue struct {
	ID        string
	OwnerID   string
	Name      string
	TimeSlots []TimeSlot
}

// Capacity returns the number of declared slots or fallback when none are declared
func (v *Venue) Capacity(fallback int) int {
	if v == nil || len(v.TimeSlots) == 0 {
		return fallback
	}
	return len(v.TimeSlots)
}

// HasDeclaredSlots returns true if the venue declares its own time slots
func (v *Venue) HasDeclaredSlots() bool {
	return v != nil && len(v.TimeSlots) > 0
}

// FindVenue ищет площадку по ID, nil если не найдена
func FindVenue(venues []*Venue, id string) *Venue {
	for _, v := range venues {
		if v != nil && v.ID == id {
			return v
		}
	}
	return nil
}
