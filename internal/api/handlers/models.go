package handlers

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
)

// TimeSlotResponse слот площадки
type TimeSlotResponse struct {
	Label     string  `json:"label"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
}

// VenueResponse краткое описание площадки
type VenueResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
}

// BookingResponse бронирование на дату
type BookingResponse struct {
	ID           string `json:"id"`
	VenueID      string `json:"venueId"`
	BookedDate   string `json:"bookedDate"`
	TimeSlot     string `json:"timeSlot"`
	Status       string `json:"status"`
	CustomerName string `json:"customerName,omitempty"`
	EventName    string `json:"eventName,omitempty"`
}

func FromDomainTimeSlots(slots []domain.TimeSlot) []TimeSlotResponse {
	result := make([]TimeSlotResponse, len(slots))
	for i, s := range slots {
		result[i] = TimeSlotResponse{Label: s.Label}
		if s.StartTime != nil {
			start := s.StartTime.String()
			result[i].StartTime = &start
		}
		if s.EndTime != nil {
			end := s.EndTime.String()
			result[i].EndTime = &end
		}
	}
	return result
}

func FromDomainVenue(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		TimeSlots: FromDomainTimeSlots(v.TimeSlots),
	}
}

func FromDomainBookings(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = BookingResponse{
			ID:           b.ID,
			VenueID:      b.VenueID,
			BookedDate:   b.BookedDate.String(),
			TimeSlot:     b.TimeSlot,
			Status:       string(b.Status),
			CustomerName: b.CustomerName,
			EventName:    b.EventName,
		}
	}
	return result
}
