package venueapi

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// TimeSlotDTO слот площадки в ответе API
type TimeSlotDTO struct {
	Label     string `json:"label" validate:"required"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
}

// VenueDTO площадка в ответе API
type VenueDTO struct {
	ID        string        `json:"id" validate:"required"`
	OwnerID   string        `json:"ownerId"`
	Name      string        `json:"name"`
	TimeSlots []TimeSlotDTO `json:"timeSlots" validate:"dive"`
}

// BookingDTO бронирование в ответе API. Дата и статус приходят строками и декодируются отдельно.
type BookingDTO struct {
	ID           string `json:"id" validate:"required"`
	VenueID      string `json:"venueId" validate:"required"`
	BookedDate   string `json:"bookedDate" validate:"required"`
	TimeSlot     string `json:"timeSlot"`
	Status       string `json:"status" validate:"required"`
	CustomerName string `json:"customerName,omitempty"`
	EventName    string `json:"eventName,omitempty"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Skipped запись, отброшенная при декодировании
type Skipped struct {
	ID     string
	Reason error
}

var validate = validator.New()

// ToDomainVenue конвертирует DTO площадки в domain модель.
// Некорректное время начала/окончания слота не отбрасывает слот: слот остаётся без времени.
func ToDomainVenue(dto VenueDTO) (*domain.Venue, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: venue %q: %v", ErrInvalidResponse, dto.ID, err)
	}

	venue := &domain.Venue{
		ID:        dto.ID,
		OwnerID:   dto.OwnerID,
		Name:      dto.Name,
		TimeSlots: make([]domain.TimeSlot, 0, len(dto.TimeSlots)),
	}

	for _, s := range dto.TimeSlots {
		var start, end *types.TimeString
		if ts, err := types.NewTimeStringFromString(s.StartTime); err == nil {
			start = &ts
		}
		if ts, err := types.NewTimeStringFromString(s.EndTime); err == nil {
			end = &ts
		}
		venue.TimeSlots = append(venue.TimeSlots, domain.NewTimeSlot(s.Label, start, end))
	}

	return venue, nil
}

// ToDomainVenues конвертирует список площадок, отбрасывая некорректные записи
func ToDomainVenues(dtos []VenueDTO) ([]*domain.Venue, []Skipped) {
	venues := make([]*domain.Venue, 0, len(dtos))
	skipped := make([]Skipped, 0)

	for _, dto := range dtos {
		v, err := ToDomainVenue(dto)
		if err != nil {
			skipped = append(skipped, Skipped{ID: dto.ID, Reason: err})
			continue
		}
		venues = append(venues, v)
	}

	return venues, skipped
}

// ToDomainBooking конвертирует DTO бронирования: дата приводится к календарной,
// статус нормализуется через domain.ParseBookingStatus
func ToDomainBooking(dto BookingDTO, ownerID string) (*domain.Booking, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: booking %q: %v", ErrInvalidResponse, dto.ID, err)
	}

	date, err := types.ParseDate(dto.BookedDate)
	if err != nil {
		return nil, fmt.Errorf("booking %q: %w", dto.ID, err)
	}

	status, err := domain.ParseBookingStatus(dto.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %q: %w", dto.ID, err)
	}

	return &domain.Booking{
		ID:           dto.ID,
		OwnerID:      ownerID,
		VenueID:      dto.VenueID,
		BookedDate:   date,
		TimeSlot:     dto.TimeSlot,
		Status:       status,
		CustomerName: dto.CustomerName,
		EventName:    dto.EventName,
	}, nil
}

// ToDomainBookings конвертирует список бронирований. Одна битая запись не должна
// обнулять весь календарь, поэтому такие записи отбрасываются и возвращаются в skipped.
func ToDomainBookings(dtos []BookingDTO, ownerID string) ([]*domain.Booking, []Skipped) {
	bookings := make([]*domain.Booking, 0, len(dtos))
	skipped := make([]Skipped, 0)

	for _, dto := range dtos {
		b, err := ToDomainBooking(dto, ownerID)
		if err != nil {
			skipped = append(skipped, Skipped{ID: dto.ID, Reason: err})
			continue
		}
		bookings = append(bookings, b)
	}

	return bookings, skipped
}
