package get_day_availability

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	getDayAvailability "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_day_availability"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// DayAvailabilityResponse HTTP response model.
// FreeSlots: nil - слоты площадки не объявлены, поле опускается; пустой список - свободных слотов нет.
type DayAvailabilityResponse struct {
	Date       string                       `json:"date"`
	Venue      string                       `json:"venue"`
	Status     string                       `json:"status"`
	Selectable bool                         `json:"selectable"`
	Bookings   []handlers.BookingResponse   `json:"bookings"`
	Capacity   *int                         `json:"capacity,omitempty"`
	FreeSlots  *[]handlers.TimeSlotResponse `json:"freeSlots,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(ownerID, dateStr, venueStr string) (*getDayAvailability.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getDayAvailability.Request{
		OwnerID:  ownerID,
		Selector: domain.NewVenueSelector(venueStr),
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayAvailability.Response) *DayAvailabilityResponse {
	result := &DayAvailabilityResponse{
		Date:       resp.Date.String(),
		Venue:      string(resp.Selector),
		Status:     string(resp.Status),
		Selectable: resp.Selectable,
		Bookings:   handlers.FromDomainBookings(resp.Bookings),
	}

	if resp.Venue != nil {
		capacity := resp.Capacity
		result.Capacity = &capacity
	}
	if resp.Venue != nil && resp.FreeSlotsKnown {
		freeSlots := handlers.FromDomainTimeSlots(resp.FreeSlots)
		result.FreeSlots = &freeSlots
	}

	return result
}
