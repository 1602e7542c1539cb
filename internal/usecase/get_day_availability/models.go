package get_day_availability

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// Request модель запроса доступности на дату
type Request struct {
	OwnerID  string
	Selector domain.VenueSelector
	Date     types.Date
}

// Response модель ответа: статус дня и бронирования, которые его определяют
type Response struct {
	Date       types.Date
	Selector   domain.VenueSelector
	Status     domain.DateStatus
	Selectable bool
	Bookings   []*domain.Booking

	// Заполняются только для конкретной площадки.
	// FreeSlots определены, только если FreeSlotsKnown (у площадки объявлены слоты);
	// для booked-дня список пуст.
	Venue          *domain.Venue
	Capacity       int
	FreeSlots      []domain.TimeSlot
	FreeSlotsKnown bool
}
