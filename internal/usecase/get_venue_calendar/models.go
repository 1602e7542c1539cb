package get_venue_calendar

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// Request модель запроса календаря
type Request struct {
	OwnerID         string               // ID владельца (из аутентификации)
	Selector        domain.VenueSelector // "all" или ID площадки
	Month           types.Month          // Отображаемый месяц
	IncludeAdjacent bool                 // Строить ли мини-календари соседних месяцев
}

// Response модель ответа с календарём
type Response struct {
	OwnerID  string
	Selector domain.VenueSelector
	Venue    *domain.Venue // nil для "all"
	Capacity int           // 0 для "all"
	Venues   []*domain.Venue
	View     availability.View
}
