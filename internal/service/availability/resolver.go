package availability

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// Resolver классифицирует календарные даты по доступности площадок.
// Не хранит состояния между вызовами: все методы - чистые функции входных данных.
type Resolver struct {
	defaultCapacity int
}

// NewResolver создаёт резолвер. Неположительная ёмкость заменяется на domain.DefaultVenueCapacity.
func NewResolver(defaultCapacity int) *Resolver {
	if defaultCapacity <= 0 {
		defaultCapacity = domain.DefaultVenueCapacity
	}
	return &Resolver{defaultCapacity: defaultCapacity}
}

// DefaultCapacity ёмкость, которая используется для площадок без объявленных слотов
func (r *Resolver) DefaultCapacity() int {
	return r.defaultCapacity
}

// BookingsForDate возвращает неотменённые бронирования на дату с учётом селектора площадки.
// Порядок входного списка сохраняется.
func (r *Resolver) BookingsForDate(date types.Date, selector domain.VenueSelector, bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b == nil || b.BookedDate != date {
			continue
		}
		if matches(b, selector) {
			result = append(result, b)
		}
	}
	return result
}

// DateStatus классифицирует дату: available, partial или booked
func (r *Resolver) DateStatus(
	date types.Date,
	selector domain.VenueSelector,
	bookings []*domain.Booking,
	venues []*domain.Venue,
) domain.DateStatus {
	return r.classify(len(r.BookingsForDate(date, selector, bookings)), selector, venues)
}

// Capacity ёмкость площадки из селектора (0 для всех площадок - ёмкость не определена)
func (r *Resolver) Capacity(selector domain.VenueSelector, venues []*domain.Venue) int {
	if selector.IsAll() {
		return 0
	}
	return domain.FindVenue(venues, selector.VenueID()).Capacity(r.defaultCapacity)
}

// FreeSlots возвращает слоты площадки, не занятые неотменёнными бронированиями на дату.
// known=false для неизвестной площадки или площадки без объявленных слотов: ёмкость
// берётся по умолчанию и перечислить свободные слоты нельзя.
// Если бронирований не меньше ёмкости, список пуст даже при незанятых метках:
// день booked, и свободных слотов у него нет.
func (r *Resolver) FreeSlots(
	date types.Date,
	venueID string,
	bookings []*domain.Booking,
	venues []*domain.Venue,
) (free []domain.TimeSlot, known bool) {
	venue := domain.FindVenue(venues, venueID)
	if !venue.HasDeclaredSlots() {
		return nil, false
	}

	free = make([]domain.TimeSlot, 0)
	active := r.BookingsForDate(date, domain.VenueSelector(venueID), bookings)
	if len(active) >= venue.Capacity(r.defaultCapacity) {
		return free, true
	}

	taken := make(map[string]struct{}, len(active))
	for _, b := range active {
		taken[b.TimeSlot] = struct{}{}
	}

	for _, slot := range venue.TimeSlots {
		if _, ok := taken[slot.Label]; !ok {
			free = append(free, slot)
		}
	}
	return free, true
}

// IsSelectable можно ли начать бронирование на дату с таким статусом
func IsSelectable(status domain.DateStatus) bool {
	return status.IsSelectable()
}

// classify - общая часть DateStatus и построения сетки.
// Пустой день проверяется до сравнения с ёмкостью: при ёмкости 0 пустой день не должен стать booked.
func (r *Resolver) classify(count int, selector domain.VenueSelector, venues []*domain.Venue) domain.DateStatus {
	if count == 0 {
		return domain.DateAvailable
	}
	if selector.IsAll() {
		return domain.DatePartial
	}
	if count >= r.Capacity(selector, venues) {
		return domain.DateBooked
	}
	return domain.DatePartial
}

func matches(b *domain.Booking, selector domain.VenueSelector) bool {
	if b.IsCancelled() {
		return false
	}
	return selector.IsAll() || b.VenueID == selector.VenueID()
}
