package ownerdata

import (
	"context"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// VenueSource источник площадок владельца (REST API или реплика в PostgreSQL)
type VenueSource interface {
	GetVenues(ctx context.Context, ownerID string) ([]*domain.Venue, error)
}

// BookingSource источник бронирований владельца
type BookingSource interface {
	GetBookings(ctx context.Context, ownerID string) ([]*domain.Booking, error)
}

// PeriodBookingSource источник, который сам ограничивает выборку периодом.
// Реализуется репозиторием PostgreSQL; для остальных источников период применяется в памяти.
type PeriodBookingSource interface {
	GetBookingsInPeriod(ctx context.Context, ownerID string, from, to types.Date) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
