package list_venues

import (
	"context"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
)

// VenueSource источник площадок владельца (REST-клиент или репозиторий)
type VenueSource interface {
	GetVenues(ctx context.Context, ownerID string) ([]*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
