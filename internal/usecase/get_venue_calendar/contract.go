package get_venue_calendar

import (
	"context"

	"github.com/m04kA/SMC-VenueAvailability/internal/service/ownerdata"
)

// DataLoader загружает площадки и бронирования владельца за период
type DataLoader interface {
	Load(ctx context.Context, ownerID string, period ownerdata.Period) (*ownerdata.Snapshot, error)
}

// CalendarObserver получает счётчики классифицированных дней (метрики)
type CalendarObserver interface {
	ObserveCalendarDays(counts map[string]int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
