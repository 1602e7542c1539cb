package get_venue_calendar

import (
	"context"

	getVenueCalendar "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_venue_calendar"
)

type GetVenueCalendarUseCase interface {
	Execute(ctx context.Context, req *getVenueCalendar.Request) (*getVenueCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
