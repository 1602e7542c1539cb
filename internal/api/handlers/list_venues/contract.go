package list_venues

import (
	"context"

	listVenues "github.com/m04kA/SMC-VenueAvailability/internal/usecase/list_venues"
)

type ListVenuesUseCase interface {
	Execute(ctx context.Context, req *listVenues.Request) (*listVenues.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
