package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/ownerdata"
)

// UseCase use case получения доступности на конкретную дату
type UseCase struct {
	loader   DataLoader
	resolver *availability.Resolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader DataLoader, resolver *availability.Resolver, logger Logger) *UseCase {
	return &UseCase{
		loader:   loader,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayAvailability: owner=%s, venue=%s, date=%s", req.OwnerID, req.Selector, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем данные владельца
	snapshot, err := uc.loader.Load(ctx, req.OwnerID, ownerdata.DayPeriod(req.Date))
	if err != nil {
		if errors.Is(err, ownerdata.ErrOwnerNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var venue *domain.Venue
	if !req.Selector.IsAll() {
		venue = domain.FindVenue(snapshot.Venues, req.Selector.VenueID())
		if venue == nil {
			uc.logger.Warn("GetDayAvailability: venue=%s not found for owner=%s", req.Selector, req.OwnerID)
			return nil, ErrVenueNotFound
		}
	}

	// 3. Классифицируем день
	status := uc.resolver.DateStatus(req.Date, req.Selector, snapshot.Bookings, snapshot.Venues)
	resp := &Response{
		Date:       req.Date,
		Selector:   req.Selector,
		Status:     status,
		Selectable: availability.IsSelectable(status),
		Bookings:   uc.resolver.BookingsForDate(req.Date, req.Selector, snapshot.Bookings),
		Venue:      venue,
	}

	// 4. Для конкретной площадки добавляем ёмкость и свободные слоты
	if venue != nil {
		resp.Capacity = uc.resolver.Capacity(req.Selector, snapshot.Venues)
		resp.FreeSlots, resp.FreeSlotsKnown = uc.resolver.FreeSlots(req.Date, venue.ID, snapshot.Bookings, snapshot.Venues)
	}

	uc.logger.Info("GetDayAvailability: owner=%s, venue=%s, date=%s: status=%s, bookings=%d",
		req.OwnerID, req.Selector, req.Date, status, len(resp.Bookings))

	return resp, nil
}
