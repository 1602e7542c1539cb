package get_venue_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/ownerdata"
)

// UseCase use case построения календаря доступности площадок
type UseCase struct {
	loader   DataLoader
	resolver *availability.Resolver
	observer CalendarObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case. observer может быть nil.
func NewUseCase(
	loader DataLoader,
	resolver *availability.Resolver,
	observer CalendarObserver,
	logger Logger,
) *UseCase {
	return &UseCase{
		loader:   loader,
		resolver: resolver,
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetVenueCalendar: owner=%s, venue=%s, month=%s, adjacent=%t",
		req.OwnerID, req.Selector, req.Month, req.IncludeAdjacent)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetVenueCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем площадки и бронирования владельца за видимые месяцы
	snapshot, err := uc.loader.Load(ctx, req.OwnerID, visiblePeriod(req))
	if err != nil {
		if errors.Is(err, ownerdata.ErrOwnerNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 3. Проверяем, что выбранная площадка принадлежит владельцу
	var venue *domain.Venue
	if !req.Selector.IsAll() {
		venue = domain.FindVenue(snapshot.Venues, req.Selector.VenueID())
		if venue == nil {
			uc.logger.Warn("GetVenueCalendar: venue=%s not found for owner=%s", req.Selector, req.OwnerID)
			return nil, ErrVenueNotFound
		}
		if !venue.HasDeclaredSlots() {
			uc.logger.Warn("GetVenueCalendar: venue=%s has no time slots, using default capacity %d",
				venue.ID, uc.resolver.DefaultCapacity())
		}
	}

	// 4. Строим календарь: месяц каждого мини-календаря передаётся явно
	view := uc.resolver.CalendarView(req.Month, req.Selector, snapshot.Bookings, snapshot.Venues, req.IncludeAdjacent)

	if uc.observer != nil {
		uc.observer.ObserveCalendarDays(view.Main.Summary.Counts())
	}

	uc.logger.Info("GetVenueCalendar: owner=%s, venue=%s, month=%s: available=%d partial=%d booked=%d",
		req.OwnerID, req.Selector, req.Month,
		view.Main.Summary.Available, view.Main.Summary.Partial, view.Main.Summary.Booked)

	return &Response{
		OwnerID:  req.OwnerID,
		Selector: req.Selector,
		Venue:    venue,
		Capacity: uc.resolver.Capacity(req.Selector, snapshot.Venues),
		Venues:   snapshot.Venues,
		View:     view,
	}, nil
}

// visiblePeriod месяцы, дни которых классифицируются: основной и, при IncludeAdjacent, соседние
func visiblePeriod(req *Request) ownerdata.Period {
	if !req.IncludeAdjacent {
		return ownerdata.MonthPeriod(req.Month)
	}
	return ownerdata.Period{From: req.Month.Prev().FirstDay(), To: req.Month.Next().LastDay()}
}
