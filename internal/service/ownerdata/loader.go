package ownerdata

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/internal/integrations/venueapi"
)

// Snapshot площадки и бронирования владельца, загруженные одним запросом.
// Bookings содержит только бронирования периода Period.
type Snapshot struct {
	OwnerID  string
	Period   Period
	Venues   []*domain.Venue
	Bookings []*domain.Booking
}

// Loader загружает данные владельца из источников
type Loader struct {
	venues   VenueSource
	bookings BookingSource
	logger   Logger
}

// NewLoader создает новый экземпляр загрузчика
func NewLoader(venues VenueSource, bookings BookingSource, logger Logger) *Loader {
	return &Loader{
		venues:   venues,
		bookings: bookings,
		logger:   logger,
	}
}

// Load загружает площадки и бронирования за период параллельно.
// Первая ошибка отменяет второй запрос и возвращается вызывающему.
func (l *Loader) Load(ctx context.Context, ownerID string, period Period) (*Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		snapshot = &Snapshot{OwnerID: ownerID, Period: period}
		firstErr error
		once     sync.Once
		wg       sync.WaitGroup
	)

	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(2)

	go func() {
		defer wg.Done()
		venues, err := l.venues.GetVenues(ctx, ownerID)
		if err != nil {
			fail(fmt.Errorf("get venues: %w", err))
			return
		}
		snapshot.Venues = venues
	}()

	go func() {
		defer wg.Done()
		bookings, err := l.loadBookings(ctx, ownerID, period)
		if err != nil {
			fail(fmt.Errorf("get bookings: %w", err))
			return
		}
		snapshot.Bookings = bookings
	}()

	wg.Wait()

	if firstErr != nil {
		if errors.Is(firstErr, venueapi.ErrOwnerNotFound) {
			l.logger.Warn("Load: owner=%s not found in source", ownerID)
			return nil, ErrOwnerNotFound
		}
		l.logger.Error("Load: failed to load data for owner=%s: %v", ownerID, firstErr)
		return nil, fmt.Errorf("%w: %v", ErrSourceFailed, firstErr)
	}

	l.logger.Info("Load: owner=%s period=%s venues=%d bookings=%d",
		ownerID, period, len(snapshot.Venues), len(snapshot.Bookings))
	return snapshot, nil
}

func (l *Loader) loadBookings(ctx context.Context, ownerID string, period Period) ([]*domain.Booking, error) {
	if src, ok := l.bookings.(PeriodBookingSource); ok {
		return src.GetBookingsInPeriod(ctx, ownerID, period.From, period.To)
	}

	all, err := l.bookings.GetBookings(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if b != nil && period.Contains(b.BookedDate) {
			result = append(result, b)
		}
	}
	return result, nil
}
