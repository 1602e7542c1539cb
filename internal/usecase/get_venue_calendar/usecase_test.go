package get_venue_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/ownerdata"
	"github.com/m04kA/SMC-VenueAvailability/pkg/logger"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

type fakeLoader struct {
	snapshot *ownerdata.Snapshot
	err      error
	calls    int
	period   ownerdata.Period
}

func (f *fakeLoader) Load(ctx context.Context, ownerID string, period ownerdata.Period) (*ownerdata.Snapshot, error) {
	f.calls++
	f.period = period
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

type recordingObserver struct {
	counts []map[string]int
}

func (o *recordingObserver) ObserveCalendarDays(counts map[string]int) {
	o.counts = append(o.counts, counts)
}

var june = types.Month{Year: 2024, Month: time.June}

func testSnapshot() *ownerdata.Snapshot {
	date := types.MustParseDate("2024-06-06")
	return &ownerdata.Snapshot{
		OwnerID: "o1",
		Venues: []*domain.Venue{
			{ID: "v1", Name: "Hall", TimeSlots: []domain.TimeSlot{{Label: "am"}, {Label: "pm"}}},
			{ID: "v2", Name: "Roof"},
		},
		Bookings: []*domain.Booking{
			{ID: "b1", VenueID: "v1", BookedDate: date, TimeSlot: "am", Status: domain.StatusConfirmed},
			{ID: "b2", VenueID: "v1", BookedDate: date, TimeSlot: "pm", Status: domain.StatusConfirmed},
			{ID: "b3", VenueID: "v2", BookedDate: date, TimeSlot: "am", Status: domain.StatusPending},
		},
	}
}

func TestExecute_SpecificVenue(t *testing.T) {
	observer := &recordingObserver{}
	loader := &fakeLoader{snapshot: testSnapshot()}
	uc := NewUseCase(loader, availability.NewResolver(0), observer, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "o1", Selector: "v1", Month: june, IncludeAdjacent: true})
	require.NoError(t, err)
	assert.Equal(t, types.MustParseDate("2024-05-01"), loader.period.From)
	assert.Equal(t, types.MustParseDate("2024-07-31"), loader.period.To)

	require.NotNil(t, resp.Venue)
	assert.Equal(t, "Hall", resp.Venue.Name)
	assert.Equal(t, 2, resp.Capacity)
	assert.Len(t, resp.Venues, 2)
	assert.Equal(t, availability.Summary{Available: 29, Booked: 1}, resp.View.Main.Summary)
	assert.NotNil(t, resp.View.Prev)
	assert.NotNil(t, resp.View.Next)

	require.Len(t, observer.counts, 1)
	assert.Equal(t, 1, observer.counts[0]["booked"])
}

func TestExecute_AllVenues(t *testing.T) {
	loader := &fakeLoader{snapshot: testSnapshot()}
	uc := NewUseCase(loader, availability.NewResolver(0), nil, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "o1", Selector: domain.AllVenues, Month: june})
	require.NoError(t, err)
	assert.Equal(t, ownerdata.MonthPeriod(june), loader.period)

	assert.Nil(t, resp.Venue)
	assert.Zero(t, resp.Capacity)
	assert.Nil(t, resp.View.Prev)
	assert.Equal(t, availability.Summary{Available: 29, Partial: 1}, resp.View.Main.Summary)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		loader    *fakeLoader
		req       *Request
		wantErr   error
		wantCalls int
	}{
		{
			name:    "missing owner",
			loader:  &fakeLoader{snapshot: testSnapshot()},
			req:     &Request{Selector: domain.AllVenues, Month: june},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "invalid month",
			loader:  &fakeLoader{snapshot: testSnapshot()},
			req:     &Request{OwnerID: "o1", Selector: domain.AllVenues, Month: types.Month{Year: 2024, Month: 13}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "year out of range",
			loader:  &fakeLoader{snapshot: testSnapshot()},
			req:     &Request{OwnerID: "o1", Selector: domain.AllVenues, Month: types.Month{Year: 1, Month: time.May}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "empty selector",
			loader:  &fakeLoader{snapshot: testSnapshot()},
			req:     &Request{OwnerID: "o1", Month: june},
			wantErr: ErrInvalidInput,
		},
		{
			name:      "foreign venue",
			loader:    &fakeLoader{snapshot: testSnapshot()},
			req:       &Request{OwnerID: "o1", Selector: "v9", Month: june},
			wantErr:   ErrVenueNotFound,
			wantCalls: 1,
		},
		{
			name:      "owner unknown to source",
			loader:    &fakeLoader{err: fmt.Errorf("wrapped: %w", ownerdata.ErrOwnerNotFound)},
			req:       &Request{OwnerID: "o1", Selector: domain.AllVenues, Month: june},
			wantErr:   ErrOwnerNotFound,
			wantCalls: 1,
		},
		{
			name:      "source failure",
			loader:    &fakeLoader{err: errors.New("timeout")},
			req:       &Request{OwnerID: "o1", Selector: domain.AllVenues, Month: june},
			wantErr:   ErrUpstream,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.loader, availability.NewResolver(0), nil, logger.Nop())

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, tt.loader.calls)
		})
	}
}
