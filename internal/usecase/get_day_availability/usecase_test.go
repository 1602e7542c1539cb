package get_day_availability

import (
	"context"
	"errors"
	"testing"

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
	period   ownerdata.Period
}

func (f *fakeLoader) Load(ctx context.Context, ownerID string, period ownerdata.Period) (*ownerdata.Snapshot, error) {
	f.period = period
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

var day = types.MustParseDate("2024-06-06")

func testSnapshot() *ownerdata.Snapshot {
	return &ownerdata.Snapshot{
		OwnerID: "o1",
		Venues: []*domain.Venue{
			{ID: "v1", Name: "Hall", TimeSlots: []domain.TimeSlot{{Label: "morning"}, {Label: "afternoon"}, {Label: "evening"}}},
			{ID: "v2", Name: "Roof"},
		},
		Bookings: []*domain.Booking{
			{ID: "b1", VenueID: "v1", BookedDate: day, TimeSlot: "morning", Status: domain.StatusConfirmed},
			{ID: "b2", VenueID: "v1", BookedDate: day, TimeSlot: "evening", Status: domain.StatusCancelled},
			{ID: "b3", VenueID: "v2", BookedDate: day, TimeSlot: "morning", Status: domain.StatusPending},
			{ID: "b4", VenueID: "v1", BookedDate: day.AddDays(1), TimeSlot: "morning", Status: domain.StatusPending},
		},
	}
}

func TestExecute_SpecificVenue(t *testing.T) {
	loader := &fakeLoader{snapshot: testSnapshot()}
	uc := NewUseCase(loader, availability.NewResolver(0), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "o1", Selector: "v1", Date: day})
	require.NoError(t, err)
	assert.Equal(t, ownerdata.DayPeriod(day), loader.period)

	assert.Equal(t, domain.DatePartial, resp.Status)
	assert.True(t, resp.Selectable)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "b1", resp.Bookings[0].ID)
	assert.Equal(t, 3, resp.Capacity)

	require.True(t, resp.FreeSlotsKnown)
	labels := make([]string, 0, len(resp.FreeSlots))
	for _, s := range resp.FreeSlots {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"afternoon", "evening"}, labels)
}

func TestExecute_BookedDayHasNoFreeSlots(t *testing.T) {
	snapshot := testSnapshot()
	snapshot.Bookings = append(snapshot.Bookings,
		&domain.Booking{ID: "b5", VenueID: "v1", BookedDate: day, TimeSlot: "morning", Status: domain.StatusPending},
		&domain.Booking{ID: "b6", VenueID: "v1", BookedDate: day, TimeSlot: "afternoon", Status: domain.StatusConfirmed},
	)
	uc := NewUseCase(&fakeLoader{snapshot: snapshot}, availability.NewResolver(0), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "o1", Selector: "v1", Date: day})
	require.NoError(t, err)

	assert.Equal(t, domain.DateBooked, resp.Status)
	assert.False(t, resp.Selectable)
	assert.True(t, resp.FreeSlotsKnown)
	assert.NotNil(t, resp.FreeSlots)
	assert.Empty(t, resp.FreeSlots)
}

func TestExecute_AllVenues(t *testing.T) {
	uc := NewUseCase(&fakeLoader{snapshot: testSnapshot()}, availability.NewResolver(0), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "o1", Selector: domain.AllVenues, Date: day})
	require.NoError(t, err)

	assert.Equal(t, domain.DatePartial, resp.Status)
	assert.Len(t, resp.Bookings, 2)
	assert.Nil(t, resp.Venue)
	assert.Zero(t, resp.Capacity)
	assert.Nil(t, resp.FreeSlots)
	assert.False(t, resp.FreeSlotsKnown)
}

func TestExecute_EmptyDayIsAvailable(t *testing.T) {
	uc := NewUseCase(&fakeLoader{snapshot: testSnapshot()}, availability.NewResolver(0), logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{OwnerID: "o1", Selector: "v2", Date: day.AddDays(10)})
	require.NoError(t, err)

	assert.Equal(t, domain.DateAvailable, resp.Status)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
	assert.Equal(t, domain.DefaultVenueCapacity, resp.Capacity)
	assert.False(t, resp.FreeSlotsKnown)
	assert.Nil(t, resp.FreeSlots)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		loader  *fakeLoader
		req     *Request
		wantErr error
	}{
		{"zero date", &fakeLoader{snapshot: testSnapshot()}, &Request{OwnerID: "o1", Selector: "v1"}, ErrInvalidInput},
		{"missing owner", &fakeLoader{snapshot: testSnapshot()}, &Request{Selector: "v1", Date: day}, ErrInvalidInput},
		{"unknown venue", &fakeLoader{snapshot: testSnapshot()}, &Request{OwnerID: "o1", Selector: "nope", Date: day}, ErrVenueNotFound},
		{"owner not found", &fakeLoader{err: ownerdata.ErrOwnerNotFound}, &Request{OwnerID: "o1", Selector: "v1", Date: day}, ErrOwnerNotFound},
		{"source down", &fakeLoader{err: errors.New("boom")}, &Request{OwnerID: "o1", Selector: "v1", Date: day}, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.loader, availability.NewResolver(0), logger.Nop())
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
