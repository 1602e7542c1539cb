package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

var (
	day     = types.MustParseDate("2024-06-06")
	nextDay = types.MustParseDate("2024-06-07")
)

func booking(id, venueID string, date types.Date, slot string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		VenueID:    venueID,
		BookedDate: date,
		TimeSlot:   slot,
		Status:     status,
	}
}

func venueWithSlots(id string, labels ...string) *domain.Venue {
	v := &domain.Venue{ID: id, Name: "Venue " + id}
	for _, l := range labels {
		v.TimeSlots = append(v.TimeSlots, domain.TimeSlot{Label: l})
	}
	return v
}

func TestNewResolver_DefaultCapacity(t *testing.T) {
	assert.Equal(t, domain.DefaultVenueCapacity, NewResolver(0).DefaultCapacity())
	assert.Equal(t, domain.DefaultVenueCapacity, NewResolver(-3).DefaultCapacity())
	assert.Equal(t, 6, NewResolver(6).DefaultCapacity())
}

func TestBookingsForDate(t *testing.T) {
	r := NewResolver(0)
	bookings := []*domain.Booking{
		booking("1", "A", day, "morning", domain.StatusConfirmed),
		booking("2", "B", day, "morning", domain.StatusPending),
		booking("3", "A", day, "evening", domain.StatusCancelled),
		booking("4", "A", nextDay, "morning", domain.StatusConfirmed),
		nil,
		booking("5", "A", day, "morning", domain.StatusPending),
	}

	t.Run("all venues", func(t *testing.T) {
		got := r.BookingsForDate(day, domain.AllVenues, bookings)
		require.Len(t, got, 3)
		assert.Equal(t, "1", got[0].ID)
		assert.Equal(t, "2", got[1].ID)
		assert.Equal(t, "5", got[2].ID)
	})

	t.Run("specific venue excludes other venues", func(t *testing.T) {
		got := r.BookingsForDate(day, domain.VenueSelector("A"), bookings)
		require.Len(t, got, 2)
		for _, b := range got {
			assert.Equal(t, "A", b.VenueID)
			assert.NotEqual(t, domain.StatusCancelled, b.Status)
		}
	})

	t.Run("unknown venue", func(t *testing.T) {
		assert.Empty(t, r.BookingsForDate(day, domain.VenueSelector("Z"), bookings))
	})

	t.Run("empty input", func(t *testing.T) {
		got := r.BookingsForDate(day, domain.AllVenues, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestDateStatus_NoBookingsIsAvailable(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A", "morning"), venueWithSlots("B")}

	for _, selector := range []domain.VenueSelector{domain.AllVenues, "A", "B", "missing"} {
		assert.Equal(t, domain.DateAvailable, r.DateStatus(day, selector, nil, venues), "selector %s", selector)
	}
}

func TestDateStatus_AllVenuesNeverBooked(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A", "morning")}

	bookings := make([]*domain.Booking, 0)
	for i := 0; i < 10; i++ {
		bookings = append(bookings, booking("b", "A", day, "morning", domain.StatusConfirmed))
	}

	assert.Equal(t, domain.DatePartial, r.DateStatus(day, domain.AllVenues, bookings, venues))
	assert.Equal(t, domain.DateBooked, r.DateStatus(day, "A", bookings, venues))
}

func TestDateStatus_SpecificVenueCapacity(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A", "s1", "s2", "s3")}

	tests := []struct {
		name  string
		count int
		want  domain.DateStatus
	}{
		{name: "empty", count: 0, want: domain.DateAvailable},
		{name: "one of three", count: 1, want: domain.DatePartial},
		{name: "two of three", count: 2, want: domain.DatePartial},
		{name: "full", count: 3, want: domain.DateBooked},
		{name: "overbooked", count: 5, want: domain.DateBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bookings := make([]*domain.Booking, 0, tt.count)
			for i := 0; i < tt.count; i++ {
				bookings = append(bookings, booking("x", "A", day, "s1", domain.StatusConfirmed))
			}
			assert.Equal(t, tt.want, r.DateStatus(day, "A", bookings, venues))
		})
	}
}

func TestDateStatus_CancelledExcluded(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A", "s1")}
	bookings := []*domain.Booking{
		booking("1", "A", day, "s1", domain.StatusCancelled),
		booking("2", "A", day, "s1", domain.StatusCancelled),
	}

	assert.Equal(t, domain.DateAvailable, r.DateStatus(day, "A", bookings, venues))
	assert.Equal(t, domain.DateAvailable, r.DateStatus(day, domain.AllVenues, bookings, venues))
}

func TestDateStatus_CapacityFallback(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A")}

	bookings := []*domain.Booking{
		booking("1", "A", day, "s", domain.StatusConfirmed),
		booking("2", "A", day, "s", domain.StatusConfirmed),
		booking("3", "A", day, "s", domain.StatusPending),
	}
	assert.Equal(t, domain.DatePartial, r.DateStatus(day, "A", bookings, venues))

	bookings = append(bookings, booking("4", "A", day, "s", domain.StatusConfirmed))
	assert.Equal(t, domain.DateBooked, r.DateStatus(day, "A", bookings, venues))
}

func TestDateStatus_UnknownVenueUsesFallback(t *testing.T) {
	r := NewResolver(2)
	bookings := []*domain.Booking{
		booking("1", "ghost", day, "s", domain.StatusConfirmed),
	}
	assert.Equal(t, domain.DatePartial, r.DateStatus(day, "ghost", bookings, nil))

	bookings = append(bookings, booking("2", "ghost", day, "s", domain.StatusConfirmed))
	assert.Equal(t, domain.DateBooked, r.DateStatus(day, "ghost", bookings, nil))
}

func TestClassify_EmptyDayBeforeCapacity(t *testing.T) {
	r := &Resolver{defaultCapacity: 0}
	assert.Equal(t, domain.DateAvailable, r.classify(0, "A", nil))
	assert.Equal(t, domain.DateBooked, r.classify(1, "A", nil))
}

func TestIsSelectable(t *testing.T) {
	assert.True(t, IsSelectable(domain.DateAvailable))
	assert.True(t, IsSelectable(domain.DatePartial))
	assert.False(t, IsSelectable(domain.DateBooked))
}

func TestScenario_ConfirmedAndCancelled(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("V", "morning", "evening")}

	bookings := []*domain.Booking{
		booking("1", "V", day, "morning", domain.StatusConfirmed),
		booking("2", "V", day, "evening", domain.StatusCancelled),
	}
	assert.Equal(t, domain.DatePartial, r.DateStatus(day, "V", bookings, venues))

	bookings[1].Status = domain.StatusConfirmed
	assert.Equal(t, domain.DateBooked, r.DateStatus(day, "V", bookings, venues))
}

func TestCapacity(t *testing.T) {
	r := NewResolver(4)
	venues := []*domain.Venue{venueWithSlots("A", "s1", "s2"), venueWithSlots("B")}

	assert.Equal(t, 0, r.Capacity(domain.AllVenues, venues))
	assert.Equal(t, 2, r.Capacity("A", venues))
	assert.Equal(t, 4, r.Capacity("B", venues))
	assert.Equal(t, 4, r.Capacity("C", venues))
}

func TestFreeSlots(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A", "morning", "afternoon", "evening"), venueWithSlots("B")}
	bookings := []*domain.Booking{
		booking("1", "A", day, "morning", domain.StatusConfirmed),
		booking("2", "A", day, "evening", domain.StatusCancelled),
		booking("3", "B", day, "afternoon", domain.StatusConfirmed),
		booking("4", "A", nextDay, "afternoon", domain.StatusConfirmed),
	}

	free, known := r.FreeSlots(day, "A", bookings, venues)
	require.True(t, known)
	require.Len(t, free, 2)
	assert.Equal(t, "afternoon", free[0].Label)
	assert.Equal(t, "evening", free[1].Label)

	free, known = r.FreeSlots(day, "B", bookings, venues)
	assert.False(t, known)
	assert.Nil(t, free)

	free, known = r.FreeSlots(day, "missing", bookings, venues)
	assert.False(t, known)
	assert.Nil(t, free)
}

func TestFreeSlots_AgreeWithDateStatus(t *testing.T) {
	r := NewResolver(0)
	venues := []*domain.Venue{venueWithSlots("A", "am", "pm"), venueWithSlots("B")}

	tests := []struct {
		name      string
		venueID   string
		bookings  []*domain.Booking
		status    domain.DateStatus
		known     bool
		freeSlots []string
	}{
		{
			name:    "two bookings on the same label fill the venue",
			venueID: "A",
			bookings: []*domain.Booking{
				booking("1", "A", day, "am", domain.StatusConfirmed),
				booking("2", "A", day, "am", domain.StatusPending),
			},
			status:    domain.DateBooked,
			known:     true,
			freeSlots: []string{},
		},
		{
			name:    "booking without label still takes capacity",
			venueID: "A",
			bookings: []*domain.Booking{
				booking("1", "A", day, "", domain.StatusConfirmed),
				booking("2", "A", day, "pm", domain.StatusConfirmed),
			},
			status:    domain.DateBooked,
			known:     true,
			freeSlots: []string{},
		},
		{
			name:    "one of two slots taken",
			venueID: "A",
			bookings: []*domain.Booking{
				booking("1", "A", day, "am", domain.StatusConfirmed),
			},
			status:    domain.DatePartial,
			known:     true,
			freeSlots: []string{"pm"},
		},
		{
			name:    "default capacity venue has no slot list",
			venueID: "B",
			bookings: []*domain.Booking{
				booking("1", "B", day, "", domain.StatusConfirmed),
			},
			status: domain.DatePartial,
			known:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := r.DateStatus(day, domain.VenueSelector(tt.venueID), tt.bookings, venues)
			assert.Equal(t, tt.status, status)

			free, known := r.FreeSlots(day, tt.venueID, tt.bookings, venues)
			assert.Equal(t, tt.known, known)
			if !tt.known {
				assert.Nil(t, free)
				return
			}

			labels := make([]string, 0, len(free))
			for _, s := range free {
				labels = append(labels, s.Label)
			}
			assert.Equal(t, tt.freeSlots, labels)
			if status == domain.DateBooked {
				assert.Empty(t, free)
			}
		})
	}
}
