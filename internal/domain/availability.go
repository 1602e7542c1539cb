package domain

import "strings"

// DateStatus availability of a calendar date for a venue selector
type DateStatus string

const (
	DateAvailable DateStatus = "available"
	DatePartial   DateStatus = "partial"
	DateBooked    DateStatus = "booked"
)

// IsSelectable returns true if a new booking flow may start on a date with this status
func (s DateStatus) IsSelectable() bool {
	return s == DateAvailable || s == DatePartial
}

// VenueSelector is either AllVenues or a concrete venue ID
type VenueSelector string

// AllVenues aggregates bookings across every venue of the owner
const AllVenues VenueSelector = "all"

// NewVenueSelector нормализует значение селектора, пустое значение означает все площадки
func NewVenueSelector(s string) VenueSelector {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(AllVenues)) {
		return AllVenues
	}
	return VenueSelector(s)
}

// IsAll returns true for the aggregate selector
func (s VenueSelector) IsAll() bool {
	return s == AllVenues
}

// VenueID returns the concrete venue ID, empty for AllVenues
func (s VenueSelector) VenueID() string {
	if s.IsAll() {
		return ""
	}
	return string(s)
}
