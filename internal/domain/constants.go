package domain

// DefaultVenueCapacity ёмкость площадки, у которой не объявлены слоты
const DefaultVenueCapacity = 4

// Calendar grid dimensions
const (
	CalendarWeeks     = 6
	CalendarWeekdays  = 7
	CalendarGridCells = CalendarWeeks * CalendarWeekdays
)

// Date format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
