package availability

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// Cell ячейка календарной сетки
type Cell struct {
	Date types.Date
	// OtherMonth - день соседнего месяца: не интерактивен, статус не вычисляется
	OtherMonth    bool
	Status        domain.DateStatus
	Selectable    bool
	BookingsCount int
}

// Summary количество дней месяца по статусам
type Summary struct {
	Available int
	Partial   int
	Booked    int
}

// Counts счётчики в виде map для метрик
func (s Summary) Counts() map[string]int {
	return map[string]int{
		string(domain.DateAvailable): s.Available,
		string(domain.DatePartial):   s.Partial,
		string(domain.DateBooked):    s.Booked,
	}
}

func (s *Summary) add(status domain.DateStatus) {
	switch status {
	case domain.DateAvailable:
		s.Available++
	case domain.DatePartial:
		s.Partial++
	case domain.DateBooked:
		s.Booked++
	}
}

// Grid сетка месяца 6x7, неделя начинается с воскресенья
type Grid struct {
	Month   types.Month
	Cells   []Cell
	Summary Summary
}

// View основной календарь и мини-календари соседних месяцев
type View struct {
	Selector domain.VenueSelector
	Main     Grid
	Prev     *Grid
	Next     *Grid
}

// GridStart первая ячейка сетки месяца: воскресенье не позже первого числа
func GridStart(month types.Month) types.Date {
	first := month.FirstDay()
	return first.AddDays(-int(first.Weekday()))
}

// MonthGrid строит сетку месяца из 42 ячеек и классифицирует дни этого месяца.
// Месяц передаётся явно: мини-календари строятся тем же вызовом со своим месяцем.
func (r *Resolver) MonthGrid(
	month types.Month,
	selector domain.VenueSelector,
	bookings []*domain.Booking,
	venues []*domain.Venue,
) Grid {
	counts := r.countByDate(month, selector, bookings)

	grid := Grid{
		Month: month,
		Cells: make([]Cell, domain.CalendarGridCells),
	}

	day := GridStart(month)
	for i := range grid.Cells {
		cell := Cell{Date: day}
		if month.Contains(day) {
			cell.BookingsCount = counts[day]
			cell.Status = r.classify(cell.BookingsCount, selector, venues)
			cell.Selectable = cell.Status.IsSelectable()
			grid.Summary.add(cell.Status)
		} else {
			cell.OtherMonth = true
		}
		grid.Cells[i] = cell
		day = day.AddDays(1)
	}

	return grid
}

// CalendarView строит основной календарь и, при withAdjacent, мини-календари
// предыдущего и следующего месяцев
func (r *Resolver) CalendarView(
	month types.Month,
	selector domain.VenueSelector,
	bookings []*domain.Booking,
	venues []*domain.Venue,
	withAdjacent bool,
) View {
	view := View{
		Selector: selector,
		Main:     r.MonthGrid(month, selector, bookings, venues),
	}

	if withAdjacent {
		prev := r.MonthGrid(month.Prev(), selector, bookings, venues)
		next := r.MonthGrid(month.Next(), selector, bookings, venues)
		view.Prev = &prev
		view.Next = &next
	}

	return view
}

// countByDate считает подходящие под селектор неотменённые бронирования по датам месяца.
// Эквивалентно len(BookingsForDate) для каждого дня, но за один проход.
func (r *Resolver) countByDate(month types.Month, selector domain.VenueSelector, bookings []*domain.Booking) map[types.Date]int {
	counts := make(map[types.Date]int)
	for _, b := range bookings {
		if b == nil || !month.Contains(b.BookedDate) {
			continue
		}
		if matches(b, selector) {
			counts[b.BookedDate]++
		}
	}
	return counts
}
