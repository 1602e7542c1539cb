package get_venue_calendar

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
	getVenueCalendar "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_venue_calendar"
	"github.com/m04kA/SMC-VenueAvailability/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	OwnerID  string                   `json:"ownerId"`
	Venue    string                   `json:"venue"`
	Capacity int                      `json:"capacity"`
	Calendar GridResponse             `json:"calendar"`
	Prev     *GridResponse            `json:"prev,omitempty"`
	Next     *GridResponse            `json:"next,omitempty"`
	Venues   []handlers.VenueResponse `json:"venues"`
}

// GridResponse сетка месяца 6x7
type GridResponse struct {
	Month   string          `json:"month"`
	Cells   []CellResponse  `json:"cells"`
	Summary SummaryResponse `json:"summary"`
}

// CellResponse ячейка сетки. Для дней чужого месяца status пустой.
type CellResponse struct {
	Date          string `json:"date"`
	Day           int    `json:"day"`
	OtherMonth    bool   `json:"otherMonth"`
	Status        string `json:"status,omitempty"`
	Selectable    bool   `json:"selectable"`
	BookingsCount int    `json:"bookingsCount"`
}

type SummaryResponse struct {
	Available int `json:"available"`
	Partial   int `json:"partial"`
	Booked    int `json:"booked"`
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Пустой month означает текущий месяц, пустой adjacent - true.
func ToUseCaseRequest(ownerID, venueStr, monthStr, adjacentStr string, now time.Time) (*getVenueCalendar.Request, error) {
	month := types.MonthFromTime(now)
	if monthStr != "" {
		parsed, err := types.ParseMonth(monthStr)
		if err != nil {
			return nil, err
		}
		month = parsed
	}

	adjacent := true
	if adjacentStr != "" {
		parsed, err := strconv.ParseBool(adjacentStr)
		if err != nil {
			return nil, err
		}
		adjacent = parsed
	}

	return &getVenueCalendar.Request{
		OwnerID:         ownerID,
		Selector:        domain.NewVenueSelector(venueStr),
		Month:           month,
		IncludeAdjacent: adjacent,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getVenueCalendar.Response) *CalendarResponse {
	venues := make([]handlers.VenueResponse, len(resp.Venues))
	for i, v := range resp.Venues {
		venues[i] = handlers.FromDomainVenue(v)
	}

	return &CalendarResponse{
		OwnerID:  resp.OwnerID,
		Venue:    string(resp.Selector),
		Capacity: resp.Capacity,
		Calendar: fromGrid(resp.View.Main),
		Prev:     fromGridPtr(resp.View.Prev),
		Next:     fromGridPtr(resp.View.Next),
		Venues:   venues,
	}
}

func fromGridPtr(g *availability.Grid) *GridResponse {
	if g == nil {
		return nil
	}
	resp := fromGrid(*g)
	return &resp
}

func fromGrid(g availability.Grid) GridResponse {
	cells := make([]CellResponse, len(g.Cells))
	for i, c := range g.Cells {
		cells[i] = CellResponse{
			Date:          c.Date.String(),
			Day:           c.Date.Day,
			OtherMonth:    c.OtherMonth,
			Status:        string(c.Status),
			Selectable:    c.Selectable,
			BookingsCount: c.BookingsCount,
		}
	}

	return GridResponse{
		Month: g.Month.String(),
		Cells: cells,
		Summary: SummaryResponse{
			Available: g.Summary.Available,
			Partial:   g.Summary.Partial,
			Booked:    g.Summary.Booked,
		},
	}
}
