package ownerdata

import "github.com/m04kA/SMC-VenueAvailability/pkg/types"

// Period диапазон дат включительно, за который нужны бронирования
type Period struct {
	From types.Date
	To   types.Date
}

// MonthPeriod период одного месяца
func MonthPeriod(month types.Month) Period {
	return Period{From: month.FirstDay(), To: month.LastDay()}
}

// DayPeriod период из одной даты
func DayPeriod(date types.Date) Period {
	return Period{From: date, To: date}
}

// Contains проверяет, что дата попадает в период
func (p Period) Contains(d types.Date) bool {
	return !d.Before(p.From) && !d.After(p.To)
}

func (p Period) String() string {
	return p.From.String() + ".." + p.To.String()
}
