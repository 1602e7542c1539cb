package types

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MonthLayout формат месяца (YYYY-MM)
const MonthLayout = "2006-01"

// ErrInvalidMonth возвращается при некорректном месяце
var ErrInvalidMonth = errors.New("types: invalid month")

// Month календарный месяц конкретного года
type Month struct {
	Year  int
	Month time.Month
}

// MonthFromTime месяц момента t в его часовом поясе
func MonthFromTime(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth разбирает строку формата YYYY-MM
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return MonthFromTime(t), nil
}

// Valid проверяет, что месяц в диапазоне 1..12
func (m Month) Valid() bool {
	return m.Month >= time.January && m.Month <= time.December
}

// FirstDay первое число месяца
func (m Month) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// LastDay последнее число месяца
func (m Month) LastDay() Date {
	return m.Next().FirstDay().AddDays(-1)
}

// Days количество дней в месяце (учитывает високосный февраль)
func (m Month) Days() int {
	return m.LastDay().Day
}

// Contains проверяет, что дата принадлежит месяцу
func (m Month) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// Prev предыдущий месяц
func (m Month) Prev() Month {
	return MonthFromTime(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.UTC))
}

// Next следующий месяц
func (m Month) Next() Month {
	return MonthFromTime(time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.UTC))
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
