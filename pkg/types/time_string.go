package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// TimeLayout формат времени суток (HH:MM)
const TimeLayout = "15:04"

// ErrInvalidTime возвращается при некорректном времени суток
var ErrInvalidTime = errors.New("types: invalid time of day")

// TimeString время суток в формате HH:MM
type TimeString string

// NewTimeString возвращает время суток момента t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeLayout))
}

// NewTimeStringFromString разбирает и нормализует строку HH:MM (допускается HH:MM:SS)
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeString(t), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// minutes количество минут от начала суток
func (ts TimeString) minutes() (int, error) {
	t, err := time.Parse(TimeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsBefore строго раньше other. Некорректные значения не сравнимы.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.minutes()
	b, errB := other.minutes()
	return errA == nil && errB == nil && a < b
}

func (ts TimeString) String() string {
	return string(ts)
}

// Scan реализует sql.Scanner для колонок TIME и текстовых колонок
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTime, src)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	return string(ts), nil
}
