package get_day_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOwnerNotFound возвращается, когда владелец не найден в источнике данных
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrVenueNotFound возвращается, когда выбранная площадка не принадлежит владельцу
	ErrVenueNotFound = errors.New("venue not found")

	// ErrUpstream возвращается, когда источник данных недоступен
	ErrUpstream = errors.New("usecase: upstream unavailable")
)
