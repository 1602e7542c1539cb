package list_venues

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrOwnerNotFound возвращается, когда владелец не найден в источнике данных
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrUpstream возвращается, когда источник данных недоступен
	ErrUpstream = errors.New("usecase: upstream unavailable")
)
