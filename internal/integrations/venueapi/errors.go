package venueapi

import "errors"

var (
	// ErrOwnerNotFound возвращается, когда владелец площадок не найден в API
	ErrOwnerNotFound = errors.New("venueapi client: owner not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("venueapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("venueapi client: invalid response")

	// ErrUnavailable возвращается, когда API недоступно (сеть, timeout, 5xx)
	ErrUnavailable = errors.New("venueapi client: service unavailable")
)
