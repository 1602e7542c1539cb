package list_venues

import "github.com/m04kA/SMC-VenueAvailability/internal/domain"

// Request модель запроса
type Request struct {
	OwnerID string
}

// VenueInfo площадка с эффективной ёмкостью
type VenueInfo struct {
	Venue    *domain.Venue
	Capacity int
	// DefaultCapacity true, если площадка не объявила слоты и используется ёмкость по умолчанию
	DefaultCapacity bool
}

// Response модель ответа
type Response struct {
	OwnerID string
	Venues  []VenueInfo
}
