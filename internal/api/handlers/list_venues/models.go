package list_venues

import (
	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
	listVenues "github.com/m04kA/SMC-VenueAvailability/internal/usecase/list_venues"
)

// VenuesResponse HTTP response model
type VenuesResponse struct {
	OwnerID string              `json:"ownerId"`
	Venues  []VenueWithCapacity `json:"venues"`
}

// VenueWithCapacity площадка и её ёмкость в слотах
type VenueWithCapacity struct {
	handlers.VenueResponse
	Capacity        int  `json:"capacity"`
	DefaultCapacity bool `json:"defaultCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listVenues.Response) *VenuesResponse {
	venues := make([]VenueWithCapacity, len(resp.Venues))
	for i, v := range resp.Venues {
		venues[i] = VenueWithCapacity{
			VenueResponse:   handlers.FromDomainVenue(v.Venue),
			Capacity:        v.Capacity,
			DefaultCapacity: v.DefaultCapacity,
		}
	}

	return &VenuesResponse{
		OwnerID: resp.OwnerID,
		Venues:  venues,
	}
}
