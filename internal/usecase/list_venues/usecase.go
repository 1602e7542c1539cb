package list_venues

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueAvailability/internal/integrations/venueapi"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
)

// UseCase use case списка площадок владельца для селектора календаря
type UseCase struct {
	venues   VenueSource
	resolver *availability.Resolver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(venues VenueSource, resolver *availability.Resolver, logger Logger) *UseCase {
	return &UseCase{
		venues:   venues,
		resolver: resolver,
		logger:   logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.OwnerID) == "" {
		return nil, fmt.Errorf("%w: ownerID is required", ErrInvalidInput)
	}

	venues, err := uc.venues.GetVenues(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, venueapi.ErrOwnerNotFound) {
			return nil, ErrOwnerNotFound
		}
		uc.logger.Error("ListVenues: failed to get venues for owner=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp := &Response{
		OwnerID: req.OwnerID,
		Venues:  make([]VenueInfo, 0, len(venues)),
	}
	for _, v := range venues {
		resp.Venues = append(resp.Venues, VenueInfo{
			Venue:           v,
			Capacity:        v.Capacity(uc.resolver.DefaultCapacity()),
			DefaultCapacity: !v.HasDeclaredSlots(),
		})
	}

	uc.logger.Info("ListVenues: owner=%s, venues=%d", req.OwnerID, len(resp.Venues))
	return resp, nil
}
