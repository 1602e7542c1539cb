package list_venues

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-VenueAvailability/internal/api/middleware"
	listVenues "github.com/m04kA/SMC-VenueAvailability/internal/usecase/list_venues"
)

const msgOwnerNotFound = "владелец не найден"

type Handler struct {
	useCase ListVenuesUseCase
	logger  Logger
}

func NewHandler(useCase ListVenuesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/venues
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]
	userID, ok := middleware.GetUserID(r.Context())
	if !handlers.AuthorizeOwner(w, ownerID, userID, ok) {
		h.logger.Warn("GET /owners/{id}/venues - Access denied: owner_id=%s, user_id=%s", ownerID, userID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listVenues.Request{OwnerID: ownerID})
	if err != nil {
		switch {
		case errors.Is(err, listVenues.ErrOwnerNotFound):
			h.logger.Warn("GET /owners/{id}/venues - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, listVenues.ErrUpstream):
			h.logger.Error("GET /owners/{id}/venues - Upstream failure: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /owners/{id}/venues - Failed to list venues: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/venues - Venues retrieved: owner_id=%s, count=%d", ownerID, len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
