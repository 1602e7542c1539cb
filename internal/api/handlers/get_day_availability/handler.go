package get_day_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-VenueAvailability/internal/api/middleware"
	getDayAvailability "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_day_availability"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput  = "некорректные параметры запроса"
	msgOwnerNotFound = "владелец не найден"
	msgVenueNotFound = "площадка не найдена"
)

type Handler struct {
	useCase GetDayAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/calendar/{date}
// Query params: venue (all|{id}, по умолчанию all)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID := vars["ownerId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !handlers.AuthorizeOwner(w, ownerID, userID, ok) {
		h.logger.Warn("GET /owners/{id}/calendar/{date} - Access denied: owner_id=%s, user_id=%s", ownerID, userID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(ownerID, vars["date"], r.URL.Query().Get("venue"))
	if err != nil {
		h.logger.Warn("GET /owners/{id}/calendar/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayAvailability.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/calendar/{date} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getDayAvailability.ErrOwnerNotFound):
			h.logger.Warn("GET /owners/{id}/calendar/{date} - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, getDayAvailability.ErrVenueNotFound):
			h.logger.Warn("GET /owners/{id}/calendar/{date} - Venue not found: owner_id=%s, venue=%s",
				ownerID, useCaseReq.Selector)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getDayAvailability.ErrUpstream):
			h.logger.Error("GET /owners/{id}/calendar/{date} - Upstream failure: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /owners/{id}/calendar/{date} - Failed to resolve day: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/calendar/{date} - Day resolved: owner_id=%s, date=%s, status=%s",
		ownerID, result.Date, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
