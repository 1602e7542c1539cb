package get_venue_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-VenueAvailability/internal/api/middleware"
	getVenueCalendar "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_venue_calendar"
)

const (
	msgInvalidParams = "некорректные параметры запроса, ожидается month=YYYY-MM и adjacent=true|false"
	msgInvalidInput  = "некорректный месяц или площадка"
	msgOwnerNotFound = "владелец не найден"
	msgVenueNotFound = "площадка не найдена"
)

type Handler struct {
	useCase GetVenueCalendarUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase GetVenueCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/owners/{ownerId}/calendar
// Query params: venue (all|{id}, по умолчанию all), month (YYYY-MM, по умолчанию текущий), adjacent (по умолчанию true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]
	userID, ok := middleware.GetUserID(r.Context())
	if !handlers.AuthorizeOwner(w, ownerID, userID, ok) {
		h.logger.Warn("GET /owners/{id}/calendar - Access denied: owner_id=%s, user_id=%s", ownerID, userID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(ownerID, query.Get("venue"), query.Get("month"), query.Get("adjacent"), h.now())
	if err != nil {
		h.logger.Warn("GET /owners/{id}/calendar - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getVenueCalendar.ErrInvalidInput):
			h.logger.Warn("GET /owners/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getVenueCalendar.ErrOwnerNotFound):
			h.logger.Warn("GET /owners/{id}/calendar - Owner not found: owner_id=%s", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, getVenueCalendar.ErrVenueNotFound):
			h.logger.Warn("GET /owners/{id}/calendar - Venue not found: owner_id=%s, venue=%s",
				ownerID, useCaseReq.Selector)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getVenueCalendar.ErrUpstream):
			h.logger.Error("GET /owners/{id}/calendar - Upstream failure: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondBadGateway(w)

		default:
			h.logger.Error("GET /owners/{id}/calendar - Failed to build calendar: owner_id=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/calendar - Calendar built: owner_id=%s, venue=%s, month=%s",
		ownerID, useCaseReq.Selector, useCaseReq.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
