package get_day_bookings

import (
	"net/http"
	"time"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	"github.com/osteosalud/booking-service/internal/domain"
	getAgenda "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
)

const (
	msgMissingDate = "falta el parámetro date"
	msgInvalidDate = "fecha no válida, se espera el formato YYYY-MM-DD"
)

type Handler struct {
	useCase GetAgendaUseCase
	logger  Logger
}

func NewHandler(useCase GetAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /admin/calendar - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		h.logger.Warn("GET /admin/calendar - Invalid date: %s", date)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAgenda.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /admin/calendar - Failed to get day bookings: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/calendar - date=%s, bookings=%d", date, result.TotalActive)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(date, result))
}
