package get_agenda

import (
	"net/http"
	"strconv"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	getAgenda "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
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

// Handle GET /api/v1/admin/agenda
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeCancelled, _ := strconv.ParseBool(r.URL.Query().Get("includeCancelled"))

	result, err := h.useCase.Execute(r.Context(), &getAgenda.Request{
		IncludeAllCancelled: includeCancelled,
	})
	if err != nil {
		h.logger.Error("GET /admin/agenda - Failed to build agenda: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/agenda - active=%d, cancelled=%d", result.TotalActive, result.TotalCancelled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
