package get_available_slots

import (
	"net/http"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	getAvailableSlots "github.com/osteosalud/booking-service/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots?date=YYYY-MM-DD&excludeBookingId=...
// Отсутствующая или некорректная дата дает пустой список слотов, не ошибку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:             date,
		ExcludeBookingID: r.URL.Query().Get("excludeBookingId"),
	})
	if err != nil {
		h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /available-slots - date=%s, free=%d/%d", date, len(result.Free), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
