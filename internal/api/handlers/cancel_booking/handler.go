package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	"github.com/osteosalud/booking-service/internal/api/middleware"
	"github.com/osteosalud/booking-service/internal/domain"
	"github.com/osteosalud/booking-service/internal/service/bookings"
)

const (
	msgMissingBookingID = "falta el ID de la reserva"
	msgNotFound         = "reserva no encontrada"
	msgForbidden        = "acceso denegado"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
// Отмена идемпотентна: повторный запрос возвращает тот же результат
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())
	isAdmin := middleware.IsAdmin(r.Context())

	if err := h.service.Cancel(r.Context(), bookingID, userID, isAdmin); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%s, user_id=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		ID:     bookingID,
		Status: string(domain.StatusCancelled),
	})
}
