package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	"github.com/osteosalud/booking-service/internal/service/bookings"
	"github.com/osteosalud/booking-service/internal/service/bookings/models"
)

const (
	msgMissingBookingID   = "falta el ID de la reserva"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgNotFound           = "reserva no encontrada"
	msgInvalidDate        = "fecha no válida, se espera el formato YYYY-MM-DD"
	msgInvalidTimeSlot    = "hora no válida para el horario de la consulta"
	msgSlotNotAvailable   = "la hora seleccionada ya no está disponible"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Reschedule(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Slot taken: booking_id=%s, date=%s, time=%s",
				bookingID, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, bookings.ErrInvalidBookingDate):
			h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Invalid date: %s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrInvalidTimeSlot):
			h.logger.Warn("PATCH /admin/bookings/{id}/schedule - Invalid time slot: %s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/schedule - Failed to reschedule: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/schedule - Booking rescheduled: booking_id=%s, date=%s, time=%s",
		bookingID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusOK, result)
}
