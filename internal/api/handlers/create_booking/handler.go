package create_booking

import (
	"errors"
	"net/http"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	"github.com/osteosalud/booking-service/internal/api/middleware"
	createBooking "github.com/osteosalud/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidInput       = "faltan campos obligatorios"
	msgServiceNotFound    = "servicio no encontrado"
	msgInvalidDate        = "fecha no válida, se espera el formato YYYY-MM-DD"
	msgInvalidTimeSlot    = "hora no válida para el horario de la consulta"
	msgSlotNotAvailable   = "la hora seleccionada ya no está disponible"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, date=%s, time=%s",
		result.ID, result.Date, result.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
