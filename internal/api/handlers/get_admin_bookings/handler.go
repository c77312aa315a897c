package get_admin_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	"github.com/osteosalud/booking-service/internal/service/bookings"
	"github.com/osteosalud/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "parámetros de filtrado no válidos"
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

// Handle GET /api/v1/admin/bookings?date=&from=&to=&status=&includeCancelled=
// Полная административная выборка с гибкой фильтрацией
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if v := query.Get("date"); v != "" {
		req.Date = &v
	}
	if v := query.Get("from"); v != "" {
		req.FromDate = &v
	}
	if v := query.Get("to"); v != "" {
		req.ToDate = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("includeCancelled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid includeCancelled: %s", v)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.IncludeCancelled = include
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Returned %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
