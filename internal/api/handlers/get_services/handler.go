package get_services

import (
	"net/http"

	"github.com/osteosalud/booking-service/internal/api/handlers"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.Services()

	h.logger.Info("GET /services - Returned %d services", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
