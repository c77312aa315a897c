package get_business_info

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

// Handle GET /api/v1/business
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /business - Business info requested")
	handlers.RespondJSON(w, http.StatusOK, FromDomain(h.catalog.Business(), h.catalog.Schedule()))
}
