package get_revenue

import (
	"net/http"
	"time"

	"github.com/osteosalud/booking-service/internal/api/handlers"
	"github.com/osteosalud/booking-service/internal/domain"
	getRevenue "github.com/osteosalud/booking-service/internal/usecase/get_revenue"
)

const (
	msgInvalidDate = "fecha no válida, se espera el formato YYYY-MM-DD"
)

type Handler struct {
	useCase GetRevenueUseCase
	logger  Logger
}

func NewHandler(useCase GetRevenueUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/revenue?from=YYYY-MM-DD&to=YYYY-MM-DD
// Границы периода опциональны: без них отчет строится за всю историю
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")

	for _, boundary := range []string{from, to} {
		if boundary == "" {
			continue
		}
		if _, err := time.Parse(domain.DateFormat, boundary); err != nil {
			h.logger.Warn("GET /admin/revenue - Invalid date boundary: %s", boundary)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getRevenue.Request{
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		h.logger.Error("GET /admin/revenue - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/revenue - months=%d, total=%.2f", len(result.Monthly), result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
