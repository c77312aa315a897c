package admin_login

import (
	"net/http"
	"time"

	"github.com/osteosalud/booking-service/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidPin         = "PIN incorrecto"
)

type Handler struct {
	verifier     Verifier
	tokenIssuer  TokenIssuer
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(verifier Verifier, tokenIssuer TokenIssuer, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		verifier:     verifier,
		tokenIssuer:  tokenIssuer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.verifier.Verify(req.Pin); err != nil {
		// Детали ошибки не раскрываются - ответ одинаков для любого
		// неверного PIN
		h.logger.Warn("POST /admin/login - Invalid PIN attempt")
		handlers.RespondUnauthorized(w, msgInvalidPin)
		return
	}

	token, expiresAt, err := h.tokenIssuer.Issue(h.timeProvider.Now())
	if err != nil {
		h.logger.Error("POST /admin/login - Failed to issue token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/login - Admin session issued, expires_at=%s", expiresAt.Format(time.RFC3339))
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}
