package admin_login

// LoginRequest HTTP модель запроса входа администратора
type LoginRequest struct {
	Pin string `json:"pin"`
}

// LoginResponse HTTP модель ответа с токеном
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"` // ISO 8601
}
