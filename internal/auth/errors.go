package auth

import "errors"

var (
	// ErrInvalidCredential возвращается при неверном PIN-коде
	ErrInvalidCredential = errors.New("auth: invalid credential")

	// ErrInvalidToken возвращается при невалидном или истёкшем токене
	ErrInvalidToken = errors.New("auth: invalid token")
)
