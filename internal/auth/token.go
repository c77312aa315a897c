package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const adminSubject = "admin"

// TokenManager выпускает и проверяет токены административной сессии
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue выпускает подписанный токен административной сессии
// Возвращает токен и момент истечения его срока действия
func (m *TokenManager) Issue(now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Validate проверяет подпись, срок действия и subject токена
func (m *TokenManager) Validate(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject != adminSubject {
		return ErrInvalidToken
	}

	return nil
}
