package admin_login

import "time"

// Verifier интерфейс проверки учетных данных администратора
type Verifier interface {
	Verify(credential string) error
}

// TokenIssuer интерфейс выпуска административных токенов
type TokenIssuer interface {
	Issue(now time.Time) (token string, expiresAt time.Time, err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
