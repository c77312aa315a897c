package get_services

import "github.com/osteosalud/booking-service/internal/domain"

// Catalog интерфейс каталога услуг
type Catalog interface {
	Services() []domain.Service
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
