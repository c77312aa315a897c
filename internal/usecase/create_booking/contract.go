package create_booking

import (
	"context"
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// List получает бронирования по фильтру (внутри транзакции - с блокировкой строк даты)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	// Create сохраняет новое бронирование и назначает ему ID
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	ServiceByID(id int64) (*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
