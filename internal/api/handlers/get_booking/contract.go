package get_booking

import (
	"context"

	"github.com/osteosalud/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetByID(ctx context.Context, id string, userID string, isAdmin bool) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
