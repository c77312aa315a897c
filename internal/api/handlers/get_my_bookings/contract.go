package get_my_bookings

import (
	"context"

	"github.com/osteosalud/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetUserBookings(ctx context.Context, userID string) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
