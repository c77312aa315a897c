package reschedule_booking

import (
	"context"

	"github.com/osteosalud/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Reschedule(ctx context.Context, id string, req *models.RescheduleBookingRequest) (*models.BookingResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
