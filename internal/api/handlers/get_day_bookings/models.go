package get_day_bookings

import (
	"github.com/osteosalud/booking-service/internal/service/bookings/models"
	getAgenda "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
)

// DayBookingsResponse HTTP модель бронирований одного дня
type DayBookingsResponse struct {
	Date      string                   `json:"date"`
	Bookings  []models.BookingResponse `json:"bookings"`
	Cancelled []models.BookingResponse `json:"cancelled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
// Активные бронирования дня идут в хронологическом порядке
func FromUseCaseResponse(date string, resp *getAgenda.Response) *DayBookingsResponse {
	return &DayBookingsResponse{
		Date:      date,
		Bookings:  models.FromDomainBookingList(resp.Active).Bookings,
		Cancelled: models.FromDomainBookingList(resp.RecentCancelled).Bookings,
	}
}
