package get_agenda

import (
	"github.com/osteosalud/booking-service/internal/service/bookings/models"
	getAgenda "github.com/osteosalud/booking-service/internal/usecase/get_agenda"
)

// DayGroupResponse HTTP модель группы бронирований одного дня
type DayGroupResponse struct {
	Date     string                   `json:"date"`
	Bookings []models.BookingResponse `json:"bookings"`
}

// AgendaResponse HTTP модель агенды администратора
type AgendaResponse struct {
	Upcoming        []DayGroupResponse       `json:"upcoming"`
	Active          []models.BookingResponse `json:"active"`
	RecentCancelled []models.BookingResponse `json:"recentCancelled"`
	Cancelled       []models.BookingResponse `json:"cancelled,omitempty"`
	TotalActive     int                      `json:"totalActive"`
	TotalCancelled  int                      `json:"totalCancelled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAgenda.Response) *AgendaResponse {
	out := &AgendaResponse{
		Upcoming:        make([]DayGroupResponse, 0, len(resp.Upcoming)),
		Active:          models.FromDomainBookingList(resp.Active).Bookings,
		RecentCancelled: models.FromDomainBookingList(resp.RecentCancelled).Bookings,
		TotalActive:     resp.TotalActive,
		TotalCancelled:  resp.TotalCancelled,
	}
	if resp.Cancelled != nil {
		out.Cancelled = models.FromDomainBookingList(resp.Cancelled).Bookings
	}
	for _, group := range resp.Upcoming {
		out.Upcoming = append(out.Upcoming, DayGroupResponse{
			Date:     group.Date,
			Bookings: models.FromDomainBookingList(group.Bookings).Bookings,
		})
	}
	return out
}
