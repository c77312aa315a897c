package bookingmem

import (
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

// DemoBookings возвращает стартовый набор данных демо-режима:
// одно подтверждённое бронирование на сегодня, чтобы интерфейс
// было на чем показать
func DemoBookings(now time.Time) []*domain.Booking {
	return []*domain.Booking{
		{
			ID:            "demo-1",
			ServiceID:     1,
			ServiceName:   "Osteopatía General",
			Price:         60,
			Date:          now.Format(domain.DateFormat),
			Time:          "10:00",
			ClientName:    "Usuario Demo",
			ClientPhone:   "600123456",
			ClientAddress: "Calle Mayor 1, 2A",
			ClientCity:    "Madrid",
			UserID:        "demo-other",
			Status:        domain.StatusConfirmed,
			CreatedAt:     now,
		},
	}
}
