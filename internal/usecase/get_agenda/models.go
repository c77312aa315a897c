package get_agenda

import "github.com/osteosalud/booking-service/internal/domain"

// Request модель запроса агенды
type Request struct {
	// Date - если задана, агенда ограничивается одним днем
	// (календарный вид администратора)
	Date string

	// IncludeAllCancelled - вернуть полный список отмененных,
	// а не только сводку последних
	IncludeAllCancelled bool
}

// DayGroup группа бронирований одного дня в хронологическом порядке
type DayGroup struct {
	Date     string
	Bookings []*domain.Booking
}

// Response модель ответа с агендой
type Response struct {
	// Upcoming активные бронирования с сегодняшнего дня,
	// сгруппированные по датам по возрастанию
	Upcoming []DayGroup

	// Active все активные бронирования в хронологическом порядке
	Active []*domain.Booking

	// RecentCancelled последние отмененные (не более трех)
	RecentCancelled []*domain.Booking

	// Cancelled полный список отмененных в хронологическом порядке
	// Заполняется только при IncludeAllCancelled
	Cancelled []*domain.Booking

	// TotalActive общее число активных бронирований
	TotalActive int

	// TotalCancelled общее число отмененных бронирований
	TotalCancelled int
}
