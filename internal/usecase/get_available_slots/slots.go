package get_available_slots

import (
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

// BuildSlots строит упорядоченный список слотов дня
// Перебираются целые часы [schedule.Start, schedule.End), часы перерыва
// пропускаются. Слот занят, если существует активное бронирование с той же
// датой и точно совпадающей меткой времени (строковое сравнение, без
// нормализации ведущих нулей)
//
// excludeID исключает собственное бронирование из проверки занятости -
// при редактировании его текущий слот должен оставаться выбираемым
//
// Некорректная или пустая дата дает пустой список, а не ошибку
func BuildSlots(date string, bookings []*domain.Booking, schedule domain.ScheduleConfig, excludeID string) []domain.Slot {
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return []domain.Slot{}
	}

	if !schedule.IsValid() {
		return []domain.Slot{}
	}

	taken := takenTimes(date, bookings, excludeID)

	slots := make([]domain.Slot, 0, schedule.End-schedule.Start)
	for h := schedule.Start; h < schedule.End; h++ {
		if schedule.IsBreakHour(h) {
			continue
		}

		label := domain.FormatHour(h)
		slots = append(slots, domain.Slot{
			Time:    label,
			IsTaken: taken[label],
		})
	}

	return slots
}

// takenTimes собирает занятые метки времени на указанную дату
// Отменённые бронирования слот не занимают
func takenTimes(date string, bookings []*domain.Booking, excludeID string) map[string]bool {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Date != date {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		taken[b.Time] = true
	}
	return taken
}
