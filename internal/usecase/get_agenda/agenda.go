package get_agenda

import (
	"sort"

	"github.com/osteosalud/booking-service/internal/domain"
)

// ValidBookings отбрасывает записи с нечитаемой датой или меткой времени:
// такие записи не должны попадать ни в одно представление агенды
func ValidBookings(bookings []*domain.Booking) []*domain.Booking {
	valid := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if _, err := b.StartInstant(); err != nil {
			continue
		}
		valid = append(valid, b)
	}
	return valid
}

// SortChronological сортирует бронирования по моменту начала визита
// Сортировка по вычисленному моменту, а не по строке метки:
// лексикографически "10:00" < "9:00", хронологически - наоборот
func SortChronological(bookings []*domain.Booking) []*domain.Booking {
	sorted := make([]*domain.Booking, len(bookings))
	copy(sorted, bookings)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := sorted[i].StartInstant()
		tj, _ := sorted[j].StartInstant()
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})
	return sorted
}

// PartitionByStatus делит бронирования на активные и отмененные
// Каждая запись попадает ровно в одну из групп
func PartitionByStatus(bookings []*domain.Booking) (active, cancelled []*domain.Booking) {
	active = make([]*domain.Booking, 0, len(bookings))
	cancelled = make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsCancelled() {
			cancelled = append(cancelled, b)
		} else {
			active = append(active, b)
		}
	}
	return active, cancelled
}

// UpcomingBookings оставляет бронирования с датой не раньше сегодняшней
// Сравнение по календарной дате: визит сегодня в уже прошедший час
// все еще считается предстоящим
func UpcomingBookings(bookings []*domain.Booking, today string) []*domain.Booking {
	upcoming := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date >= today {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming
}

// GroupByDate группирует хронологически отсортированные бронирования
// по датам, сохраняя порядок внутри дня и порядок самих дней
func GroupByDate(bookings []*domain.Booking) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)

	for _, b := range bookings {
		i, ok := index[b.Date]
		if !ok {
			i = len(groups)
			index[b.Date] = i
			groups = append(groups, DayGroup{Date: b.Date})
		}
		groups[i].Bookings = append(groups[i].Bookings, b)
	}
	return groups
}

// RecentCancelled возвращает хвост хронологически отсортированного
// списка отмененных - не более limit самых поздних записей
func RecentCancelled(cancelled []*domain.Booking, limit int) []*domain.Booking {
	if limit <= 0 || len(cancelled) == 0 {
		return []*domain.Booking{}
	}
	if len(cancelled) <= limit {
		return cancelled
	}
	return cancelled[len(cancelled)-limit:]
}
