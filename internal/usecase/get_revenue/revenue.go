package get_revenue

import (
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

// Report агрегат выручки по активным бронированиям
type Report struct {
	Monthly map[string]float64
	Total   float64
}

// sanitizePrice приводит цену к учитываемому значению
// Отрицательные и не-числа (NaN) считаются нулем, запись не отбрасывается
func sanitizePrice(price float64) float64 {
	if price != price || price < 0 {
		return 0
	}
	return price
}

// BuildReport раскладывает активные бронирования по месячным корзинам "YYYY-MM"
// Отмененные бронирования выручку не формируют
// Записи с нечитаемой датой пропускаются, skipped возвращает их число
func BuildReport(bookings []*domain.Booking) (report Report, skipped int) {
	report.Monthly = make(map[string]float64)

	for _, b := range bookings {
		if b.IsCancelled() {
			continue
		}
		day, err := time.Parse(domain.DateFormat, b.Date)
		if err != nil {
			skipped++
			continue
		}

		price := sanitizePrice(b.Price)
		report.Monthly[day.Format(domain.MonthFormat)] += price
		report.Total += price
	}
	return report, skipped
}

// MaxMonthly возвращает максимум месячной выручки, но не меньше 1:
// значение используется как знаменатель при построении шкалы графика
func MaxMonthly(monthly map[string]float64) float64 {
	max := 1.0
	for _, v := range monthly {
		if v > max {
			max = v
		}
	}
	return max
}
