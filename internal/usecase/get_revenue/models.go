package get_revenue

// Request модель запроса отчета о выручке
// Пустые границы означают отчет за всю историю
type Request struct {
	FromDate string // Начало периода "YYYY-MM-DD" включительно (опционально)
	ToDate   string // Конец периода "YYYY-MM-DD" включительно (опционально)
}

// Response модель ответа с отчетом о выручке
type Response struct {
	// Monthly выручка по месяцам, ключ "YYYY-MM"
	Monthly map[string]float64

	// Total суммарная выручка по всем активным бронированиям
	Total float64

	// MaxMonthly максимум месячной выручки, не меньше 1
	// (знаменатель нормировки для шкалы графика)
	MaxMonthly float64
}
