package get_revenue

import (
	getRevenue "github.com/osteosalud/booking-service/internal/usecase/get_revenue"
)

// RevenueResponse HTTP модель отчета о выручке
type RevenueResponse struct {
	Monthly    map[string]float64 `json:"monthly"` // ключ "YYYY-MM"
	Total      float64            `json:"total"`
	MaxMonthly float64            `json:"maxMonthly"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getRevenue.Response) *RevenueResponse {
	monthly := resp.Monthly
	if monthly == nil {
		monthly = map[string]float64{}
	}
	return &RevenueResponse{
		Monthly:    monthly,
		Total:      resp.Total,
		MaxMonthly: resp.MaxMonthly,
	}
}
