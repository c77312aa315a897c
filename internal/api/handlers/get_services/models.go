package get_services

import "github.com/osteosalud/booking-service/internal/domain"

// ServiceResponse HTTP модель услуги каталога
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	DisplayHint     string  `json:"displayHint,omitempty"`
}

// ServiceListResponse HTTP модель списка услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует доменные услуги в HTTP модель
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              s.ID,
			Title:           s.Title,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
			DisplayHint:     s.DisplayHint,
		})
	}
	return resp
}
