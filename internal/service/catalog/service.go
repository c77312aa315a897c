package catalog

import (
	"fmt"

	"github.com/osteosalud/booking-service/internal/domain"
)

// Service каталог услуг практики
// Каталог статический - загружается из конфигурации при старте
// и не меняется во время работы приложения
type Service struct {
	services []domain.Service
	business domain.BusinessInfo
	schedule domain.ScheduleConfig
}

// NewService создает каталог из конфигурации
func NewService(services []domain.Service, business domain.BusinessInfo, schedule domain.ScheduleConfig) *Service {
	return &Service{
		services: services,
		business: business,
		schedule: schedule,
	}
}

// Services возвращает список услуг в порядке конфигурации
func (s *Service) Services() []domain.Service {
	out := make([]domain.Service, len(s.services))
	copy(out, s.services)
	return out
}

// ServiceByID находит услугу по ID
func (s *Service) ServiceByID(id int64) (*domain.Service, error) {
	for i := range s.services {
		if s.services[i].ID == id {
			svc := s.services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrServiceNotFound, id)
}

// Business возвращает контактные данные практики
func (s *Service) Business() domain.BusinessInfo {
	return s.business
}

// Schedule возвращает рабочее расписание
func (s *Service) Schedule() domain.ScheduleConfig {
	return s.schedule
}
