package get_business_info

import "github.com/osteosalud/booking-service/internal/domain"

// Catalog интерфейс каталога услуг
type Catalog interface {
	Business() domain.BusinessInfo
	Schedule() domain.ScheduleConfig
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
