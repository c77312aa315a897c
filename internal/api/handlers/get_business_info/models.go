package get_business_info

import "github.com/osteosalud/booking-service/internal/domain"

// ScheduleResponse HTTP модель рабочего расписания
type ScheduleResponse struct {
	Start      int  `json:"start"`
	End        int  `json:"end"`
	BreakStart *int `json:"breakStart,omitempty"`
	BreakEnd   *int `json:"breakEnd,omitempty"`
}

// BusinessInfoResponse HTTP модель информации о практике
type BusinessInfoResponse struct {
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Address  string           `json:"address"`
	Schedule ScheduleResponse `json:"schedule"`
}

// FromDomain конвертирует доменные модели в HTTP модель
func FromDomain(info domain.BusinessInfo, schedule domain.ScheduleConfig) *BusinessInfoResponse {
	return &BusinessInfoResponse{
		Name:    info.Name,
		Phone:   info.Phone,
		Address: info.Address,
		Schedule: ScheduleResponse{
			Start:      schedule.Start,
			End:        schedule.End,
			BreakStart: schedule.BreakStart,
			BreakEnd:   schedule.BreakEnd,
		},
	}
}
