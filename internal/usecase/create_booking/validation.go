package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

// validateRequest проверяет обязательные поля запроса
// Поля из пробелов считаются пустыми
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Time) == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientPhone) == "" {
		return fmt.Errorf("%w: clientPhone is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientAddress) == "" {
		return fmt.Errorf("%w: clientAddress is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ClientCity) == "" {
		return fmt.Errorf("%w: clientCity is required", ErrInvalidInput)
	}
	return nil
}

// validateSchedule проверяет дату и принадлежность метки времени
// рабочему расписанию (те же метки, что генерирует выдача слотов)
func validateSchedule(req *Request, schedule domain.ScheduleConfig) error {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date %q does not match format %s", ErrInvalidDate, req.Date, domain.DateFormat)
	}

	for h := schedule.Start; h < schedule.End; h++ {
		if schedule.IsBreakHour(h) {
			continue
		}
		if domain.FormatHour(h) == req.Time {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not a bookable slot", ErrInvalidTimeSlot, req.Time)
}
