package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/osteosalud/booking-service/internal/domain"
)

// UseCase use case для получения слотов дня с флагом занятости
type UseCase struct {
	bookingRepo BookingRepository
	schedule    domain.ScheduleConfig
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов
// Неизвестная или отсутствующая дата - не ошибка: возвращается пустой
// список слотов (клиент просто не увидит вариантов выбора)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetAvailableSlots: unparseable date %q, returning empty slot list", req.Date)
		return &Response{Date: req.Date, Slots: []domain.Slot{}, Free: []string{}}, nil
	}

	// Берем только активные бронирования на указанную дату:
	// отменённые слот не занимают
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		Date:             &req.Date,
		IncludeCancelled: false,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots := BuildSlots(req.Date, bookings, uc.schedule, req.ExcludeBookingID)

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, free=%d",
		req.Date, len(slots), len(domain.FreeSlots(slots)))

	return &Response{
		Date:  req.Date,
		Slots: slots,
		Free:  domain.FreeSlots(slots),
	}, nil
}
