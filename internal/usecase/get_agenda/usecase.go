package get_agenda

import (
	"context"
	"fmt"

	"github.com/osteosalud/booking-service/internal/domain"
)

// UseCase use case для получения агенды администратора
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения агенды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Загружаем бронирования (включая отмененные - они нужны
	// для сводки последних отмен)
	filter := domain.BookingsFilter{IncludeCancelled: true}
	if req != nil && req.Date != "" {
		filter.Date = &req.Date
	}

	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAgenda: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 2. Отбрасываем нечитаемые записи и сортируем хронологически
	valid := ValidBookings(bookings)
	if dropped := len(bookings) - len(valid); dropped > 0 {
		uc.logger.Warn("GetAgenda: dropped %d bookings with unreadable date/time", dropped)
	}
	sorted := SortChronological(valid)

	// 3. Разделяем по статусу и строим представления
	active, cancelled := PartitionByStatus(sorted)

	today := uc.timeProvider.Now().Format(domain.DateFormat)
	upcoming := GroupByDate(UpcomingBookings(active, today))

	uc.logger.Info("GetAgenda: active=%d, cancelled=%d, upcoming days=%d",
		len(active), len(cancelled), len(upcoming))

	resp := &Response{
		Upcoming:        upcoming,
		Active:          active,
		RecentCancelled: RecentCancelled(cancelled, domain.RecentCancelledLimit),
		TotalActive:     len(active),
		TotalCancelled:  len(cancelled),
	}
	if req != nil && req.IncludeAllCancelled {
		resp.Cancelled = cancelled
	}
	return resp, nil
}
