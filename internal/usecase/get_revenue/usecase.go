package get_revenue

import (
	"context"
	"fmt"

	"github.com/osteosalud/booking-service/internal/domain"
)

// UseCase use case для получения отчета о выручке
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute выполняет use case построения отчета о выручке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	filter := domain.BookingsFilter{IncludeCancelled: false}
	if req != nil {
		if req.FromDate != "" {
			filter.FromDate = &req.FromDate
		}
		if req.ToDate != "" {
			filter.ToDate = &req.ToDate
		}
	}

	bookings, err := uc.bookingRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetRevenue: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	report, skipped := BuildReport(bookings)
	if skipped > 0 {
		uc.logger.Warn("GetRevenue: skipped %d bookings with unreadable dates", skipped)
	}

	uc.logger.Info("GetRevenue: months=%d, total=%.2f", len(report.Monthly), report.Total)

	return &Response{
		Monthly:    report.Monthly,
		Total:      report.Total,
		MaxMonthly: MaxMonthly(report.Monthly),
	}, nil
}
