package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osteosalud/booking-service/internal/domain"
	bookingRepo "github.com/osteosalud/booking-service/internal/infra/storage/booking"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      ServiceCatalog
	txManager    TransactionManager
	schedule     domain.ScheduleConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	schedule domain.ScheduleConfig,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		txManager:    txManager,
		schedule:     schedule,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидируем обязательные поля запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем дату и принадлежность времени расписанию
	if err := validateSchedule(req, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	// 3. Берем снимок услуги из каталога: имя и цена фиксируются
	// в бронировании и не меняются при изменении каталога
	service, err := uc.catalog.ServiceByID(req.ServiceID)
	if err != nil {
		uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
		return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotFound, req.ServiceID)
	}

	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = domain.GuestUserID
	}

	booking := &domain.Booking{
		ServiceID:     service.ID,
		ServiceName:   service.Title,
		Price:         service.Price,
		Date:          req.Date,
		Time:          req.Time,
		ClientName:    strings.TrimSpace(req.ClientName),
		ClientPhone:   strings.TrimSpace(req.ClientPhone),
		ClientAddress: strings.TrimSpace(req.ClientAddress),
		ClientCity:    strings.TrimSpace(req.ClientCity),
		UserID:        userID,
		Status:        domain.StatusConfirmed,
		CreatedAt:     uc.timeProvider.Now(),
	}

	var created *domain.Booking

	// 4. Проверка занятости и вставка в одной serializable-транзакции:
	// два конкурентных запроса на один слот не могут пройти оба
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayBookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			Date:             &req.Date,
			IncludeCancelled: false,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings for date=%s: %v", ErrInternal, req.Date, err)
		}

		for _, b := range dayBookings {
			if b.Time == req.Time {
				return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
			}
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Частичный уникальный индекс мог отклонить вставку,
			// прошедшую мимо проверки выше (конкурирующая запись
			// в пустой день не блокирует ни одной строки)
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken", req.Date, req.Time)
		} else {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%s date=%s time=%s service=%q user=%s",
		created.ID, created.Date, created.Time, created.ServiceName, created.UserID)

	return &Response{
		ID:            created.ID,
		ServiceID:     created.ServiceID,
		ServiceName:   created.ServiceName,
		Price:         created.Price,
		Date:          created.Date,
		Time:          created.Time,
		ClientName:    created.ClientName,
		ClientPhone:   created.ClientPhone,
		ClientAddress: created.ClientAddress,
		ClientCity:    created.ClientCity,
		UserID:        created.UserID,
		Status:        string(created.Status),
		CreatedAt:     created.CreatedAt,
	}, nil
}
